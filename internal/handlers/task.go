package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"taskwidget/internal/models"
)

const maxBodyBytes = 1 << 16

const createTaskSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"priority": {"type": "string"},
		"important": {"type": "boolean"},
		"completed": {"type": "boolean"}
	},
	"additionalProperties": false
}`

var createTaskValidator = jsonschema.MustCompileString("create_task.json", createTaskSchema)

// createTaskRequest is the JSON body accepted by CreateTask.
type createTaskRequest struct {
	Name      string `json:"name"`
	Priority  string `json:"priority"`
	Important bool   `json:"important"`
	Completed bool   `json:"completed"`
}

// ListTasks returns the current snapshot as JSON.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.store.Snapshot())
}

// CreateTask adds a task from form values, or from a JSON body when the
// request is sent as application/json.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	if isJSON(r) {
		h.createTaskJSON(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	_, err := h.add(createTaskRequest{
		Name:      r.FormValue("name"),
		Priority:  r.FormValue("priority"),
		Important: parseCheckbox(r.FormValue("important")),
		Completed: parseCheckbox(r.FormValue("completed")),
	})
	if err != nil {
		h.respondAddError(w, err)
		return
	}

	h.respondList(w, r)
}

func (h *Handlers) createTaskJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := createTaskValidator.Validate(doc); err != nil {
		respondError(w, http.StatusBadRequest, schemaMessage(err))
		return
	}

	var req createTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := h.add(req)
	if err != nil {
		h.respondAddError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, task)
}

func (h *Handlers) add(req createTaskRequest) (models.Task, error) {
	priority := models.Priority(req.Priority)
	if priority == "" {
		priority = h.defaultPriority
	}
	return h.store.Add(req.Name, priority, req.Important, req.Completed)
}

func (h *Handlers) respondAddError(w http.ResponseWriter, err error) {
	var inputErr *models.InvalidInputError
	if errors.As(err, &inputErr) {
		h.logger.Debug("rejected task", "err", inputErr.Detail())
		respondError(w, http.StatusBadRequest, inputErr.Error())
		return
	}
	h.respondServerError(w, err)
}

// DeleteTask deletes a task. Unknown ids are not an error.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if !h.store.Delete(id) {
		h.logger.Debug("delete of unknown task", "id", id)
	}

	h.respondList(w, r)
}

// ToggleTask toggles the completion status of a task. Unknown ids are not
// an error.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if !h.store.ToggleCompleted(id) {
		h.logger.Debug("toggle of unknown task", "id", id)
	}

	h.respondList(w, r)
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}

func parseLimit(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", v)
	}
	return n, nil
}

// schemaMessage flattens a schema validation error to its leaf messages.
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
