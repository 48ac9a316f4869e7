package store

import (
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"taskwidget/internal/models"
)

// TaskStore holds the ordered task list and the id counter in memory.
// Insertion order is display order. All methods are safe for concurrent use.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int64
	seq    uint64

	now    func() time.Time
	sinks  []Sink
	logger *log.Logger
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock overrides the time source used for CreatedAt and record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) { s.now = now }
}

// WithSinks registers diagnostic sinks notified after each mutation.
func WithSinks(sinks ...Sink) Option {
	return func(s *TaskStore) { s.sinks = append(s.sinks, sinks...) }
}

// WithLogger sets the logger used to report sink failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *TaskStore) { s.logger = logger }
}

// New creates an empty store whose first task gets id 1.
func New(opts ...Option) *TaskStore {
	s := &TaskStore{
		nextID: 1,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a task at the end of the list. Blank names and priorities
// outside Low/Medium/High are rejected with *models.InvalidInputError and
// leave the store untouched.
func (s *TaskStore) Add(name string, priority models.Priority, important, completed bool) (models.Task, error) {
	task := models.Task{
		Name:      strings.TrimSpace(name),
		Priority:  priority,
		Important: important,
		Completed: completed,
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	task.CreatedAt = s.now()
	s.nextID++
	s.tasks = append(s.tasks, task)

	s.emit(OpAdd, task.ID)
	return task, nil
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id int64) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Delete removes the task with the given id. Unknown ids are a no-op and
// report false.
func (s *TaskStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)

	s.emit(OpDelete, id)
	return true
}

// ToggleCompleted flips the completed flag of the task with the given id.
// Unknown ids are a no-op and report false.
func (s *TaskStore) ToggleCompleted(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed

	s.emit(OpToggle, id)
	return true
}

// Snapshot returns a copy of the current list. Later mutations do not
// affect it.
func (s *TaskStore) Snapshot() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Len returns the number of tasks in the store.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

func (s *TaskStore) snapshotLocked() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

// emit must be called with s.mu held so sinks observe mutation order.
func (s *TaskStore) emit(op Op, id int64) {
	if len(s.sinks) == 0 {
		return
	}

	s.seq++
	rec := Record{
		Seq:    s.seq,
		Op:     op,
		TaskID: id,
		At:     s.now(),
		Tasks:  s.snapshotLocked(),
	}

	for _, sink := range s.sinks {
		if err := sink.Write(rec); err != nil {
			s.logger.Warn("diagnostic sink failed", "op", op, "seq", rec.Seq, "err", err)
		}
	}
}
