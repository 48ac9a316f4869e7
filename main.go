package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"taskwidget/internal/config"
	"taskwidget/internal/handlers"
	"taskwidget/internal/logging"
	"taskwidget/internal/models"
	"taskwidget/internal/render"
	"taskwidget/internal/store"
)

//go:embed static/*
var staticFS embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskwidget",
		Short:         "A small in-memory to-do list served as a web page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		configPath  string
		port        string
		journalPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("journal") {
				cfg.Journal.Path = journalPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on")
	cmd.Flags().StringVar(&journalPath, "journal", "", "SQLite file for the diagnostic journal (empty disables it)")

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := logging.New(os.Stderr, logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Timestamps: cfg.Log.Timestamps,
		Prefix:     "taskwidget",
	})

	// Every mutation is logged with the full task list.
	sinks := []store.Sink{store.NewLogSink(logger.WithPrefix("tasks"))}

	var journal handlers.JournalReader
	if cfg.Journal.Path != "" {
		j, err := store.NewSQLiteJournal(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize journal: %w", err)
		}
		defer j.Close()
		logger.Info("journal enabled", "path", cfg.Journal.Path, "session", j.Session())
		sinks = append(sinks, j)
		journal = j
	}

	s := store.New(store.WithSinks(sinks...), store.WithLogger(logger))

	tmpl, err := handlers.ParseTemplates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	h := handlers.New(s, tmpl, handlers.Options{
		Journal:         journal,
		Renderer:        render.New(cfg.Display.TimeLayout),
		Logger:          logger,
		DefaultPriority: models.Priority(cfg.Display.DefaultPriority),
	})

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to load static files: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handlers.NewRouter(h, logger, staticSub),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", "http://localhost"+srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

