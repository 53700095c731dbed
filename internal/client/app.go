// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-board/internal/adapter"
	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/handler"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/internal/server"
	"github.com/MKhiriev/go-note-board/internal/store"
	"github.com/MKhiriev/go-note-board/internal/tui"
	"github.com/MKhiriev/go-note-board/internal/workers"
	"github.com/MKhiriev/go-note-board/models"
)

// App owns every long-lived component of the board process.
type App struct {
	storages *store.Storages
	board    *board.Board
	ui       *tui.TUI
	workers  *workers.Workers
	server   server.Server // nil when the export server is disabled

	logger *logger.Logger
}

// NewApp opens the store, restores the board and wires the background
// workers, the optional export server and the terminal UI.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	persisted, err := storages.Load(ctx)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("load notes: %w", err)
	}

	quotes, err := adapter.NewHTTPQuoteAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create quote adapter: %w", err)
	}

	canvas := tui.NewCanvas(board.Size{Width: cfg.Layout.NoteWidth, Height: cfg.Layout.NoteHeight})
	b := board.New(persisted,
		board.WithPresenter(canvas),
		board.WithGeometry(canvas),
		board.WithPersister(storages),
		board.WithLayout(board.Layout{
			Margin:    cfg.Layout.Margin,
			NoteWidth: cfg.Layout.NoteWidth,
			Gap:       cfg.Layout.Gap,
		}),
		board.WithLogger(log),
	)
	log.Info().Int("notes", b.Notes().Len()).Msg("board restored")

	app := &App{
		storages: storages,
		board:    b,
		ui:       tui.New(b, canvas, quotes, buildInfo, log),
		workers: workers.NewWorkers(
			workers.NewAutosaveWorker(ctx, b.Snapshots(), storages, cfg.Workers.AutosaveInterval, log),
		),
		logger: log,
	}

	if cfg.Server.HTTPAddress == "" {
		return app, nil
	}

	handlers, err := handler.NewHandlers(b.Snapshots(), cfg.Storage, cfg.Server, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create handlers: %w", err)
	}
	if app.server, err = server.NewServer(handlers, cfg.Server, log); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	return app, nil
}

// Run starts the background components and blocks in the terminal UI. When
// the UI exits, everything is stopped and the last snapshot is saved.
func (a *App) Run(ctx context.Context) error {
	a.start()
	defer a.stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) start() {
	a.workers.Run()
	if a.server != nil {
		go a.server.RunServer()
	}
}

// stop shuts the server down first so nothing reads the buffer, then lets
// the autosave worker flush before the database closes.
func (a *App) stop() {
	if a.server != nil {
		a.server.Shutdown()
	}
	a.workers.Stop()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("closing storages failed")
	}
	a.logger.Info().Msg("board stopped")
}
