// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the interactive board in the terminal.
type TUI struct {
	board     *board.Board
	canvas    *Canvas
	retriever board.TextRetriever
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI over b. canvas must be the presenter and geometry b was
// built with.
func New(b *board.Board, canvas *Canvas, retriever board.TextRetriever, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		board:     b,
		canvas:    canvas,
		retriever: retriever,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run blocks until the user quits or ctx is cancelled. The final snapshot
// is published before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	model := newBoardModel(ctx, t.board, t.canvas, t.retriever, t.buildInfo, t.logger)

	final, err := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()

	t.finish(final)
	if err != nil && ctx.Err() != nil {
		// shutdown signal, not a failure
		return nil
	}
	return err
}

// finish commits the last model state. A signal stops the program without a
// quit key, so an open editor is written back here.
func (t *TUI) finish(final tea.Model) {
	if m, ok := final.(boardModel); ok {
		m.commit()
		return
	}
	t.board.Publish()
}
