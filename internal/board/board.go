// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/internal/validators"
	"github.com/MKhiriev/go-note-board/models"
)

// Board ties the note registry, the interaction controller, the layout
// engine and the persistence bridge together.
type Board struct {
	notes      *Manager
	controller *Controller

	presenter Presenter
	geometry  Geometry
	persister Persister
	layout    Layout
	snapshots *SnapshotBuffer

	logger *logger.Logger
}

// New reconstructs a board from previously persisted snapshots. Entries with
// missing or invalid fields get the defaults of [NewNote]; a corrupt entry
// never prevents the others from loading.
func New(persisted []models.Note, opts ...Option) *Board {
	b := &Board{
		notes:     NewManager(),
		presenter: nopPresenter{},
		geometry:  FixedGeometry{Bounds: Rect{Width: 1200, Height: 800}, Note: Size{Width: 200, Height: 160}},
		layout:    DefaultLayout(),
		snapshots: new(SnapshotBuffer),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.controller = NewController(b.notes, b.geometry, b.presenter)

	check := validators.NewNoteValidator()
	for i, s := range persisted {
		if err := check.Validate(context.Background(), s); err != nil {
			b.logger.Warn().
				Err(err).
				Str("func", "board.New").
				Int("index", i).
				Str("note_id", s.ID).
				Msg("persisted note is malformed, substituting defaults")
		}
		b.notes.Add(NewNote(s))
	}

	b.Publish()
	return b
}

// Notes returns the registry.
func (b *Board) Notes() *Manager { return b.notes }

// Controller returns the interaction controller.
func (b *Board) Controller() *Controller { return b.controller }

// Layout returns the row layout used by [Board.SortAndRelayout].
func (b *Board) Layout() Layout { return b.layout }

// Snapshots returns the buffer that [Board.Publish] writes to.
func (b *Board) Snapshots() *SnapshotBuffer { return b.snapshots }

// Create creates a note at a pointer position, as a double activation on the
// empty board does.
func (b *Board) Create(pointer models.Position) *Note {
	n := b.controller.DoubleActivate(pointer)
	b.logger.Debug().Str("note_id", n.ID()).Msg("note created")
	return n
}

// Delete removes note id from the board. It reports whether it existed.
func (b *Board) Delete(id string) bool {
	if t := b.controller.Target(); t != nil && t.ID() == id {
		b.controller.Release()
	}
	return b.notes.Remove(id)
}

// EditContent replaces the content of note id.
func (b *Board) EditContent(id, text string) bool {
	n, ok := b.notes.Get(id)
	if !ok {
		return false
	}
	n.UpdateContent(text)
	return true
}

// AttachImage replaces the image of note id.
func (b *Board) AttachImage(id, blobRef string) bool {
	n, ok := b.notes.Get(id)
	if !ok {
		return false
	}
	n.SetImage(blobRef)
	return true
}

// SortAndRelayout sorts the board by creation time and lays it out in a
// single row. See [SortAndRelayout].
func (b *Board) SortAndRelayout(ascending bool) []*Note {
	return SortAndRelayout(b.notes, b.layout, ascending, b.presenter)
}

// Snapshot serializes every live note.
func (b *Board) Snapshot() []models.Note {
	return b.notes.Snapshot()
}

// Publish hands the current snapshot to the snapshot buffer, where the
// autosave worker and the export server pick it up.
func (b *Board) Publish() {
	b.snapshots.Publish(b.notes.Snapshot())
}

// Export takes the snapshot now and returns the export call, which may run
// on any goroutine.
func (b *Board) Export() func(ctx context.Context) error {
	notes := b.notes.Snapshot()
	persister := b.persister
	log := b.logger

	return func(ctx context.Context) error {
		if persister == nil {
			return ErrNoPersister
		}
		if err := persister.ExportAll(ctx, notes); err != nil {
			log.Err(err).Str("func", "board.Export").Int("notes", len(notes)).Msg("export failed")
			return fmt.Errorf("export notes: %w", err)
		}
		log.Info().Int("notes", len(notes)).Msg("notes exported")
		return nil
	}
}
