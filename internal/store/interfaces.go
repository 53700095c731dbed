// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-board/models"
)

// NotesRepository is the durable store of the board.
type NotesRepository interface {
	// SaveAll replaces every stored note with notes.
	SaveAll(ctx context.Context, notes []models.Note) error

	// LoadAll returns the stored notes in the order they were saved.
	LoadAll(ctx context.Context) ([]models.Note, error)
}

// Exporter writes user-facing snapshot files.
type Exporter interface {
	// Export writes notes to a new file and returns its path.
	Export(ctx context.Context, notes []models.Note) (string, error)
}
