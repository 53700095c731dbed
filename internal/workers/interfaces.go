// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the autosave worker.
package workers

import (
	"context"

	"github.com/MKhiriev/go-note-board/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
// Stop blocks until those goroutines have exited.
type Worker interface {
	Run()
	Stop()
}

// SnapshotSource is where the autosave worker reads the board from.
// *board.SnapshotBuffer implements it.
type SnapshotSource interface {
	Latest() ([]models.Note, bool)
	Version() uint64
}

// Saver stores a board snapshot durably. board.Persister implementations
// satisfy it.
type Saver interface {
	Save(ctx context.Context, notes []models.Note) error
}
