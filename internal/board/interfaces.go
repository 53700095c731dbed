// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"context"

	"github.com/MKhiriev/go-note-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/board_mock.go -package=mock

// View is the presentation of a single note. A note refreshes its view after
// every mutation. Views are bound with [Note.Attach] and released when the
// note is removed from its manager.
type View interface {
	Refresh(snapshot models.Note)
}

// Presenter builds and rebuilds the presentation of the board.
type Presenter interface {
	// Mount is called for every note that enters the board through user
	// interaction. It returns the view the note should refresh, or nil.
	Mount(n *Note) View

	// Rebuild is called after a sort with the full ordered note sequence.
	Rebuild(notes []*Note)
}

// TextRetriever fetches a quote from an external service.
type TextRetriever interface {
	Retrieve(ctx context.Context) (models.Quote, error)
}

// Persister is the persistence collaborator. Both calls are best effort from
// the engine's point of view: errors are logged, never retried.
type Persister interface {
	// Save stores the snapshot sequence durably, replacing what was there.
	Save(ctx context.Context, notes []models.Note) error

	// ExportAll writes the snapshot sequence to a user-facing export target.
	ExportAll(ctx context.Context, notes []models.Note) error
}

// Geometry reports runtime-measured sizes. Coordinates are in pointer space;
// the board origin is the pointer-space position of board point (0, 0).
type Geometry interface {
	Board() Rect
	NoteSize(id string) Size
}
