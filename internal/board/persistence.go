// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"sync/atomic"

	"github.com/MKhiriev/go-note-board/models"
)

// SnapshotBuffer holds the most recently published board snapshot. It is
// the hand-off point between the single-threaded engine and goroutines that
// persist or serve snapshots; readers never see live notes.
type SnapshotBuffer struct {
	latest  atomic.Pointer[[]models.Note]
	version atomic.Uint64
}

// Publish stores notes as the latest snapshot. The caller must not modify
// notes afterwards.
func (b *SnapshotBuffer) Publish(notes []models.Note) {
	b.latest.Store(&notes)
	b.version.Add(1)
}

// Latest returns a copy of the latest snapshot and whether one was ever
// published.
func (b *SnapshotBuffer) Latest() ([]models.Note, bool) {
	p := b.latest.Load()
	if p == nil {
		return nil, false
	}
	return append([]models.Note(nil), (*p)...), true
}

// Version increases by one on every Publish.
func (b *SnapshotBuffer) Version() uint64 {
	return b.version.Load()
}
