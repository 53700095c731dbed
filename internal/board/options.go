// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "github.com/MKhiriev/go-note-board/internal/logger"

// Option configures a [Board].
type Option func(*Board)

// WithPresenter sets the presentation collaborator.
func WithPresenter(p Presenter) Option {
	return func(b *Board) { b.presenter = p }
}

// WithGeometry sets the runtime geometry used for drag clamping and note
// creation.
func WithGeometry(g Geometry) Option {
	return func(b *Board) { b.geometry = g }
}

// WithPersister sets the persistence collaborator used for export.
func WithPersister(p Persister) Option {
	return func(b *Board) { b.persister = p }
}

// WithLayout overrides [DefaultLayout].
func WithLayout(l Layout) Option {
	return func(b *Board) { b.layout = l }
}

// WithSnapshotBuffer publishes snapshots to buf instead of a private buffer.
func WithSnapshotBuffer(buf *SnapshotBuffer) Option {
	return func(b *Board) { b.snapshots = buf }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *Board) { b.logger = l }
}

type nopPresenter struct{}

func (nopPresenter) Mount(*Note) View { return nil }
func (nopPresenter) Rebuild([]*Note)  {}
