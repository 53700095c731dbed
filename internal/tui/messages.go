// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-note-board/internal/board"

type publishTickMsg struct{}

// augmentedMsg carries a retrieved quote back to the event loop. The note is
// held by pointer so that a note deleted meanwhile is still safe to apply to.
type augmentedMsg struct {
	note *board.Note
	text string
	err  error
}

type clearMarkerMsg struct {
	id  string
	seq int
}

type imageLoadedMsg struct {
	id   string
	blob string
	err  error
}

type exportedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
