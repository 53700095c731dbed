// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is the plain structural snapshot of a single board note.
//
// The same shape is used in three places: as the output of
// board.Note.Serialize, as the options accepted by board.NewNote, and as the
// record exchanged with persistence and export collaborators. A zero value in
// any field means "not set" when the struct is used as creation options.
type Note struct {
	// ID is the opaque note identifier. It never changes after creation.
	ID string `json:"id" yaml:"id"`

	// Content is the free text of the note. No length limit.
	Content string `json:"content" yaml:"content"`

	// X and Y are the top-left corner of the note in board space.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// Color is one of the palette values, see [Palette].
	Color Color `json:"color" yaml:"color"`

	// Timestamp is the creation time, RFC 3339. Kept as text so that values
	// loaded from older or hand-edited files survive a save unchanged even
	// when they cannot be parsed.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Image is an optional self-describing blob reference, usually a
	// data URL. Empty means no image.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Position is a point in board space.
type Position struct {
	X float64
	Y float64
}

// Position returns the note's top-left corner.
func (n Note) Position() Position {
	return Position{X: n.X, Y: n.Y}
}
