// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "github.com/MKhiriev/go-note-board/models"

// DragState is the state of the [Controller].
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Region identifies the part of a note that received a pointer press.
type Region int

const (
	// RegionBody is the draggable surface of a note.
	RegionBody Region = iota
	// RegionButton covers the note's action buttons.
	RegionButton
	// RegionContent covers the editable text area.
	RegionContent
)

// Controller translates pointer events into note position updates on a
// bounded board.
//
// While dragging, a note never leaves the board: each axis is clamped to
// [0, boardExtent - noteExtent].
type Controller struct {
	notes     *Manager
	geometry  Geometry
	presenter Presenter

	state  DragState
	target *Note
	offset models.Position
}

// NewController returns an idle controller over notes.
func NewController(notes *Manager, geometry Geometry, presenter Presenter) *Controller {
	return &Controller{notes: notes, geometry: geometry, presenter: presenter}
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Target returns the note being dragged, or nil when idle.
func (c *Controller) Target() *Note { return c.target }

// Press handles a pointer press on note id. Only presses on the note body
// start a drag. It reports whether a drag started.
func (c *Controller) Press(id string, region Region, pointer models.Position) bool {
	if region != RegionBody {
		return false
	}

	n, ok := c.notes.Get(id)
	if !ok {
		return false
	}

	origin := c.geometry.Board()
	pos := n.Position()

	c.state = Dragging
	c.target = n
	c.offset = models.Position{
		X: pointer.X - (origin.X + pos.X),
		Y: pointer.Y - (origin.Y + pos.Y),
	}

	return true
}

// Move handles a pointer move. While dragging, it moves the target note to
// the clamped position and returns it.
func (c *Controller) Move(pointer models.Position) (models.Position, bool) {
	if c.state != Dragging {
		return models.Position{}, false
	}
	// the target was removed or replaced under the same id
	if live, ok := c.notes.Get(c.target.ID()); !ok || live != c.target {
		c.Release()
		return models.Position{}, false
	}

	bounds := c.geometry.Board()
	size := c.geometry.NoteSize(c.target.ID())

	x := clamp(pointer.X-c.offset.X-bounds.X, bounds.Width-size.Width)
	y := clamp(pointer.Y-c.offset.Y-bounds.Y, bounds.Height-size.Height)

	c.target.UpdatePosition(x, y)
	return models.Position{X: x, Y: y}, true
}

// Release ends any drag. The note stays where the last move put it.
func (c *Controller) Release() {
	c.state = Idle
	c.target = nil
	c.offset = models.Position{}
}

// DoubleActivate handles a double activation on the empty board surface: it
// creates a note at the board-relative pointer position, registers it and
// mounts it on the presenter.
func (c *Controller) DoubleActivate(pointer models.Position) *Note {
	origin := c.geometry.Board()
	n := NewNote(models.Note{X: pointer.X - origin.X, Y: pointer.Y - origin.Y})

	c.notes.Add(n)
	if v := c.presenter.Mount(n); v != nil {
		n.Attach(v)
	}

	return n
}
