// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"math"
	"slices"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/models"
)

// One terminal cell covers cellWidth x cellHeight board units.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// Screen rows reserved above and below the board surface.
const (
	headerRows = 1
	footerRows = 1
)

const (
	minNoteCols = 12
	minNoteRows = 4

	defaultCols = 120
	defaultRows = 40
)

type buttonAction int

const (
	actionNone buttonAction = iota
	actionQuote
	actionImage
	actionDelete
)

// buttons are drawn right-aligned on the note's title row, in this order.
var buttons = []struct {
	label  string
	action buttonAction
}{
	{"[q]", actionQuote},
	{"[i]", actionImage},
	{"[x]", actionDelete},
}

type marker int

const (
	markerNone marker = iota
	markerPending
	markerFailed
)

// Canvas is the terminal presentation of the board. It implements
// [board.Presenter] and [board.Geometry] in pointer space, where one cell is
// cellWidth x cellHeight units and the board origin sits below the header.
//
// Canvas is only touched from the bubbletea event loop.
type Canvas struct {
	cols, rows         int
	noteCols, noteRows int

	views   map[string]*noteView
	order   []string // back to front
	markers map[string]marker

	dirty bool
}

// NewCanvas returns a canvas for notes of the given size in board units.
// Sizes are rounded down to whole cells.
func NewCanvas(noteSize board.Size) *Canvas {
	return &Canvas{
		cols:     defaultCols,
		rows:     defaultRows,
		noteCols: max(int(noteSize.Width/cellWidth), minNoteCols),
		noteRows: max(int(noteSize.Height/cellHeight), minNoteRows),
		views:    make(map[string]*noteView),
		markers:  make(map[string]marker),
	}
}

type noteView struct {
	canvas *Canvas
	snap   models.Note
}

// Refresh implements [board.View].
func (v *noteView) Refresh(snapshot models.Note) {
	v.snap = snapshot
	v.canvas.dirty = true
}

// Mount implements [board.Presenter]. The note is placed in front.
func (c *Canvas) Mount(n *board.Note) board.View {
	v := &noteView{canvas: c, snap: n.Serialize()}
	c.views[n.ID()] = v
	c.raise(n.ID())
	c.dirty = true
	return v
}

// Rebuild implements [board.Presenter]. Stacking follows the sorted order.
func (c *Canvas) Rebuild(notes []*board.Note) {
	views := make(map[string]*noteView, len(notes))
	order := make([]string, 0, len(notes))

	for _, n := range notes {
		v, ok := c.views[n.ID()]
		if !ok {
			v = &noteView{canvas: c}
			n.Attach(v)
		}
		v.snap = n.Serialize()
		views[n.ID()] = v
		order = append(order, n.ID())
	}

	c.views = views
	c.order = order
	c.dirty = true
}

// Board implements [board.Geometry].
func (c *Canvas) Board() board.Rect {
	return board.Rect{
		X:      0,
		Y:      headerRows * cellHeight,
		Width:  float64(c.cols) * cellWidth,
		Height: float64(c.boardRows()) * cellHeight,
	}
}

// NoteSize implements [board.Geometry]. Every note has the same size.
func (c *Canvas) NoteSize(string) board.Size {
	return board.Size{
		Width:  float64(c.noteCols) * cellWidth,
		Height: float64(c.noteRows) * cellHeight,
	}
}

// mountAll binds notes that entered the board without user interaction,
// such as the ones restored from persistence.
func (c *Canvas) mountAll(notes []*board.Note) {
	for _, n := range notes {
		if _, ok := c.views[n.ID()]; ok {
			continue
		}
		n.Attach(c.Mount(n))
	}
	c.dirty = false
}

func (c *Canvas) unmount(id string) {
	delete(c.views, id)
	delete(c.markers, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	c.dirty = true
}

// raise moves id to the front. Stacking is presentation only.
func (c *Canvas) raise(id string) {
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	c.order = append(c.order, id)
}

// front returns the most recently touched note.
func (c *Canvas) front() (string, bool) {
	if len(c.order) == 0 {
		return "", false
	}
	return c.order[len(c.order)-1], true
}

func (c *Canvas) resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
}

func (c *Canvas) boardRows() int {
	return max(c.rows-headerRows-footerRows, 0)
}

func (c *Canvas) onBoard(row int) bool {
	return row >= headerRows && row < headerRows+c.boardRows()
}

func (c *Canvas) setMarker(id string, mk marker) {
	if mk == markerNone {
		delete(c.markers, id)
		return
	}
	c.markers[id] = mk
}

// toPointer converts a screen cell into pointer space.
func toPointer(col, row int) models.Position {
	return models.Position{X: float64(col) * cellWidth, Y: float64(row) * cellHeight}
}

// noteCell returns the screen cell of the note's top-left corner.
func noteCell(snap models.Note) (col, row int) {
	col = int(math.Floor(snap.X / cellWidth))
	row = headerRows + int(math.Floor(snap.Y/cellHeight))
	return col, row
}

// hit finds the front-most note under a screen cell and the region that was
// hit. The title row holds the buttons and the drag handle, the bottom row is
// a drag handle too and everything in between is text.
func (c *Canvas) hit(col, row int) (id string, region board.Region, action buttonAction, ok bool) {
	for i := len(c.order) - 1; i >= 0; i-- {
		v := c.views[c.order[i]]
		x0, y0 := noteCell(v.snap)
		dx, dy := col-x0, row-y0
		if dx < 0 || dy < 0 || dx >= c.noteCols || dy >= c.noteRows {
			continue
		}

		switch {
		case dy == 0:
			if a := c.buttonAt(dx); a != actionNone {
				return v.snap.ID, board.RegionButton, a, true
			}
			return v.snap.ID, board.RegionBody, actionNone, true
		case dy == c.noteRows-1:
			return v.snap.ID, board.RegionBody, actionNone, true
		default:
			return v.snap.ID, board.RegionContent, actionNone, true
		}
	}
	return "", board.RegionBody, actionNone, false
}

func (c *Canvas) buttonAt(dx int) buttonAction {
	start := c.noteCols - buttonsWidth()
	if dx < start {
		return actionNone
	}
	for _, b := range buttons {
		if dx < start+len(b.label) {
			return b.action
		}
		start += len(b.label)
	}
	return actionNone
}

func buttonsWidth() int {
	w := 0
	for _, b := range buttons {
		w += len(b.label)
	}
	return w
}
