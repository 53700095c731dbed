// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"sort"
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-board/models"
)

// Layout holds the fixed row geometry used after a sort.
type Layout struct {
	Margin    float64
	NoteWidth float64
	Gap       float64
}

// DefaultLayout is a 20 unit margin, 200 unit notes and a 20 unit gap.
func DefaultLayout() Layout {
	return Layout{Margin: 20, NoteWidth: 200, Gap: 20}
}

// Slot returns the position of the i-th note in the row. The row never wraps.
func (l Layout) Slot(i int) models.Position {
	return models.Position{
		X: l.Margin + float64(i)*(l.NoteWidth+l.Gap),
		Y: l.Margin,
	}
}

// SortAndRelayout orders the notes of m by creation time, refills m in that
// order and places them in a single row. Any position chosen by the user is
// discarded. The ordered notes are handed to p.Rebuild and returned.
func SortAndRelayout(m *Manager, l Layout, ascending bool, p Presenter) []*Note {
	notes := m.All()

	sort.SliceStable(notes, func(i, j int) bool {
		ai := parseCreatedAt(notes[i].CreatedAt())
		aj := parseCreatedAt(notes[j].CreatedAt())
		if ascending {
			return ai.Before(aj)
		}
		return ai.After(aj)
	})

	m.Clear()
	for i, n := range notes {
		m.Add(n)
		slot := l.Slot(i)
		n.UpdatePosition(slot.X, slot.Y)
	}

	if p != nil {
		p.Rebuild(notes)
	}

	return notes
}

// parseCreatedAt reads an RFC 3339 timestamp or a Unix time in milliseconds.
// Anything else is the Unix epoch.
func parseCreatedAt(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms)
	}
	return time.Unix(0, 0)
}
