// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import "github.com/MKhiriev/go-note-board/models"

// Manager is the in-memory registry of live notes keyed by identifier.
//
// Iteration order is the order in which identifiers were first added. It
// carries no meaning beyond that; sort order is derived by
// [SortAndRelayout], which refills the manager.
type Manager struct {
	notes map[string]*Note
	order []string
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{notes: make(map[string]*Note)}
}

// Add registers n. A note already registered under the same identifier is
// replaced and its view binding released.
func (m *Manager) Add(n *Note) {
	if prev, ok := m.notes[n.ID()]; ok {
		if prev != n {
			prev.Detach()
		}
		m.notes[n.ID()] = n
		return
	}

	m.notes[n.ID()] = n
	m.order = append(m.order, n.ID())
}

// Get returns the note registered under id.
func (m *Manager) Get(id string) (*Note, bool) {
	n, ok := m.notes[id]
	return n, ok
}

// Remove unregisters the note and releases its view binding. It reports
// whether the note was found.
func (m *Manager) Remove(id string) bool {
	n, ok := m.notes[id]
	if !ok {
		return false
	}

	n.Detach()
	delete(m.notes, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return true
}

// All returns every live note.
func (m *Manager) All() []*Note {
	out := make([]*Note, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.notes[id])
	}
	return out
}

// Len returns the number of live notes.
func (m *Manager) Len() int {
	return len(m.order)
}

// Clear empties the registry. Notes keep their view bindings.
func (m *Manager) Clear() {
	m.notes = make(map[string]*Note)
	m.order = nil
}

// Snapshot serializes every live note in [Manager.All] order.
func (m *Manager) Snapshot() []models.Note {
	all := m.All()
	out := make([]models.Note, 0, len(all))
	for _, n := range all {
		out = append(out, n.Serialize())
	}
	return out
}
