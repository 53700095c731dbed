// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board_test

import (
	"testing"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/internal/mock"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func note(id, ts string) *board.Note {
	return board.NewNote(models.Note{ID: id, Timestamp: ts, Color: models.ColorYellow})
}

func ids(notes []*board.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID())
	}
	return out
}

func TestManager_AddGet(t *testing.T) {
	m := board.NewManager()
	n := note("a", "")

	m.Add(n)

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Same(t, n, got)
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetMissing(t *testing.T) {
	_, ok := board.NewManager().Get("nope")
	assert.False(t, ok)
}

func TestManager_AddSameIDLastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := board.NewManager()
	first := note("a", "")
	view := mock.NewMockView(ctrl)
	first.Attach(view)
	second := board.NewNote(models.Note{ID: "a", Content: "second"})

	m.Add(first)
	m.Add(second)

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, m.Len())

	// замещённая заметка больше не обновляет своё представление
	first.UpdateContent("stale")
}

func TestManager_RemoveDetaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := board.NewManager()
	n := note("a", "")
	n.Attach(mock.NewMockView(ctrl))
	m.Add(n)

	assert.True(t, m.Remove("a"))
	assert.False(t, m.Remove("a"))

	_, ok := m.Get("a")
	assert.False(t, ok)
	n.UpdateContent("after removal")
}

func TestManager_AddRemoveSequence(t *testing.T) {
	type step struct {
		name   string
		add    *board.Note
		remove string
		found  bool
		want   []string
	}

	a1 := board.NewNote(models.Note{ID: "a", Content: "a1"})
	b1 := board.NewNote(models.Note{ID: "b", Content: "b1"})
	a2 := board.NewNote(models.Note{ID: "a", Content: "a2"})
	c1 := board.NewNote(models.Note{ID: "c", Content: "c1"})
	b2 := board.NewNote(models.Note{ID: "b", Content: "b2"})

	steps := []step{
		{name: "add a1", add: a1, want: []string{"a"}},
		{name: "add b1", add: b1, want: []string{"a", "b"}},
		{name: "re-add a", add: a2, want: []string{"a", "b"}},
		{name: "remove missing", remove: "missing", want: []string{"a", "b"}},
		{name: "add c1", add: c1, want: []string{"a", "b", "c"}},
		{name: "remove b", remove: "b", found: true, want: []string{"a", "c"}},
		{name: "remove b again", remove: "b", want: []string{"a", "c"}},
		{name: "add b2", add: b2, want: []string{"a", "c", "b"}},
		{name: "remove a", remove: "a", found: true, want: []string{"c", "b"}},
		{name: "remove missing with others", remove: "zzz", want: []string{"c", "b"}},
	}

	m := board.NewManager()
	expected := map[string]*board.Note{}

	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			if s.add != nil {
				m.Add(s.add)
				expected[s.add.ID()] = s.add
			} else {
				assert.Equal(t, s.found, m.Remove(s.remove))
				delete(expected, s.remove)
			}

			assert.Equal(t, len(expected), m.Len())
			assert.Equal(t, s.want, ids(m.All()))
			for id, n := range expected {
				got, ok := m.Get(id)
				require.True(t, ok, id)
				assert.Same(t, n, got, id)
			}
			for _, id := range []string{"a", "b", "c", "missing", "zzz"} {
				if _, live := expected[id]; !live {
					_, ok := m.Get(id)
					assert.False(t, ok, id)
				}
			}
		})
	}

	got, _ := m.Get("c")
	assert.Equal(t, "c1", got.Content())
}

func TestManager_AllKeepsInsertionOrder(t *testing.T) {
	m := board.NewManager()
	for _, id := range []string{"c", "a", "b"} {
		m.Add(note(id, ""))
	}
	m.Remove("a")
	m.Add(note("d", ""))

	assert.Equal(t, []string{"c", "b", "d"}, ids(m.All()))
}

func TestManager_AllIsDetachedFromRegistry(t *testing.T) {
	m := board.NewManager()
	m.Add(note("a", ""))

	all := m.All()
	m.Add(note("b", ""))

	assert.Len(t, all, 1)
}

func TestManager_ClearAndSnapshot(t *testing.T) {
	m := board.NewManager()
	m.Add(note("a", "1"))
	m.Add(note("b", "2"))

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, "b", snap[1].ID)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.All())
	assert.Empty(t, m.Snapshot())
}
