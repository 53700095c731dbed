// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board_test

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBuffer_Empty(t *testing.T) {
	var buf board.SnapshotBuffer

	got, ok := buf.Latest()

	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Zero(t, buf.Version())
}

func TestSnapshotBuffer_PublishLatest(t *testing.T) {
	var buf board.SnapshotBuffer

	buf.Publish([]models.Note{{ID: "a"}})
	buf.Publish([]models.Note{{ID: "b"}, {ID: "c"}})

	got, ok := buf.Latest()
	require.True(t, ok)
	assert.Equal(t, []models.Note{{ID: "b"}, {ID: "c"}}, got)
	assert.Equal(t, uint64(2), buf.Version())
}

func TestSnapshotBuffer_LatestIsACopy(t *testing.T) {
	var buf board.SnapshotBuffer
	buf.Publish([]models.Note{{ID: "a"}})

	got, _ := buf.Latest()
	got[0].ID = "mutated"

	again, _ := buf.Latest()
	assert.Equal(t, "a", again[0].ID)
}

func TestSnapshotBuffer_EmptyBoardIsPublished(t *testing.T) {
	var buf board.SnapshotBuffer
	buf.Publish([]models.Note{})

	got, ok := buf.Latest()

	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestSnapshotBuffer_ConcurrentReaders(t *testing.T) {
	var buf board.SnapshotBuffer
	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if notes, ok := buf.Latest(); ok {
					_ = len(notes)
				}
			}
		}()
		buf.Publish([]models.Note{{ID: string(rune('a' + i))}})
	}
	wg.Wait()

	assert.Equal(t, uint64(8), buf.Version())
}
