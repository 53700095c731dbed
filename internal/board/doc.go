// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package board implements the note board state engine.
//
// It owns the in-memory model of notes ([Note], [Manager]), the drag
// interaction contract with boundary clamping ([Controller]), the
// sort-and-relayout algorithm ([SortAndRelayout]) and the synchronization
// contract with persistence and presentation collaborators ([Persister],
// [Presenter], [View], [SnapshotBuffer]).
//
// The engine is single-threaded: every mutating method must be called from
// one logical goroutine (the UI event loop). The only suspending operation,
// quote retrieval, is split into [RetrieveAugmentation], which may run on any
// goroutine, and [Note.ApplyAugmentation], which must be joined back onto the
// event loop. Snapshots handed to [SnapshotBuffer] are copies and may be read
// concurrently.
package board
