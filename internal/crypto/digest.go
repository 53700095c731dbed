// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto computes content digests of board snapshots.
//
// A digest identifies the content of a snapshot independently of the
// publish counter: two publishes of the same notes have the same digest.
// The autosave worker uses it to skip redundant writes and the export server
// uses it as an entity tag.
package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-board/models"
	"golang.org/x/crypto/blake2b"
)

// Digest is a BLAKE2b-256 sum.
type Digest [blake2b.Size256]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// SnapshotDigest hashes the JSON form of notes. Order matters; a nil and an
// empty snapshot hash the same.
func SnapshotDigest(notes []models.Note) (Digest, error) {
	if notes == nil {
		notes = []models.Note{}
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return Digest{}, fmt.Errorf("init blake2b: %w", err)
	}
	if err = json.NewEncoder(h).Encode(notes); err != nil {
		return Digest{}, fmt.Errorf("encode snapshot: %w", err)
	}

	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}
