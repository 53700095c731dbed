// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the read-only export server of the board.
//
// Handlers never touch live notes: they read the latest snapshot the board
// published, so they can run on server goroutines while the terminal UI owns
// the board.
package http
