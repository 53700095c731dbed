// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the board application runtime.
//
// It wires the store, the board engine, the autosave worker, the optional
// export server and the terminal UI into a single process lifecycle.
package client
