// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the optional export HTTP server next to the terminal
// UI and shuts it down gracefully when the UI exits.
package server
