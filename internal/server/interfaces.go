// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract for transport servers managed by this
// package.
//
// RunServer blocks until the server stops; Shutdown makes it stop.
type Server interface {
	RunServer()
	Shutdown()
}
