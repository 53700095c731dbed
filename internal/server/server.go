// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"sync"

	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/handler"
	"github.com/MKhiriev/go-note-board/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	done chan struct{}
	once sync.Once
}

// NewServer builds the servers enabled by cfg.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errExportServerDisabled
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		done:       make(chan struct{}),
	}, nil
}

// RunServer serves until Shutdown is called. Process signals are left to
// the terminal UI, which calls Shutdown when it exits.
func (s *server) RunServer() {
	s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-s.done
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.once.Do(func() {
		s.httpServer.Shutdown()
		close(s.done)
	})
}
