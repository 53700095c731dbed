// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-board/internal/board"
	"github.com/MKhiriev/go-note-board/internal/config"
	"github.com/MKhiriev/go-note-board/internal/handler"
	"github.com/MKhiriev/go-note-board/internal/logger"
	"github.com/MKhiriev/go-note-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeAddr возвращает свободный локальный адрес
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errExportServerDisabled)

	_, err = NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errExportServerDisabled)
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	addr := freeAddr(t)
	cfg := config.Server{HTTPAddress: addr}
	buf := new(board.SnapshotBuffer)
	buf.Publish([]models.Note{{ID: "a"}})

	handlers, err := handler.NewHandlers(buf, config.Storage{Export: config.Export{Format: "json"}}, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	stopped := make(chan struct{})
	go func() {
		srv.RunServer()
		close(stopped)
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://%s/api/notes", addr))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"id":"a"`)

	srv.Shutdown()
	srv.Shutdown()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
