// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-board/internal/crypto"
	"github.com/MKhiriev/go-note-board/internal/logger"
)

// DefaultAutosaveInterval is used when the configured interval is not
// positive.
const DefaultAutosaveInterval = 5 * time.Second

// AutosaveWorker saves the latest published board snapshot on a ticker.
// Saves are fire-and-forget: a failure is logged and the next tick tries
// again. A tick with nothing published since the last successful save does
// nothing.
type AutosaveWorker struct {
	parent   context.Context
	source   SnapshotSource
	saver    Saver
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// saved and digest describe the last snapshot stored successfully;
	// only the worker goroutine and Stop touch them, never concurrently.
	saved     uint64
	digest    crypto.Digest
	hasDigest bool
}

// NewAutosaveWorker creates an idle worker. The worker goroutine exits when
// ctx is cancelled or Stop is called.
func NewAutosaveWorker(ctx context.Context, source SnapshotSource, saver Saver, interval time.Duration, logger *logger.Logger) *AutosaveWorker {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	return &AutosaveWorker{
		parent:   ctx,
		source:   source,
		saver:    saver,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. It stops any previously running loop, then
// launches a background goroutine that saves every interval.
func (a *AutosaveWorker) Run() {
	a.halt()

	a.mu.Lock()
	jobCtx, cancel := context.WithCancel(a.parent)
	a.cancel = cancel
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(a.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				a.save(jobCtx)
			}
		}
	}()

	a.logger.Debug().Dur("interval", a.interval).Msg("autosave started")
}

// Stop implements Worker. It stops the loop, waits for it to exit and then
// saves once more so the last changes are not lost. Safe to call when the
// worker is not running.
func (a *AutosaveWorker) Stop() {
	a.halt()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(a.parent), a.interval)
	defer cancel()
	a.save(ctx)
}

func (a *AutosaveWorker) halt() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.wg.Wait()
}

func (a *AutosaveWorker) save(ctx context.Context) {
	version := a.source.Version()
	if version == a.saved {
		return
	}

	notes, ok := a.source.Latest()
	if !ok {
		return
	}

	digest, digestErr := crypto.SnapshotDigest(notes)
	if digestErr == nil && a.hasDigest && digest == a.digest {
		// republished without changes
		a.saved = version
		return
	}

	if err := a.saver.Save(ctx, notes); err != nil {
		a.logger.Err(err).
			Str("func", "AutosaveWorker.save").
			Uint64("version", version).
			Int("notes", len(notes)).
			Msg("autosave failed")
		return
	}

	a.saved = version
	a.digest, a.hasDigest = digest, digestErr == nil
	a.logger.Debug().Uint64("version", version).Int("notes", len(notes)).Msg("autosaved")
}
