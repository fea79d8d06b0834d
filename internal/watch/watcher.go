// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package watch redacts documents as they are dropped into a directory.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"pii-redactor/internal/observability"
)

const (
	componentName = "drop_folder_watcher"

	// DefaultSettle is how long a file must stay unchanged before it is handled
	DefaultSettle = 500 * time.Millisecond

	redactedSuffix = "_redacted"
)

// Handler processes one settled file
type Handler func(ctx context.Context, path string)

// Watcher calls its handler once per file created or rewritten in a
// directory, after the file has stopped changing for the settle period.
type Watcher struct {
	dir     string
	settle  time.Duration
	handler Handler

	observer *observability.StandardObserver
	logger   *zap.Logger

	mu       sync.Mutex
	pending  map[string]*time.Timer
	inflight sync.WaitGroup
	ready    chan struct{}
}

// Option configures a Watcher
type Option func(*Watcher)

// WithSettle sets the quiet period before a file is handled
func WithSettle(d time.Duration) Option {
	return func(w *Watcher) { w.settle = d }
}

// New creates a watcher for dir
func New(dir string, handler Handler, observer *observability.StandardObserver, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error opening watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path is not a directory: %s", dir)
	}

	w := &Watcher{
		dir:      filepath.Clean(dir),
		settle:   DefaultSettle,
		handler:  handler,
		observer: observer,
		logger:   observer.Logger(componentName),
		pending:  make(map[string]*time.Timer),
		ready:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Ready is closed once the directory is being watched
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled, then waits for running handlers
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("error watching %s: %w", w.dir, err)
	}
	close(w.ready)
	w.logger.Info("watching directory", zap.String("dir", w.dir), zap.Duration("settle", w.settle))

	defer w.drain()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !Eligible(event.Name) {
		w.logger.Debug("ignoring file", zap.String("path", event.Name))
		return
	}
	w.schedule(ctx, event.Name)
}

// schedule (re)starts the settle timer of path
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.pending[path]; exists && timer.Stop() {
		timer.Reset(w.settle)
		return
	}

	w.inflight.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(w.settle, func() {
		defer w.inflight.Done()

		w.mu.Lock()
		if w.pending[path] == timer {
			delete(w.pending, path)
		}
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return
		}

		finishTiming := w.observer.StartTiming(componentName, "handle_file", path)
		w.handler(ctx, path)
		finishTiming(true, nil)
	})
	w.pending[path] = timer
}

// drain cancels timers that have not fired and waits for running handlers
func (w *Watcher) drain() {
	w.mu.Lock()
	for path, timer := range w.pending {
		if timer.Stop() {
			w.inflight.Done()
		}
		delete(w.pending, path)
	}
	w.mu.Unlock()
	w.inflight.Wait()
}

// Eligible reports whether a dropped file should be redacted. Hidden files
// and files already named like redaction output are skipped.
func Eligible(path string) bool {
	base := filepath.Base(path)
	if base == "" || strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return !strings.HasSuffix(stem, redactedSuffix)
}
