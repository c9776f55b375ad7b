package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/five82/showroom/internal/catalog"
	"github.com/five82/showroom/internal/state"
)

const (
	defaultDebounce      = 250 * time.Millisecond
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// calculateBackoff returns the retry delay after failures consecutive failed
// reloads: base doubled per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

// CatalogWatcher reloads a catalog file into the store whenever it changes.
//
// The parent directory is watched rather than the file so editors that save
// by rename are picked up. Bursts of events are debounced into one reload. A
// failed reload keeps the previous catalog in the store and is retried with
// backoff until it succeeds or the file changes again.
type CatalogWatcher struct {
	path     string
	store    *state.Store
	logger   *zap.Logger
	debounce time.Duration
	retry    time.Duration
}

// NewCatalogWatcher returns a watcher for path. A nil logger discards logs.
func NewCatalogWatcher(path string, store *state.Store, logger *zap.Logger) *CatalogWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogWatcher{
		path:     filepath.Clean(path),
		store:    store,
		logger:   logger.Named("catalog"),
		debounce: defaultDebounce,
		retry:    defaultRetryInterval,
	}
}

// Reload loads the catalog once and records the result in the store.
func (w *CatalogWatcher) Reload() error {
	cat, err := catalog.Load(w.path)
	w.store.Update(cat, err)
	if err != nil {
		w.logger.Warn("catalog reload failed", zap.String("path", w.path), zap.Error(err))
		return err
	}
	w.logger.Info("catalog reloaded",
		zap.String("path", w.path),
		zap.Int("categories", len(cat.Categories)),
		zap.Int("products", cat.ProductCount()))
	return nil
}

// Run watches until ctx is cancelled. It returns an error only when the watch
// cannot be established.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch catalog dir: %w", err)
	}
	w.logger.Debug("watching catalog", zap.String("dir", dir))

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("catalog event", zap.Stringer("op", event.Op))
			failures = 0
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.Reload(); err != nil {
				failures++
				timer.Reset(calculateBackoff(failures-1, w.retry))
				continue
			}
			failures = 0
		}
	}
}

func (w *CatalogWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
