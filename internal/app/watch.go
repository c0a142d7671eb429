package app

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/alchemmist/tabset/internal/engine"
)

// AutosaveName is the record the watch loop writes to. It intentionally
// reuses one name so autosaves never pile up.
const AutosaveName = "autosave"

// Watch periodically captures the window and saves it under
// AutosaveName until ctx is cancelled. A flock keyed on the tabsets
// directory keeps it to one watcher per store.
func (s *Service) Watch(ctx context.Context, windowID string, interval time.Duration) error {
	if interval <= 0 {
		interval = s.cfg.AutosaveInterval
	}
	unlock, err := acquireWatchLock(s.cfg.TabsetsDir)
	if err != nil {
		return err
	}
	defer unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.autosave(ctx, windowID)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.autosave(ctx, windowID)
		}
	}
}

func (s *Service) autosave(ctx context.Context, windowID string) {
	snap, err := engine.Capture(ctx, s.host, windowID)
	if err != nil {
		s.log.Warn("autosave capture failed", "error", err)
		return
	}
	if err := s.store.Save(snap, AutosaveName); err != nil {
		s.log.Warn("autosave write failed", "error", err)
	}
}

func acquireWatchLock(tabsetsDir string) (func(), error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = os.TempDir()
	}
	if err := os.MkdirAll(runtimeDir, 0o755); err != nil {
		return nil, err
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(tabsetsDir))
	lockPath := filepath.Join(runtimeDir, fmt.Sprintf("tabset-watch-%x.lock", h.Sum64()))

	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("watch already running for %s", tabsetsDir)
	}
	return func() { _ = lock.Unlock() }, nil
}
