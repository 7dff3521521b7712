package stopwords

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces bursts of write events from editors and copy tools.
const reloadDebounce = 100 * time.Millisecond

// Source hands out the current stop-word set and can reload it from disk.
//
// Every Set returned by Current stays unchanged for as long as it is
// referenced; a reload swaps in a new Set instead of mutating the old one, so
// classifiers built from an earlier snapshot keep seeing the same words.
type Source struct {
	path    string
	opts    Options
	logger  *slog.Logger
	current atomic.Pointer[Set]
	reloads atomic.Int64
}

// NewStaticSource returns a Source that always serves set.
func NewStaticSource(set *Set) *Source {
	s := &Source{logger: slog.Default()}
	s.current.Store(set)
	return s
}

// OpenSource loads the set at path and returns a Source that can reload it.
func OpenSource(path string, opts Options, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Source{path: path, opts: opts, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active set. It may be nil for an empty static source.
func (s *Source) Current() *Set {
	return s.current.Load()
}

// Path returns the file the source loads from, or "" for static sources.
func (s *Source) Path() string {
	return s.path
}

// Reloads returns how many times the set was loaded successfully.
func (s *Source) Reloads() int64 {
	return s.reloads.Load()
}

// Reload reads the file again. On failure the previous set stays active.
func (s *Source) Reload() error {
	if s.path == "" {
		return ErrEmptyPath
	}
	set, err := LoadFile(s.path, s.opts)
	if err != nil {
		return err
	}
	s.current.Store(set)
	s.reloads.Add(1)
	s.logger.Info("stop words loaded",
		"path", s.path,
		"words", set.Len(),
		"checksum", string(set.Checksum()),
	)
	return nil
}

// Watch reloads the set whenever its file is written or replaced, until ctx
// is cancelled. The parent directory is watched so that atomic renames are
// seen as well.
func (s *Source) Watch(ctx context.Context) error {
	if s.path == "" {
		return ErrEmptyPath
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create stop-word watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(s.path)
	// A compiled set and its sidecar are replaced one after the other, so a
	// change to either one schedules a reload.
	sidecar := target + ChecksumSuffix
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if name := filepath.Clean(event.Name); name != target && name != sidecar {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				if err := s.Reload(); err != nil {
					s.logger.Error("stop-word reload failed, keeping previous set", "path", s.path, "error", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("stop-word watcher error", "error", err)
		}
	}
}
