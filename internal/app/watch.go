package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/groupsum/internal/domain"
	"github.com/bft-labs/groupsum/internal/ports"
	"github.com/bft-labs/groupsum/pkg/log"
)

// DefaultDebounce is the quiet period after a file change before re-running.
const DefaultDebounce = domain.DefaultDebounce

// ErrNotWatchable is returned by Watch when the source is not a file.
var ErrNotWatchable = errors.New("groupsum: input is not a file and cannot be watched")

// Watch runs once and then re-runs every time the input file is written or
// recreated, until ctx is cancelled. Failed runs are logged and do not stop
// the loop. Bursts of events within debounce collapse into a single run.
func (r *Runner) Watch(ctx context.Context, debounce time.Duration) error {
	fb, ok := r.source.(ports.FileBacked)
	if !ok {
		return ErrNotWatchable
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	path, err := filepath.Abs(fb.Path())
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	dir, name := filepath.Dir(path), filepath.Base(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Files replaced by rename (editor saves) only show up on the directory.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	r.logger.Info("watching input", log.String("path", path), log.Duration("debounce", debounce))

	r.runLogged(ctx)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
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
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			r.logger.Debug("input changed", log.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			r.runLogged(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (r *Runner) runLogged(ctx context.Context) {
	if _, err := r.RunOnce(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("run failed", log.String("source", r.source.Name()), log.Err(err))
	}
}
