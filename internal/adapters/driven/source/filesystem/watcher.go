package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/grepl/internal/core/domain"
	"github.com/custodia-labs/grepl/internal/logger"
)

// Watch emits a Change whenever the file at path is created, written or
// removed. The parent directory is watched rather than the file itself:
// editors that replace the file on save would otherwise leave the watch
// attached to the old inode. Event bursts from a single save are
// collapsed by the debounce limiter.
//
// Both returned channels close when ctx is cancelled.
func (s *Source) Watch(ctx context.Context, path string) (<-chan domain.Change, <-chan error, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	changes := make(chan domain.Change)
	errs := make(chan error, 1)
	limiter := rate.NewLimiter(rate.Every(s.debounce), 1)

	go func() {
		defer close(changes)
		defer close(errs)
		defer func() { _ = watcher.Close() }()

		logger.Debug("Watching %s", target)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				change := changeForEvent(event, target)
				if change == nil {
					continue
				}
				if !limiter.Allow() {
					logger.Debug("Debounced %s event for %s", change.Type, change.Path)
					continue
				}

				select {
				case <-ctx.Done():
					return
				case changes <- *change:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					return
				case errs <- fmt.Errorf("watch %s: %w", target, err):
				}
			}
		}
	}()

	return changes, errs, nil
}

// changeForEvent maps a filesystem event on the watched directory to a
// Change, or nil when the event concerns another file or an ignored
// operation such as chmod.
func changeForEvent(event fsnotify.Event, target string) *domain.Change {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return nil
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		return &domain.Change{Type: domain.ChangeCreated, Path: target}
	case event.Op.Has(fsnotify.Write):
		return &domain.Change{Type: domain.ChangeUpdated, Path: target}
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return &domain.Change{Type: domain.ChangeDeleted, Path: target}
	default:
		return nil
	}
}
