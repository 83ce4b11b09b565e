package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mgpai22/srt2vtt/internal/logging"
	"github.com/mgpai22/srt2vtt/internal/subtitle"
)

// Handler processes one newly created subtitle file.
type Handler func(ctx context.Context, path string) error

// Watcher converts SRT files as they appear in a directory.
type Watcher struct {
	dir         string
	handler     Handler
	logger      *logging.Logger
	settleDelay time.Duration
	watcher     *fsnotify.Watcher
}

func New(
	dir string,
	handler Handler,
	logger *logging.Logger,
	settleDelay time.Duration,
) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if logger == nil {
		logger = logging.NewNop()
	}

	return &Watcher{
		dir:         dir,
		handler:     handler,
		logger:      logger,
		settleDelay: settleDelay,
		watcher:     fw,
	}, nil
}

// a path whose settle timer fired; gen identifies the timer
type settled struct {
	path string
	gen  uint64
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
// Each created or written .srt file is handled once its events have been
// quiet for the settle delay; repeated events for a path restart its timer.
// Files are handled one at a time on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Infow("Watching for subtitle files", "dir", w.dir)

	pending := make(map[string]*time.Timer)
	gens := make(map[string]uint64)
	ready := make(chan settled)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infow("Watcher stopped", "dir", w.dir)
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !subtitle.IsSRT(event.Name) {
				w.logger.Debugw("Ignoring file", "path", event.Name)
				continue
			}

			path := event.Name
			if t, ok := pending[path]; ok {
				t.Stop()
			} else {
				w.logger.Infow("Subtitle file changed", "path", path)
			}
			gens[path]++
			next := settled{path: path, gen: gens[path]}
			pending[path] = time.AfterFunc(w.settleDelay, func() {
				select {
				case ready <- next:
				case <-ctx.Done():
				}
			})

		case s := <-ready:
			// superseded by a later event for the same path
			if gens[s.path] != s.gen {
				continue
			}
			delete(pending, s.path)

			if err := w.handler(ctx, s.path); err != nil {
				w.logger.Errorw("Failed to convert subtitle file",
					"path", s.path,
					"error", err,
				)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Warnw("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
