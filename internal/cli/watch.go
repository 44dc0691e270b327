package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/seitarof/gen-builder/internal/workspace"
)

// debounce delays regeneration after a file event so editors that
// write in several steps trigger one cycle.
const debounce = 200 * time.Millisecond

// Watcher re-runs generation whenever the input file changes.
type Watcher interface {
	Watch(ctx context.Context, cfg *Config) error
}

type watcherImpl struct {
	runner Runner
	log    *zap.Logger
}

// NewWatcher creates a Watcher around runner. A nil logger disables
// logging.
func NewWatcher(runner Runner, log *zap.Logger) Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &watcherImpl{runner: runner, log: log}
}

// Watch generates once, then watches the input file's directory and
// regenerates on changes until ctx is canceled. Cycle failures are
// logged and the watch continues.
func (w *watcherImpl) Watch(ctx context.Context, cfg *Config) error {
	w.cycle(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(cfg.Input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Info("watching for changes", zap.String("input", cfg.Input))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, cfg.Input) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))
		case <-fire:
			timer, fire = nil, nil
			w.cycle(cfg)
		}
	}
}

func (w *watcherImpl) cycle(cfg *Config) {
	err := w.runner.Run(cfg)
	if err == nil {
		return
	}
	if workspace.Classify(err) == workspace.FaultTooling {
		w.log.Warn("generation cycle abandoned", zap.Error(err))
		return
	}
	w.log.Error("generation cycle failed", zap.Error(err))
}

// relevant reports whether ev is a content change of the input file.
// Editors may replace the file, so create and rename count as well.
func relevant(ev fsnotify.Event, input string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(input) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
