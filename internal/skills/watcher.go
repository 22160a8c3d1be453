package skills

import (
	"context"
	"path/filepath"
	"time"

	"jobmatch/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the skill map when its backing file changes on disk.
// Reloads merge append-only, so in-flight analyses keep a consistent view.
type Watcher struct {
	skillMap *SkillMap
	path     string
	debounce time.Duration
	logger   *errors.Logger
	onReload func()
}

// NewWatcher creates a watcher for the given skill map file.
func NewWatcher(skillMap *SkillMap, path string, logger *errors.Logger) *Watcher {
	return &Watcher{
		skillMap: skillMap,
		path:     path,
		debounce: time.Second,
		logger:   logger,
	}
}

// OnReload registers a callback invoked after every successful reload.
func (w *Watcher) OnReload(fn func()) {
	w.onReload = fn
}

// Start watches the file's directory until the context is canceled.
// Watching the directory instead of the file survives editors and
// config-management tools that replace the file via rename.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewInternalError("WATCHER_INIT_FAILED",
			"Failed to create file watcher", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return errors.NewIOError("WATCHER_ADD_FAILED",
			"Failed to watch skill map directory: "+dir, err)
	}

	if w.logger != nil {
		w.logger.Info("Watching skill map file", "path", w.path)
	}

	go w.loop(ctx, watcher)
	return nil
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		if err := watcher.Close(); err != nil && w.logger != nil {
			w.logger.Warn("Failed to close skill map watcher", "error", err)
		}
	}()

	var timer *time.Timer
	target := filepath.Clean(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// Debounce bursts of write events from a single save
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				w.reload()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("Skill map watcher error", "error", err)
			}
		}
	}
}

func (w *Watcher) reload() {
	if err := w.skillMap.LoadFile(w.path); err != nil {
		if w.logger != nil {
			w.logger.LogError(err, "Skill map reload failed", "path", w.path)
		}
		return
	}
	if w.logger != nil {
		w.logger.Info("Skill map reloaded", "path", w.path,
			"alias_count", w.skillMap.AliasCount())
	}
	if w.onReload != nil {
		w.onReload()
	}
}
