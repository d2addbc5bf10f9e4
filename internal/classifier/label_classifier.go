package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"money-tracker/internal/taxonomy"

	"github.com/fsnotify/fsnotify"
)

var (
	ErrModelUnavailable = errors.New("classification model unavailable")
	ErrWatchUnsupported = errors.New("store does not support watching")
)

// LabelClassifier serves predictions from an immutable model snapshot and
// applies corrections through a single writer. Predict may run concurrently
// with PartialFit; PartialFit calls are serialised.
type LabelClassifier struct {
	registry *taxonomy.Registry
	store    Store
	current  atomic.Pointer[Model]
	writeMu  sync.Mutex
	logger   *slog.Logger
}

// NewLabelClassifier loads the initial snapshot from store. A missing or
// unreadable artifact leaves the classifier in degraded mode.
func NewLabelClassifier(registry *taxonomy.Registry, store Store) *LabelClassifier {
	lc := &LabelClassifier{
		registry: registry,
		store:    store,
		logger:   slog.Default(),
	}

	if m, ok := store.Load(); ok {
		lc.current.Store(m)
		lc.logger.Info("classifier model loaded",
			slog.Int("labels", len(m.Labels)),
			slog.Int("vocabulary", m.Transform.Size()),
			slog.Int64("revision", m.Revision()),
		)
	}

	return lc
}

// Available reports whether a model snapshot is loaded.
func (lc *LabelClassifier) Available() bool {
	return lc.current.Load() != nil
}

// Snapshot returns the current model, or nil in degraded mode. Callers must
// treat it as read-only.
func (lc *LabelClassifier) Snapshot() *Model {
	return lc.current.Load()
}

// Predict returns the label for text, or the taxonomy default when no model
// is loaded.
func (lc *LabelClassifier) Predict(text string) string {
	m := lc.current.Load()
	if m == nil {
		return lc.registry.DefaultLabel()
	}
	label := m.Predict(text)
	if label == "" {
		return lc.registry.DefaultLabel()
	}
	return label
}

// KnownLabels returns the labels of the current snapshot.
func (lc *LabelClassifier) KnownLabels() []string {
	m := lc.current.Load()
	if m == nil {
		return []string{}
	}
	return append([]string(nil), m.Labels...)
}

// PartialFit learns one corrected example. The new snapshot is published only
// after it has been saved, so a failed save leaves the served model and the
// artifact unchanged.
func (lc *LabelClassifier) PartialFit(ctx context.Context, text, label string) error {
	if _, _, err := taxonomy.Decompose(label); err != nil {
		return err
	}

	lc.writeMu.Lock()
	defer lc.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	current := lc.current.Load()
	if current == nil {
		return ErrModelUnavailable
	}

	next := current.Clone()
	added, err := next.Learn(text, label)
	if err != nil {
		return err
	}

	if err := lc.store.Save(next); err != nil {
		return fmt.Errorf("failed to persist model: %w", err)
	}
	lc.current.Store(next)

	lc.logger.InfoContext(ctx, "classifier model updated",
		slog.String("label", label),
		slog.Bool("label_added", added),
		slog.Int("labels", len(next.Labels)),
		slog.Int64("revision", next.Revision()),
	)
	return nil
}

// Reload replaces the snapshot with whatever the store currently holds. The
// current snapshot is kept if the artifact cannot be read.
func (lc *LabelClassifier) Reload() bool {
	lc.writeMu.Lock()
	defer lc.writeMu.Unlock()

	m, ok := lc.store.Load()
	if !ok {
		return false
	}
	lc.current.Store(m)

	lc.logger.Info("classifier model reloaded",
		slog.Int("labels", len(m.Labels)),
		slog.Int64("revision", m.Revision()),
	)
	return true
}

// Watch reloads the model whenever its file is replaced on disk, for example
// by a training run. It blocks until ctx is done.
func (lc *LabelClassifier) Watch(ctx context.Context) error {
	fs, ok := lc.store.(*FileStore)
	if !ok {
		return ErrWatchUnsupported
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create model watcher: %w", err)
	}
	defer watcher.Close()

	// Saves rename over the target, so the directory is watched rather than the file.
	dir := filepath.Dir(fs.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fs.Path() {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) {
				lc.Reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			lc.logger.Warn("model watcher error", slog.String("error", err.Error()))
		}
	}
}
