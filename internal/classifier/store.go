package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store persists a Model as a single artifact.
type Store interface {
	// Load returns the stored model, or false when none can be read.
	Load() (*Model, bool)
	// Save replaces the stored model atomically.
	Save(m *Model) error
}

// FileStore keeps the model as a JSON file. Saves go through a temporary
// file in the same directory followed by a rename, so readers only ever see
// a complete artifact.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:   filepath.Clean(path),
		logger: slog.Default(),
	}
}

// Path returns the artifact location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (*Model, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("classifier model not found, running without a model",
				slog.String("path", s.path),
			)
		} else {
			s.logger.Error("failed to read classifier model",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		s.logger.Error("failed to decode classifier model",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	if err := m.Validate(); err != nil {
		s.logger.Error("classifier model is inconsistent",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	return &m, true
}

func (s *FileStore) Save(m *Model) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid model: %w", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp model file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write model: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close model file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace model: %w", err)
	}
	committed = true

	syncDir(dir)
	return nil
}

// syncDir flushes the rename to disk where the platform allows it.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
