package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"storefront/models"
)

// FileStorage keeps each cart as one JSON file under Dir. The file name is
// the cart key; keys are uuids or session ids, never user input paths.
type FileStorage struct {
	Dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart storage dir: %w", err)
	}
	return &FileStorage{Dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.Dir, filepath.Base(key)+".json")
}

func (s *FileStorage) Load(key string) []models.LineItem {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil
	}
	var items []models.LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		// Corrupt payload: start over with an empty cart instead of
		// locking the user out of the store.
		return nil
	}
	return items
}

func (s *FileStorage) Save(key string, items []models.LineItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := os.WriteFile(s.path(key), b, 0o644); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

func (s *FileStorage) Clear(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove cart: %w", err)
	}
	return nil
}
