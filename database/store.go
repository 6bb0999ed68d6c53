package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound is returned when a record id does not exist in a collection.
	ErrNotFound = errors.New("record not found")
	// ErrStorage wraps unreadable or corrupt collection files.
	ErrStorage = errors.New("storage error")
)

// Record is anything that can live in a Collection.
type Record interface {
	RecordID() string
}

// Collection is a JSON-array-of-objects file holding one record type.
// Every save rewrites the whole file; a per-collection mutex serializes
// writers inside the process.
type Collection[T Record] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T Record](dir, filename string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, filename)}
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorage, c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorage, c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) write(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorage, c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrStorage, c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorage, c.path, err)
	}
	return nil
}

// All returns every record in the collection. A missing file is an empty
// collection, not an error.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// ByID returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) ByID(id string) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	return zero, ErrNotFound
}

// Append adds one record to the end of the collection.
func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	return c.write(append(items, item))
}

// Update replaces the record whose id matches, keeping its position.
func (c *Collection[T]) Update(id string, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.RecordID() == id {
			items[i] = item
			return c.write(items)
		}
	}
	return ErrNotFound
}

// Delete removes the record with the given id. Deleting an unknown id is not
// an error.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	return c.write(kept)
}

// ReplaceAll overwrites the whole collection.
func (c *Collection[T]) ReplaceAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(items)
}
