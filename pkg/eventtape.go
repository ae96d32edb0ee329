// Package pkg is a package that provides utilities for classmark.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Tape is a generic append-only journal of items of type T. The recording
// class builder uses it to capture every builder event in arrival order, so
// two pipeline runs can be compared entry by entry.
type Tape[T any] interface {
	Len() uint64
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	// Snapshot returns a copy of the journal contents in order.
	Snapshot() []T
	// Spill writes the journal to path using gob encoding.
	Spill(path string) error
}

type tapeImpl[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewTape creates an empty Tape for items of type T.
func NewTape[T any]() Tape[T] {
	return &tapeImpl[T]{}
}

// Append implements Tape.
func (t *tapeImpl[T]) Append(item T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, item)
	slog.Debug("appended item", "index", len(t.items)-1)

	return nil
}

// AppendBatch implements Tape.
func (t *tapeImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := t.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Get implements Tape.
func (t *tapeImpl[T]) Get(index uint64) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index >= uint64(len(t.items)) {
		var zero T

		slog.Warn("get index out of bounds", "index", index, "length", len(t.items))

		return zero, fmt.Errorf("index %d out of bounds (length %d)", index, len(t.items))
	}

	return t.items[index], nil
}

// Len implements Tape.
func (t *tapeImpl[T]) Len() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return uint64(len(t.items))
}

// Range implements Tape.
func (t *tapeImpl[T]) Range(fn func(index uint64, item T) error) error {
	for index, item := range t.Snapshot() {
		if err := fn(uint64(index), item); err != nil {
			slog.Warn("range callback error", "index", index, "error", err)
			return err
		}
	}

	return nil
}

// Snapshot implements Tape.
func (t *tapeImpl[T]) Snapshot() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := make([]T, len(t.items))
	copy(snapshot, t.items)

	return snapshot
}

// Spill implements Tape.
func (t *tapeImpl[T]) Spill(path string) error {
	items := t.Snapshot()

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create spill file", "path", path, "error", err)
		return fmt.Errorf("failed to create spill file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill file", "path", path, "error", err)
		}
	}()

	encoder := gob.NewEncoder(file)

	for index, item := range items {
		if err := encoder.Encode(item); err != nil {
			slog.Error("failed to encode item", "path", path, "index", index, "error", err)
			return fmt.Errorf("failed to encode item at index %d: %w", index, err)
		}
	}

	slog.Debug("spilled tape", "path", path, "count", len(items))

	return nil
}

// ReadSpill loads a gob-encoded journal previously written by Spill.
func ReadSpill[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spill file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill file", "path", path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	var items []T

	for {
		var item T

		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("failed to decode item at index %d: %w", len(items), err)
		}

		items = append(items, item)
	}

	return items, nil
}
