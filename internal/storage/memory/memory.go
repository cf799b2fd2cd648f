// Package memory provides the default, ephemeral storage.Collection. It
// lives for one run of the program and is never persisted.
package memory

import (
	"fmt"

	"github.com/aanand-mishra/course-registration/internal/storage"
)

// Collection keeps records in a slice (insertion order) plus a key index.
//
// It is not safe for concurrent use. Lookups and deletes are O(n) in the
// worst case, which is fine for the sizes a single session produces.
type Collection[T storage.Entity] struct {
	records []T
	index   map[string]int
}

var _ storage.Collection[storage.Entity] = (*Collection[storage.Entity])(nil)

// New returns an empty collection.
func New[T storage.Entity]() *Collection[T] {
	return &Collection[T]{
		records: make([]T, 0),
		index:   make(map[string]int),
	}
}

// Insert appends record.
func (c *Collection[T]) Insert(record T) error {
	key := record.Key()
	if _, ok := c.index[key]; ok {
		return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, key)
	}
	c.index[key] = len(c.records)
	c.records = append(c.records, record)
	return nil
}

// Get returns the record stored under id.
func (c *Collection[T]) Get(id string) (T, bool, error) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	return c.records[i], true, nil
}

// List returns a copy of all records in insertion order.
func (c *Collection[T]) List() ([]T, error) {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

// Replace overwrites the record with the same key.
func (c *Collection[T]) Replace(record T) (bool, error) {
	i, ok := c.index[record.Key()]
	if !ok {
		return false, nil
	}
	c.records[i] = record
	return true, nil
}

// Delete removes the record stored under id and shifts later records down.
func (c *Collection[T]) Delete(id string) (bool, error) {
	i, ok := c.index[id]
	if !ok {
		return false, nil
	}

	c.records = append(c.records[:i], c.records[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.records); j++ {
		c.index[c.records[j].Key()] = j
	}
	return true, nil
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() (int, error) {
	return len(c.records), nil
}
