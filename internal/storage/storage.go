// Package storage defines the Collection interface each directory keeps
// its records in.
//
// A directory owns exactly one Collection and is the only code that
// mutates it. Backends keep records in insertion order so listings come
// out in the order records were created.
package storage

import "errors"

// Backend names accepted by the configuration.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// ErrDuplicateKey is returned by Insert when a record with the same key is
// already stored. Directories check uniqueness before inserting, so seeing
// this error means a directory invariant was broken.
var ErrDuplicateKey = errors.New("storage: duplicate key")

// Entity is a record addressable by a string key.
type Entity interface {
	Key() string
}

// Collection is an insertion-ordered set of records keyed by Entity.Key.
type Collection[T Entity] interface {
	// Insert appends a record. Returns ErrDuplicateKey if the key exists.
	Insert(record T) error

	// Get returns the record stored under id (exact match).
	Get(id string) (T, bool, error)

	// List returns every record in insertion order. Returns an empty,
	// non-nil slice when the collection is empty.
	List() ([]T, error)

	// Replace overwrites the record with the same key in place, keeping
	// its position. Reports false if no such record exists.
	Replace(record T) (bool, error)

	// Delete removes the record stored under id. Reports false if no such
	// record exists.
	Delete(id string) (bool, error)

	// Len returns the number of stored records.
	Len() (int, error)
}
