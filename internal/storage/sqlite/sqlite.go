// Package sqlite provides a SQLite-backed storage.Collection.
//
// Each collection is one table holding a JSON body per record plus an
// autoincrement sequence column that preserves insertion order. Tables are
// dropped and recreated when a collection is opened: the database is a
// scratch area for one run, not a persistent store.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/aanand-mishra/course-registration/internal/storage"

	"github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

var tableName = regexp.MustCompile(`^[a-z_]+$`)

// Open opens the database at dsn. The pool is capped at one connection so
// every collection sees the same in-memory database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: ping: %w", err)
	}
	return db, nil
}

// Collection stores records of type T in a single table.
type Collection[T storage.Entity] struct {
	db    *sql.DB
	table string
}

var _ storage.Collection[storage.Entity] = (*Collection[storage.Entity])(nil)

// New (re)creates table in db and returns a collection backed by it.
func New[T storage.Entity](db *sql.DB, table string) (*Collection[T], error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("sqlite.New: invalid table name %q", table)
	}

	if _, err := db.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
		return nil, fmt.Errorf("sqlite.New: drop table: %w", err)
	}

	_, err := db.Exec(`
		CREATE TABLE ` + table + ` (
			seq  INTEGER PRIMARY KEY AUTOINCREMENT,
			id   TEXT    NOT NULL UNIQUE,
			body TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &Collection[T]{db: db, table: table}, nil
}

// Insert appends record.
func (c *Collection[T]) Insert(record T) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("Insert: encode: %w", err)
	}

	stmt, err := c.db.Prepare("INSERT INTO " + c.table + " (id, body) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("Insert: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(record.Key(), string(body)); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.Key())
		}
		return fmt.Errorf("Insert: exec: %w", err)
	}
	return nil
}

// Get returns the record stored under id.
func (c *Collection[T]) Get(id string) (T, bool, error) {
	var zero T

	stmt, err := c.db.Prepare("SELECT body FROM " + c.table + " WHERE id = ? LIMIT 1")
	if err != nil {
		return zero, false, fmt.Errorf("Get: prepare: %w", err)
	}
	defer stmt.Close()

	var body string
	if err := stmt.QueryRow(id).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("Get: scan: %w", err)
	}

	var record T
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		return zero, false, fmt.Errorf("Get: decode: %w", err)
	}
	return record, true, nil
}

// List returns all records ordered by insertion.
func (c *Collection[T]) List() ([]T, error) {
	stmt, err := c.db.Prepare("SELECT body FROM " + c.table + " ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("List: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("List: query: %w", err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("List: scan row: %w", err)
		}

		var record T
		if err := json.Unmarshal([]byte(body), &record); err != nil {
			return nil, fmt.Errorf("List: decode: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows iteration: %w", err)
	}
	return records, nil
}

// Replace overwrites the body of the record with the same key. The seq
// column is untouched so the record keeps its position.
func (c *Collection[T]) Replace(record T) (bool, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("Replace: encode: %w", err)
	}

	stmt, err := c.db.Prepare("UPDATE " + c.table + " SET body = ? WHERE id = ?")
	if err != nil {
		return false, fmt.Errorf("Replace: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(string(body), record.Key())
	if err != nil {
		return false, fmt.Errorf("Replace: exec: %w", err)
	}
	return affected(result, "Replace")
}

// Delete removes the record stored under id.
func (c *Collection[T]) Delete(id string) (bool, error) {
	stmt, err := c.db.Prepare("DELETE FROM " + c.table + " WHERE id = ?")
	if err != nil {
		return false, fmt.Errorf("Delete: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return false, fmt.Errorf("Delete: exec: %w", err)
	}
	return affected(result, "Delete")
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(&n); err != nil {
		return 0, fmt.Errorf("Len: scan: %w", err)
	}
	return n, nil
}

func affected(result sql.Result, op string) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return n > 0, nil
}
