// Package admin implements the administrator directory, including the
// bootstrap of a default account the first time the admin portal is used.
package admin

import (
	"fmt"

	"github.com/aanand-mishra/course-registration/internal/auth"
	"github.com/aanand-mishra/course-registration/internal/ids"
	"github.com/aanand-mishra/course-registration/internal/storage"
	"github.com/aanand-mishra/course-registration/internal/types"
)

// Default account created by EnsureDefaultAdmin.
const (
	DefaultID       = "A-001"
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

// Directory owns the admin records. Usernames are compared exactly.
//
// Directory is not safe for concurrent use.
type Directory struct {
	admins   storage.Collection[types.Admin]
	ids      *ids.Sequence
	verifier auth.Verifier

	defaultUsername string
	defaultPassword string
}

// Option configures a Directory.
type Option func(*Directory)

// WithDefaultCredentials overrides the username and password of the
// bootstrap account. Its identifier stays DefaultID.
func WithDefaultCredentials(username, password string) Option {
	return func(d *Directory) {
		d.defaultUsername = username
		d.defaultPassword = password
	}
}

// New returns a directory backed by admins.
func New(admins storage.Collection[types.Admin], verifier auth.Verifier, opts ...Option) *Directory {
	d := &Directory{
		admins:          admins,
		ids:             ids.NewAdminSequence(),
		verifier:        verifier,
		defaultUsername: DefaultUsername,
		defaultPassword: DefaultPassword,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HasAny reports whether at least one admin exists.
func (d *Directory) HasAny() (bool, error) {
	n, err := d.admins.Len()
	if err != nil {
		return false, fmt.Errorf("HasAny: %w", err)
	}
	return n > 0, nil
}

// EnsureDefaultAdmin inserts the default account when the directory is
// empty and reports whether it did. Once any admin exists, default or
// added, it is a no-op.
func (d *Directory) EnsureDefaultAdmin() (bool, error) {
	exists, err := d.HasAny()
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	secret, err := d.verifier.Hash(d.defaultPassword)
	if err != nil {
		return false, fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}

	a := types.Admin{ID: DefaultID, Username: d.defaultUsername, Password: secret}
	if err := d.admins.Insert(a); err != nil {
		return false, fmt.Errorf("EnsureDefaultAdmin: insert: %w", err)
	}
	return true, nil
}

// Add stores a new admin under the next free A-NNN identifier. DefaultID is
// reserved for the bootstrap account and never handed out here. Fails with
// ErrDuplicateUsername if the username is taken.
func (d *Directory) Add(username, password string) (types.Admin, error) {
	all, err := d.admins.List()
	if err != nil {
		return types.Admin{}, fmt.Errorf("Add: list: %w", err)
	}
	if _, taken := findByUsername(all, username); taken {
		return types.Admin{}, fmt.Errorf("%w: %s", types.ErrDuplicateUsername, username)
	}

	secret, err := d.verifier.Hash(password)
	if err != nil {
		return types.Admin{}, fmt.Errorf("Add: %w", err)
	}

	used := make(map[string]bool, len(all))
	for _, a := range all {
		used[a.ID] = true
	}

	a := types.Admin{
		ID:       d.ids.NextFree(func(id string) bool { return id == DefaultID || used[id] }),
		Username: username,
		Password: secret,
	}
	if err := d.admins.Insert(a); err != nil {
		return types.Admin{}, fmt.Errorf("Add: insert: %w", err)
	}
	return a, nil
}

// Authenticate returns the first admin with exactly this username whose
// password verifies.
func (d *Directory) Authenticate(username, password string) (types.Admin, bool, error) {
	all, err := d.admins.List()
	if err != nil {
		return types.Admin{}, false, fmt.Errorf("Authenticate: list: %w", err)
	}
	for _, a := range all {
		if a.Username == username && d.verifier.Verify(a.Password, password) {
			return a, true, nil
		}
	}
	return types.Admin{}, false, nil
}

// GetByID looks an admin up by exact identifier.
func (d *Directory) GetByID(id string) (types.Admin, bool, error) {
	a, ok, err := d.admins.Get(id)
	if err != nil {
		return types.Admin{}, false, fmt.Errorf("GetByID: %w", err)
	}
	return a, ok, nil
}

// Update renames an admin and replaces its password. Fails with
// ErrDuplicateUsername if another admin holds the username.
func (d *Directory) Update(id, username, password string) (types.Admin, error) {
	a, ok, err := d.GetByID(id)
	if err != nil {
		return types.Admin{}, err
	}
	if !ok {
		return types.Admin{}, fmt.Errorf("%w: admin %s", types.ErrNotFound, id)
	}

	all, err := d.admins.List()
	if err != nil {
		return types.Admin{}, fmt.Errorf("Update: list: %w", err)
	}
	if holder, taken := findByUsername(all, username); taken && holder.ID != id {
		return types.Admin{}, fmt.Errorf("%w: %s", types.ErrDuplicateUsername, username)
	}

	secret, err := d.verifier.Hash(password)
	if err != nil {
		return types.Admin{}, fmt.Errorf("Update: %w", err)
	}

	a.Username = username
	a.Password = secret
	if _, err := d.admins.Replace(a); err != nil {
		return types.Admin{}, fmt.Errorf("Update: replace: %w", err)
	}
	return a, nil
}

// Remove deletes an admin by exact identifier.
func (d *Directory) Remove(id string) error {
	ok, err := d.admins.Delete(id)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: admin %s", types.ErrNotFound, id)
	}
	return nil
}

// ListAll returns every admin in creation order.
func (d *Directory) ListAll() ([]types.Admin, error) {
	all, err := d.admins.List()
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return all, nil
}

func findByUsername(all []types.Admin, username string) (types.Admin, bool) {
	for _, a := range all {
		if a.Username == username {
			return a, true
		}
	}
	return types.Admin{}, false
}
