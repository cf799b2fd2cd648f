// Package student implements the student directory: sign-up, login,
// lookup, profile updates and removal.
package student

import (
	"fmt"
	"strings"

	"github.com/aanand-mishra/course-registration/internal/auth"
	"github.com/aanand-mishra/course-registration/internal/ids"
	"github.com/aanand-mishra/course-registration/internal/storage"
	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/aanand-mishra/course-registration/internal/validation"
)

// Directory owns the student records. Every check runs before the
// collection is touched, so a failed call leaves it unchanged.
//
// Directory is not safe for concurrent use.
type Directory struct {
	students storage.Collection[types.Student]
	ids      *ids.Sequence
	verifier auth.Verifier
}

// New returns a directory backed by students. The collection must not be
// shared with any other component.
func New(students storage.Collection[types.Student], verifier auth.Verifier) *Directory {
	return &Directory{
		students: students,
		ids:      ids.NewStudentSequence(),
		verifier: verifier,
	}
}

// GenerateID returns the next S-2025-NNN identifier. Identifiers are never
// reused, even after the student holding one is removed.
func (d *Directory) GenerateID() string {
	return d.ids.Next()
}

// Register validates the input and stores a new student.
//
// Fails with ErrInvalidEmail, ErrWeakPassword or ErrDuplicateEmail, in
// that order of precedence.
func (d *Directory) Register(name, email, password string) (types.Student, error) {
	in := validation.Registration{Name: name, Email: email, Password: password}
	if err := in.Validate(); err != nil {
		return types.Student{}, err
	}

	all, err := d.students.List()
	if err != nil {
		return types.Student{}, fmt.Errorf("Register: list: %w", err)
	}
	if _, taken := findByEmail(all, email); taken {
		return types.Student{}, fmt.Errorf("%w: %s", types.ErrDuplicateEmail, email)
	}

	secret, err := d.verifier.Hash(password)
	if err != nil {
		return types.Student{}, fmt.Errorf("Register: %w", err)
	}

	s := types.Student{
		ID:       d.GenerateID(),
		Name:     name,
		Email:    email,
		Password: secret,
	}
	if err := d.students.Insert(s); err != nil {
		return types.Student{}, fmt.Errorf("Register: insert: %w", err)
	}
	return s, nil
}

// Authenticate returns the first student whose email matches
// case-insensitively and whose password verifies. Bad credentials are
// reported as ok == false, never as an error.
func (d *Directory) Authenticate(email, password string) (types.Student, bool, error) {
	all, err := d.students.List()
	if err != nil {
		return types.Student{}, false, fmt.Errorf("Authenticate: list: %w", err)
	}

	for _, s := range all {
		if strings.EqualFold(s.Email, email) && d.verifier.Verify(s.Password, password) {
			return s, true, nil
		}
	}
	return types.Student{}, false, nil
}

// GetByID looks a student up by exact identifier.
func (d *Directory) GetByID(id string) (types.Student, bool, error) {
	s, ok, err := d.students.Get(id)
	if err != nil {
		return types.Student{}, false, fmt.Errorf("GetByID: %w", err)
	}
	return s, ok, nil
}

// Update overwrites name and email. The password is left untouched.
// Keeping one's own email (in any case) is not a collision.
func (d *Directory) Update(id, name, email string) (types.Student, error) {
	s, ok, err := d.GetByID(id)
	if err != nil {
		return types.Student{}, err
	}
	if !ok {
		return types.Student{}, fmt.Errorf("%w: student %s", types.ErrNotFound, id)
	}

	if err := validation.Email(email); err != nil {
		return types.Student{}, err
	}

	all, err := d.students.List()
	if err != nil {
		return types.Student{}, fmt.Errorf("Update: list: %w", err)
	}
	if holder, taken := findByEmail(all, email); taken && holder.ID != id {
		return types.Student{}, fmt.Errorf("%w: %s", types.ErrDuplicateEmail, email)
	}

	s.Name = name
	s.Email = email
	if _, err := d.students.Replace(s); err != nil {
		return types.Student{}, fmt.Errorf("Update: replace: %w", err)
	}
	return s, nil
}

// ChangePassword replaces the stored secret after checking its strength.
func (d *Directory) ChangePassword(id, password string) error {
	s, ok, err := d.GetByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: student %s", types.ErrNotFound, id)
	}

	if err := validation.Password(password); err != nil {
		return err
	}

	secret, err := d.verifier.Hash(password)
	if err != nil {
		return fmt.Errorf("ChangePassword: %w", err)
	}

	s.Password = secret
	if _, err := d.students.Replace(s); err != nil {
		return fmt.Errorf("ChangePassword: replace: %w", err)
	}
	return nil
}

// Remove deletes the student. Registrations that reference the student
// are left in place.
func (d *Directory) Remove(id string) error {
	ok, err := d.students.Delete(id)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: student %s", types.ErrNotFound, id)
	}
	return nil
}

// ListAll returns every student in registration order. An empty slice
// means there are no students.
func (d *Directory) ListAll() ([]types.Student, error) {
	all, err := d.students.List()
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return all, nil
}

func findByEmail(all []types.Student, email string) (types.Student, bool) {
	for _, s := range all {
		if strings.EqualFold(s.Email, email) {
			return s, true
		}
	}
	return types.Student{}, false
}
