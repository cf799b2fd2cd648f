// Package enrollment implements the ledger of student-to-course
// registrations.
//
// The ledger holds identifiers by value and never consults the student
// directory or the course catalog. Callers confirm the course exists
// before enrolling; deleting a student or course leaves its registrations
// behind.
package enrollment

import (
	"fmt"
	"time"

	"github.com/aanand-mishra/course-registration/internal/ids"
	"github.com/aanand-mishra/course-registration/internal/storage"
	"github.com/aanand-mishra/course-registration/internal/types"
)

// Clock returns the current time.
type Clock func() time.Time

// Ledger owns the registration records.
//
// Ledger is not safe for concurrent use.
type Ledger struct {
	registrations storage.Collection[types.Registration]
	ids           *ids.Sequence
	now           Clock
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides time.Now for stamping enrollment dates.
func WithClock(now Clock) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns a ledger backed by registrations.
func New(registrations storage.Collection[types.Registration], opts ...Option) *Ledger {
	l := &Ledger{
		registrations: registrations,
		ids:           ids.NewRegistrationSequence(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// GenerateID returns the next R-NNNN identifier.
func (l *Ledger) GenerateID() string {
	return l.ids.Next()
}

// Enroll records that studentID takes courseID, stamped with today's date.
// Fails with ErrAlreadyEnrolled if the pair is already registered.
func (l *Ledger) Enroll(studentID, courseID string) (types.Registration, error) {
	all, err := l.registrations.List()
	if err != nil {
		return types.Registration{}, fmt.Errorf("Enroll: list: %w", err)
	}
	for _, r := range all {
		if r.StudentID == studentID && r.CourseID == courseID {
			return types.Registration{}, fmt.Errorf("%w: %s in %s", types.ErrAlreadyEnrolled, studentID, courseID)
		}
	}

	r := types.Registration{
		ID:        l.GenerateID(),
		StudentID: studentID,
		CourseID:  courseID,
		Date:      today(l.now()),
	}
	if err := l.registrations.Insert(r); err != nil {
		return types.Registration{}, fmt.Errorf("Enroll: insert: %w", err)
	}
	return r, nil
}

// ListAll returns every registration in enrollment order.
func (l *Ledger) ListAll() ([]types.Registration, error) {
	all, err := l.registrations.List()
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return all, nil
}

// ListForStudent returns the registrations of studentID (exact match) in
// enrollment order.
func (l *Ledger) ListForStudent(studentID string) ([]types.Registration, error) {
	all, err := l.registrations.List()
	if err != nil {
		return nil, fmt.Errorf("ListForStudent: %w", err)
	}

	out := make([]types.Registration, 0)
	for _, r := range all {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Remove deletes a registration by exact identifier.
func (l *Ledger) Remove(registrationID string) error {
	ok, err := l.registrations.Delete(registrationID)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: registration %s", types.ErrNotFound, registrationID)
	}
	return nil
}

// today truncates t to midnight in its own location.
func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
