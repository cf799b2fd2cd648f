// Package ids generates the human-readable record identifiers.
//
// Each directory owns its own Sequence. A sequence only moves forward, so
// an identifier is never handed out twice even after the record holding it
// has been deleted.
package ids

import "fmt"

// Formats and starting values of the observable identifier contract.
const (
	StudentFormat      = "S-2025-%03d"
	CourseFormat       = "C-%04d"
	RegistrationFormat = "R-%04d"
	AdminFormat        = "A-%03d"

	StudentStart      = 0
	CourseStart       = 1000
	RegistrationStart = 0
	AdminStart        = 0
)

// Sequence is a pre-incremented counter rendered through a printf format.
// It is not safe for concurrent use; the owning directory serialises access.
type Sequence struct {
	format  string
	counter int
}

// NewSequence returns a sequence whose first Next call yields start+1.
func NewSequence(format string, start int) *Sequence {
	return &Sequence{format: format, counter: start}
}

// NewStudentSequence yields S-2025-001, S-2025-002, ...
func NewStudentSequence() *Sequence { return NewSequence(StudentFormat, StudentStart) }

// NewCourseSequence yields C-1001, C-1002, ...
func NewCourseSequence() *Sequence { return NewSequence(CourseFormat, CourseStart) }

// NewRegistrationSequence yields R-0001, R-0002, ...
func NewRegistrationSequence() *Sequence {
	return NewSequence(RegistrationFormat, RegistrationStart)
}

// NewAdminSequence yields A-001, A-002, ...
func NewAdminSequence() *Sequence { return NewSequence(AdminFormat, AdminStart) }

// Next advances the counter and returns the formatted identifier.
func (s *Sequence) Next() string {
	s.counter++
	return fmt.Sprintf(s.format, s.counter)
}

// NextFree advances until taken reports the identifier as unused. Used where
// records may also be inserted under fixed identifiers.
func (s *Sequence) NextFree(taken func(id string) bool) string {
	for {
		id := s.Next()
		if !taken(id) {
			return id
		}
	}
}

// Current returns the last value handed out (or the start value).
func (s *Sequence) Current() int { return s.counter }
