// Package response turns the results of directory operations into the
// text the console shows. The directories define failures; this package
// owns the wording.
package response

import (
	"errors"
	"fmt"

	"github.com/aanand-mishra/course-registration/internal/types"
)

// Status prefixes.
const (
	StatusOK    = "Success"
	StatusError = "Error"
)

// Response is one status line.
type Response struct {
	Status  string
	Message string
}

// String renders "Status: Message".
func (r Response) String() string {
	return r.Status + ": " + r.Message
}

// OK builds a success line.
func OK(format string, args ...any) Response {
	return Response{Status: StatusOK, Message: fmt.Sprintf(format, args...)}
}

// Fail builds an error line with a fixed message.
func Fail(format string, args ...any) Response {
	return Response{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// Failure translates a directory error. kind names the record type
// ("Student", "Course", ...) for not-found messages.
func Failure(kind string, err error) Response {
	var msg string
	switch {
	case errors.Is(err, types.ErrInvalidEmail):
		msg = "Invalid email format! Must contain @ and ."
	case errors.Is(err, types.ErrWeakPassword):
		msg = "Password must be at least 6 characters long!"
	case errors.Is(err, types.ErrDuplicateEmail):
		msg = "Email already in use!"
	case errors.Is(err, types.ErrDuplicateName):
		msg = "Course already exists!"
	case errors.Is(err, types.ErrDuplicateUsername):
		msg = "Admin already exists!"
	case errors.Is(err, types.ErrAlreadyEnrolled):
		msg = "Student already enrolled in this course!"
	case errors.Is(err, types.ErrNotFound):
		msg = kind + " not found!"
	default:
		msg = "Unexpected failure: " + err.Error()
	}
	return Response{Status: StatusError, Message: msg}
}

// Expected reports whether err is one of the typed failures a directory
// returns for bad input, as opposed to a storage or hashing error.
func Expected(err error) bool {
	for _, kind := range []error{
		types.ErrInvalidEmail,
		types.ErrWeakPassword,
		types.ErrDuplicateEmail,
		types.ErrDuplicateName,
		types.ErrDuplicateUsername,
		types.ErrAlreadyEnrolled,
		types.ErrNotFound,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// Student formats one student. The stored password is never shown.
func Student(s types.Student) string {
	return fmt.Sprintf("ID: %s | Name: %s | Email: %s", s.ID, s.Name, s.Email)
}

// Course formats one course.
func Course(c types.Course) string {
	return fmt.Sprintf("ID: %s | Name: %s | Teacher: %s | Duration: %s | Description: %s",
		c.ID, c.Name, c.Teacher, c.Duration, c.Description)
}

// Registration formats one registration.
func Registration(r types.Registration) string {
	return fmt.Sprintf("RegID: %s | StudentID: %s | CourseID: %s | Date: %s",
		r.ID, r.StudentID, r.CourseID, r.Date.Format(types.DateLayout))
}

// Admin formats one admin.
func Admin(a types.Admin) string {
	return fmt.Sprintf("ID: %s | Name: %s", a.ID, a.Username)
}
