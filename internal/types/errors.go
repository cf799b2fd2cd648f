package types

import "errors"

// Failure kinds returned by the directories. Callers match them with
// errors.Is; the wrapped message carries the offending key.
var (
	// ErrInvalidEmail indicates an email that is empty or lacks '@' or '.'.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrWeakPassword indicates a password shorter than six characters.
	ErrWeakPassword = errors.New("weak password")

	// ErrDuplicateEmail indicates another student already uses the email.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrDuplicateName indicates a course with that name already exists.
	ErrDuplicateName = errors.New("course already exists")

	// ErrDuplicateUsername indicates an admin with that username already exists.
	ErrDuplicateUsername = errors.New("admin already exists")

	// ErrAlreadyEnrolled indicates the student is already in the course.
	ErrAlreadyEnrolled = errors.New("already enrolled")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
