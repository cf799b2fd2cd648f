package response

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestFailure(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", types.ErrInvalidEmail), "Error: Invalid email format! Must contain @ and ."},
		{types.ErrWeakPassword, "Error: Password must be at least 6 characters long!"},
		{types.ErrDuplicateEmail, "Error: Email already in use!"},
		{types.ErrDuplicateName, "Error: Course already exists!"},
		{types.ErrDuplicateUsername, "Error: Admin already exists!"},
		{types.ErrAlreadyEnrolled, "Error: Student already enrolled in this course!"},
		{fmt.Errorf("%w: course C-1", types.ErrNotFound), "Error: Course not found!"},
		{errors.New("disk on fire"), "Error: Unexpected failure: disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Failure("Course", tt.err).String())
		})
	}
}

func TestOK(t *testing.T) {
	assert.Equal(t, "Success: Enrollment successful! Registration ID: R-0001",
		OK("Enrollment successful! Registration ID: %s", "R-0001").String())
	assert.Equal(t, "Error: Invalid choice!", Fail("Invalid choice!").String())
}

func TestRecordLines(t *testing.T) {
	assert.Equal(t, "ID: S-2025-001 | Name: Alice | Email: a@x.io",
		Student(types.Student{ID: "S-2025-001", Name: "Alice", Email: "a@x.io", Password: "secret1"}))

	assert.Equal(t, "ID: C-1001 | Name: Algebra | Teacher: Smith | Duration: 3 months | Description: intro",
		Course(types.Course{ID: "C-1001", Name: "Algebra", Teacher: "Smith", Duration: "3 months", Description: "intro"}))

	assert.Equal(t, "RegID: R-0001 | StudentID: S-2025-001 | CourseID: C-1001 | Date: 2025-03-14",
		Registration(types.Registration{
			ID: "R-0001", StudentID: "S-2025-001", CourseID: "C-1001",
			Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		}))

	assert.Equal(t, "ID: A-001 | Name: admin", Admin(types.Admin{ID: "A-001", Username: "admin"}))
}

func TestExpected(t *testing.T) {
	assert.True(t, Expected(fmt.Errorf("%w: a@b.c", types.ErrDuplicateEmail)))
	assert.True(t, Expected(types.ErrNotFound))
	assert.False(t, Expected(errors.New("List: query: database is locked")))
}
