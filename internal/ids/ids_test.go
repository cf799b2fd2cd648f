package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceFormats(t *testing.T) {
	assert.Equal(t, "S-2025-001", NewStudentSequence().Next())
	assert.Equal(t, "C-1001", NewCourseSequence().Next())
	assert.Equal(t, "R-0001", NewRegistrationSequence().Next())
	assert.Equal(t, "A-001", NewAdminSequence().Next())
}

func TestSequenceIsMonotonic(t *testing.T) {
	seq := NewRegistrationSequence()
	got := []string{seq.Next(), seq.Next(), seq.Next()}
	assert.Equal(t, []string{"R-0001", "R-0002", "R-0003"}, got)
	assert.Equal(t, 3, seq.Current())
}

func TestSequenceNextFreeSkipsTaken(t *testing.T) {
	seq := NewAdminSequence()
	taken := map[string]bool{"A-001": true, "A-002": true}

	id := seq.NextFree(func(id string) bool { return taken[id] })
	assert.Equal(t, "A-003", id)
	assert.Equal(t, "A-004", seq.Next())
}
