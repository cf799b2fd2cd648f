package console

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aanand-mishra/course-registration/internal/admin"
	"github.com/aanand-mishra/course-registration/internal/auth"
	"github.com/aanand-mishra/course-registration/internal/course"
	"github.com/aanand-mishra/course-registration/internal/enrollment"
	"github.com/aanand-mishra/course-registration/internal/storage/memory"
	"github.com/aanand-mishra/course-registration/internal/student"
	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices() Services {
	verifier := auth.PlainText{}
	return Services{
		Students: student.New(memory.New[types.Student](), verifier),
		Courses:  course.New(memory.New[types.Course]()),
		Ledger: enrollment.New(memory.New[types.Registration](),
			enrollment.WithClock(func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) })),
		Admins: admin.New(memory.New[types.Admin](), verifier),
	}
}

// run feeds lines to a fresh console over svc and returns everything it
// printed.
func run(t *testing.T, svc Services, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, New(svc, in, &out, log).Run())
	return out.String()
}

var (
	adminLogin = []string{"2", "admin", "admin123"}
	addAlgebra = []string{"1", "1", "Algebra", "Smith", "3 months", "intro", "5"}
	adminOut   = []string{"6"}

	registerAlice = []string{"1", "1", "Alice", "alice@example.com", "secret1"}
	loginAlice    = []string{"2", "alice@example.com", "secret1"}
	studentOut    = []string{"6", "3"}

	exit = []string{"3"}
)

func script(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestConsole_EndToEnd(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		adminLogin, addAlgebra, adminOut,
		registerAlice, loginAlice,
		[]string{"2", "c-1001"}, // enroll, typed in lower case
		[]string{"2", "C-1001"}, // again
		[]string{"3"},           // my enrollments
		studentOut, exit,
	)...)

	assert.Contains(t, out, "[System] Default admin created.")
	assert.Contains(t, out, "Success: Admin login successful!")
	assert.Contains(t, out, "Success: Course added successfully! ID: C-1001")
	assert.Contains(t, out, "Success: Registration successful! Your ID: S-2025-001")
	assert.Contains(t, out, "Success: Login successful! Welcome Alice")
	assert.Contains(t, out, "Success: Enrollment successful! Registration ID: R-0001")
	assert.Contains(t, out, "Error: Student already enrolled in this course!")
	assert.Contains(t, out, "RegID: R-0001 | StudentID: S-2025-001 | CourseID: C-1001 | Date: 2025-03-14")
	assert.Contains(t, out, "Thank you for using Course Registration System!")

	regs, err := svc.Ledger.ListAll()
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "C-1001", regs[0].CourseID, "canonical ID is recorded")
}

func TestConsole_InvalidInput(t *testing.T) {
	out := run(t, newServices(), "abc", "9", "3")
	assert.Contains(t, out, "Error: Please enter a valid number.")
	assert.Contains(t, out, "Error: Invalid choice! Please try again.")
}

func TestConsole_LongLineReprompts(t *testing.T) {
	svc := newServices()
	long := strings.Repeat("a", 100*1024)
	out := run(t, svc, script(
		[]string{long},
		registerAlice, []string{"3"},
		exit,
	)...)

	assert.Contains(t, out, "Error: Please enter a valid number.")
	assert.Contains(t, out, "Success: Registration successful! Your ID: S-2025-001")
	assert.Contains(t, out, "Thank you for using Course Registration System!")
}

func TestConsole_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, New(newServices(), strings.NewReader("9\r\n3"), &out, log).Run())
	assert.Contains(t, out.String(), "Error: Invalid choice! Please try again.")
	assert.Contains(t, out.String(), "Thank you for using Course Registration System!")
}

func TestConsole_EOFEndsRun(t *testing.T) {
	out := run(t, newServices(), "1", "1", "Alice")
	assert.Contains(t, out, "Thank you for using Course Registration System!")
}

func TestConsole_RegistrationFailures(t *testing.T) {
	out := run(t, newServices(), script(
		[]string{"1"},
		[]string{"1", "A", "bad-email", "secret1"},
		[]string{"1", "A", "a@x.io", "123"},
		[]string{"1", "A", "a@x.io", "secret1"},
		[]string{"1", "B", "A@X.IO", "secret2"},
		[]string{"2", "a@x.io", "wrong"},
		[]string{"3"}, exit,
	)...)

	assert.Contains(t, out, "Error: Invalid email format! Must contain @ and .")
	assert.Contains(t, out, "Error: Password must be at least 6 characters long!")
	assert.Contains(t, out, "Error: Email already in use!")
	assert.Contains(t, out, "Error: Invalid email or password!")
}

func TestConsole_EnrollUnknownCourse(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		registerAlice, loginAlice,
		[]string{"2", "C-9999"},
		studentOut, exit,
	)...)

	assert.Contains(t, out, "Error: No courses available.")
	assert.Contains(t, out, "Error: Course not found!")

	regs, err := svc.Ledger.ListAll()
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestConsole_DeletedCourseLeavesRegistration(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		adminLogin, addAlgebra, adminOut,
		registerAlice, loginAlice, []string{"2", "C-1001"}, studentOut,
		adminLogin,
		[]string{"1", "4", "C-1001", "5"}, // delete course
		[]string{"3"},                     // view all registrations
		adminOut, exit,
	)...)

	assert.Contains(t, out, "Success: Course removed successfully!")
	assert.Contains(t, out, "RegID: R-0001 | StudentID: S-2025-001 | CourseID: C-1001")
}

func TestConsole_AdminManagesStudentsAndAdmins(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		registerAlice, []string{"3"},
		adminLogin,
		[]string{"2", "2", "S-2025-001", "Alicia", "alicia@example.com", "4"},
		[]string{"5", "2", "root", "toor123", "2", "root", "x", "4", "A-001", "4", "A-002", "5"},
		[]string{"2", "3", "S-2025-001", "3", "S-2025-001", "4"},
		adminOut, exit,
	)...)

	assert.Contains(t, out, "Success: Student updated successfully!")
	assert.Contains(t, out, "Success: Admin added successfully! ID: A-002")
	assert.Contains(t, out, "Error: Admin already exists!")
	assert.Contains(t, out, "Error: You cannot remove the admin you are logged in as!")
	assert.Contains(t, out, "Success: Admin removed successfully!")
	assert.Contains(t, out, "Success: Student removed successfully!")
	assert.Contains(t, out, "Error: Student not found!")

	admins, err := svc.Admins.ListAll()
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "A-001", admins[0].ID)
}

func TestConsole_UpdateAdmin(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		adminLogin,
		[]string{"5", "2", "root", "toor123"},      // add A-002
		[]string{"3", "A-404"},                     // unknown
		[]string{"3", "A-002", "admin", "x"},       // username held by A-001
		[]string{"3", "A-001", "chief", "chief99"}, // rename self
		[]string{"5"}, adminOut,
		[]string{"2", "chief", "chief99"}, adminOut,
		exit,
	)...)

	assert.Contains(t, out, "Error: Admin not found!")
	assert.Contains(t, out, "Error: Admin already exists!")
	assert.Contains(t, out, "Success: Admin updated successfully!")
	assert.Equal(t, 2, strings.Count(out, "Success: Admin login successful!"))

	a, ok, err := svc.Admins.GetByID("A-001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "chief", a.Username)
}

func TestConsole_DefaultAdminCreatedOnce(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		[]string{"2", "admin", "wrong"},
		adminLogin, adminOut,
		exit,
	)...)

	assert.Equal(t, 1, strings.Count(out, "[System] Default admin created."))
	assert.Contains(t, out, "Error: Invalid admin credentials!")

	admins, err := svc.Admins.ListAll()
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestConsole_UpdateProfileRefreshesSession(t *testing.T) {
	svc := newServices()
	out := run(t, svc, script(
		registerAlice, loginAlice,
		[]string{"4", "Alicia", "alicia@example.com"},
		[]string{"5", "newsecret"},
		studentOut,
		[]string{"1", "2", "alicia@example.com", "newsecret"},
		studentOut, exit,
	)...)

	assert.Contains(t, out, "Success: Student updated successfully!")
	assert.Contains(t, out, "Success: Password changed successfully!")
	assert.Contains(t, out, "Welcome Alicia")
}
