package console

import (
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/aanand-mishra/course-registration/internal/utils/response"
	"github.com/aanand-mishra/course-registration/internal/validation"
)

func (c *Console) studentPortal(sess *Session) error {
	return c.menu("STUDENT PORTAL", sess, []item{
		{"Register", c.registerStudent},
		{"Login", c.loginStudent},
		{"Back", back},
	})
}

func (c *Console) registerStudent(*Session) error {
	c.section("STUDENT REGISTRATION")
	name, err := c.prompt("Enter name")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := c.promptRaw(fmt.Sprintf("Enter password (min %d characters)", validation.MinPasswordLength))
	if err != nil {
		return err
	}

	s, err := c.svc.Students.Register(name, email, password)
	if err != nil {
		c.failure("Student", "register student", err)
		return nil
	}

	c.log.Info("student registered", slog.String("id", s.ID))
	c.result(response.OK("Registration successful! Your ID: %s", s.ID))
	return nil
}

func (c *Console) loginStudent(sess *Session) error {
	c.section("STUDENT LOGIN")
	email, err := c.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := c.promptRaw("Enter password")
	if err != nil {
		return err
	}

	s, ok, err := c.svc.Students.Authenticate(email, password)
	if err != nil {
		c.failure("Student", "student login", err)
		return nil
	}
	if !ok {
		c.log.Info("student login rejected")
		c.result(response.Fail("Invalid email or password!"))
		return nil
	}

	sess.Student = &s
	c.log.Info("student logged in", slog.String("id", s.ID))
	c.result(response.OK("Login successful! Welcome %s", s.Name))

	err = c.studentDashboard(sess)
	sess.Student = nil
	return err
}

func (c *Console) studentDashboard(sess *Session) error {
	return c.menu("STUDENT DASHBOARD", sess, []item{
		{"View Available Courses", c.viewCourses},
		{"Enroll in Course", c.enrollInCourse},
		{"View My Enrollments", c.viewMyEnrollments},
		{"Update Profile", c.updateProfile},
		{"Change Password", c.changePassword},
		{"Logout", func(*Session) error {
			c.result(response.OK("Logged out successfully!"))
			return errBack
		}},
	})
}

func (c *Console) viewCourses(*Session) error {
	courses, err := c.svc.Courses.ListAll()
	if err != nil {
		c.failure("Course", "list courses", err)
		return nil
	}
	listing(c, "ALL COURSES", "No courses available.", courses, response.Course)
	return nil
}

// enrollInCourse confirms the course exists before calling the ledger,
// which does not check references itself. The canonical course ID is
// recorded whatever case the student typed.
func (c *Console) enrollInCourse(sess *Session) error {
	c.section("ENROLL IN COURSE")
	if err := c.viewCourses(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter course ID to enroll")
	if err != nil {
		return err
	}

	course, ok, err := c.svc.Courses.GetByID(id)
	if err != nil {
		c.failure("Course", "enroll", err)
		return nil
	}
	if !ok {
		c.failure("Course", "enroll", fmt.Errorf("%w: course %s", types.ErrNotFound, id))
		return nil
	}

	r, err := c.svc.Ledger.Enroll(sess.Student.ID, course.ID)
	if err != nil {
		c.failure("Registration", "enroll", err)
		return nil
	}

	c.log.Info("student enrolled",
		slog.String("student", r.StudentID),
		slog.String("course", r.CourseID),
		slog.String("id", r.ID))
	c.result(response.OK("Enrollment successful! Registration ID: %s", r.ID))
	return nil
}

func (c *Console) viewMyEnrollments(sess *Session) error {
	regs, err := c.svc.Ledger.ListForStudent(sess.Student.ID)
	if err != nil {
		c.failure("Registration", "list enrollments", err)
		return nil
	}
	listing(c, "MY REGISTRATIONS", "No registrations found for this student.", regs, response.Registration)
	return nil
}

func (c *Console) updateProfile(sess *Session) error {
	c.section("UPDATE PROFILE")
	name, err := c.prompt("Enter new name")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter new email")
	if err != nil {
		return err
	}

	s, err := c.svc.Students.Update(sess.Student.ID, name, email)
	if err != nil {
		c.failure("Student", "update profile", err)
		return nil
	}

	sess.Student = &s
	c.log.Info("student updated", slog.String("id", s.ID))
	c.result(response.OK("Student updated successfully!"))
	return nil
}

func (c *Console) changePassword(sess *Session) error {
	c.section("CHANGE PASSWORD")
	password, err := c.promptRaw(fmt.Sprintf("Enter new password (min %d characters)", validation.MinPasswordLength))
	if err != nil {
		return err
	}

	if err := c.svc.Students.ChangePassword(sess.Student.ID, password); err != nil {
		c.failure("Student", "change password", err)
		return nil
	}

	c.log.Info("student password changed", slog.String("id", sess.Student.ID))
	c.result(response.OK("Password changed successfully!"))
	return nil
}
