package console

import (
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/aanand-mishra/course-registration/internal/utils/response"
)

// adminPortal bootstraps the default admin on first use, then logs in.
func (c *Console) adminPortal(sess *Session) error {
	created, err := c.svc.Admins.EnsureDefaultAdmin()
	if err != nil {
		c.failure("Admin", "bootstrap admin", err)
		return nil
	}
	if created {
		c.log.Info("default admin created")
		c.println("\n[System] Default admin created. Use the configured admin credentials to log in.")
	}

	c.section("ADMIN LOGIN")
	username, err := c.prompt("Enter admin username")
	if err != nil {
		return err
	}
	password, err := c.promptRaw("Enter admin password")
	if err != nil {
		return err
	}

	a, ok, err := c.svc.Admins.Authenticate(username, password)
	if err != nil {
		c.failure("Admin", "admin login", err)
		return nil
	}
	if !ok {
		c.log.Info("admin login rejected")
		c.result(response.Fail("Invalid admin credentials!"))
		return nil
	}

	sess.Admin = &a
	c.log.Info("admin logged in", slog.String("id", a.ID))
	c.result(response.OK("Admin login successful!"))

	err = c.adminDashboard(sess)
	sess.Admin = nil
	return err
}

func (c *Console) adminDashboard(sess *Session) error {
	return c.menu("ADMIN DASHBOARD", sess, []item{
		{"Manage Courses", c.manageCourses},
		{"Manage Students", c.manageStudents},
		{"View All Registrations", c.viewRegistrations},
		{"Manage Registrations", c.manageRegistrations},
		{"Manage Admins", c.manageAdmins},
		{"Logout", func(*Session) error {
			c.result(response.OK("Logged out successfully!"))
			return errBack
		}},
	})
}

func back(*Session) error { return errBack }

// Courses.

func (c *Console) manageCourses(sess *Session) error {
	return c.menu("MANAGE COURSES", sess, []item{
		{"Add Course", c.addCourse},
		{"View All Courses", c.viewCourses},
		{"Update Course", c.updateCourse},
		{"Delete Course", c.deleteCourse},
		{"Back", back},
	})
}

// courseFields prompts for the four mutable course fields.
func (c *Console) courseFields(verb string) (name, teacher, duration, description string, err error) {
	if name, err = c.prompt("Enter " + verb + "course name"); err != nil {
		return
	}
	if teacher, err = c.prompt("Enter " + verb + "teacher name"); err != nil {
		return
	}
	if duration, err = c.prompt("Enter " + verb + "duration (e.g., 3 months)"); err != nil {
		return
	}
	description, err = c.prompt("Enter " + verb + "description")
	return
}

func (c *Console) addCourse(*Session) error {
	c.section("ADD COURSE")
	name, teacher, duration, description, err := c.courseFields("")
	if err != nil {
		return err
	}

	course, err := c.svc.Courses.Add(name, teacher, duration, description)
	if err != nil {
		c.failure("Course", "add course", err)
		return nil
	}

	c.log.Info("course added", slog.String("id", course.ID))
	c.result(response.OK("Course added successfully! ID: %s", course.ID))
	return nil
}

func (c *Console) updateCourse(sess *Session) error {
	c.section("UPDATE COURSE")
	if err := c.viewCourses(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter course ID to update")
	if err != nil {
		return err
	}
	if _, ok, err := c.svc.Courses.GetByID(id); err != nil || !ok {
		if err == nil {
			err = fmt.Errorf("%w: course %s", types.ErrNotFound, id)
		}
		c.failure("Course", "update course", err)
		return nil
	}

	name, teacher, duration, description, err := c.courseFields("new ")
	if err != nil {
		return err
	}

	course, err := c.svc.Courses.Update(id, name, teacher, duration, description)
	if err != nil {
		c.failure("Course", "update course", err)
		return nil
	}

	c.log.Info("course updated", slog.String("id", course.ID))
	c.result(response.OK("Course updated successfully!"))
	return nil
}

func (c *Console) deleteCourse(sess *Session) error {
	c.section("DELETE COURSE")
	if err := c.viewCourses(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter course ID to delete")
	if err != nil {
		return err
	}
	if err := c.svc.Courses.Remove(id); err != nil {
		c.failure("Course", "delete course", err)
		return nil
	}

	c.log.Info("course removed", slog.String("id", id))
	c.result(response.OK("Course removed successfully!"))
	return nil
}

// Students.

func (c *Console) manageStudents(sess *Session) error {
	return c.menu("MANAGE STUDENTS", sess, []item{
		{"View All Students", c.viewStudents},
		{"Update Student", c.updateStudent},
		{"Delete Student", c.deleteStudent},
		{"Back", back},
	})
}

func (c *Console) viewStudents(*Session) error {
	students, err := c.svc.Students.ListAll()
	if err != nil {
		c.failure("Student", "list students", err)
		return nil
	}
	listing(c, "ALL STUDENTS", "No students found.", students, response.Student)
	return nil
}

func (c *Console) updateStudent(sess *Session) error {
	c.section("UPDATE STUDENT")
	if err := c.viewStudents(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter student ID to update")
	if err != nil {
		return err
	}
	if _, ok, err := c.svc.Students.GetByID(id); err != nil || !ok {
		if err == nil {
			err = fmt.Errorf("%w: student %s", types.ErrNotFound, id)
		}
		c.failure("Student", "update student", err)
		return nil
	}

	name, err := c.prompt("Enter new name")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter new email")
	if err != nil {
		return err
	}

	if _, err := c.svc.Students.Update(id, name, email); err != nil {
		c.failure("Student", "update student", err)
		return nil
	}

	c.log.Info("student updated", slog.String("id", id))
	c.result(response.OK("Student updated successfully!"))
	return nil
}

func (c *Console) deleteStudent(sess *Session) error {
	c.section("DELETE STUDENT")
	if err := c.viewStudents(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter student ID to delete")
	if err != nil {
		return err
	}
	if err := c.svc.Students.Remove(id); err != nil {
		c.failure("Student", "delete student", err)
		return nil
	}

	c.log.Info("student removed", slog.String("id", id))
	c.result(response.OK("Student removed successfully!"))
	return nil
}

// Registrations.

func (c *Console) viewRegistrations(*Session) error {
	regs, err := c.svc.Ledger.ListAll()
	if err != nil {
		c.failure("Registration", "list registrations", err)
		return nil
	}
	listing(c, "ALL REGISTRATIONS", "No registrations found.", regs, response.Registration)
	return nil
}

func (c *Console) manageRegistrations(sess *Session) error {
	return c.menu("MANAGE REGISTRATIONS", sess, []item{
		{"View All Registrations", c.viewRegistrations},
		{"View Registrations of a Student", c.viewStudentRegistrations},
		{"Delete Registration", c.deleteRegistration},
		{"Back", back},
	})
}

func (c *Console) viewStudentRegistrations(*Session) error {
	id, err := c.prompt("Enter student ID")
	if err != nil {
		return err
	}

	regs, err := c.svc.Ledger.ListForStudent(id)
	if err != nil {
		c.failure("Registration", "list enrollments", err)
		return nil
	}
	listing(c, "STUDENT'S REGISTRATIONS", "No registrations found for this student.", regs, response.Registration)
	return nil
}

func (c *Console) deleteRegistration(sess *Session) error {
	c.section("DELETE REGISTRATION")
	if err := c.viewRegistrations(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter registration ID to delete")
	if err != nil {
		return err
	}
	if err := c.svc.Ledger.Remove(id); err != nil {
		c.failure("Registration", "delete registration", err)
		return nil
	}

	c.log.Info("registration removed", slog.String("id", id))
	c.result(response.OK("Registration removed successfully!"))
	return nil
}

// Admins.

func (c *Console) manageAdmins(sess *Session) error {
	return c.menu("MANAGE ADMINS", sess, []item{
		{"View All Admins", c.viewAdmins},
		{"Add Admin", c.addAdmin},
		{"Update Admin", c.updateAdmin},
		{"Delete Admin", c.deleteAdmin},
		{"Back", back},
	})
}

func (c *Console) viewAdmins(*Session) error {
	admins, err := c.svc.Admins.ListAll()
	if err != nil {
		c.failure("Admin", "list admins", err)
		return nil
	}
	listing(c, "ALL ADMINS", "No admins found.", admins, response.Admin)
	return nil
}

func (c *Console) addAdmin(*Session) error {
	c.section("ADD ADMIN")
	username, err := c.prompt("Enter admin username")
	if err != nil {
		return err
	}
	password, err := c.promptRaw("Enter admin password")
	if err != nil {
		return err
	}

	a, err := c.svc.Admins.Add(username, password)
	if err != nil {
		c.failure("Admin", "add admin", err)
		return nil
	}

	c.log.Info("admin added", slog.String("id", a.ID))
	c.result(response.OK("Admin added successfully! ID: %s", a.ID))
	return nil
}

// updateAdmin keeps the session in step when the logged-in admin edits
// their own account.
func (c *Console) updateAdmin(sess *Session) error {
	c.section("UPDATE ADMIN")
	if err := c.viewAdmins(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter admin ID to update")
	if err != nil {
		return err
	}
	if _, ok, err := c.svc.Admins.GetByID(id); err != nil || !ok {
		if err == nil {
			err = fmt.Errorf("%w: admin %s", types.ErrNotFound, id)
		}
		c.failure("Admin", "update admin", err)
		return nil
	}

	username, err := c.prompt("Enter new admin username")
	if err != nil {
		return err
	}
	password, err := c.promptRaw("Enter new admin password")
	if err != nil {
		return err
	}

	a, err := c.svc.Admins.Update(id, username, password)
	if err != nil {
		c.failure("Admin", "update admin", err)
		return nil
	}

	if sess.Admin != nil && sess.Admin.ID == a.ID {
		sess.Admin = &a
	}
	c.log.Info("admin updated", slog.String("id", a.ID))
	c.result(response.OK("Admin updated successfully!"))
	return nil
}

// deleteAdmin refuses to remove the account that is logged in.
func (c *Console) deleteAdmin(sess *Session) error {
	c.section("DELETE ADMIN")
	if err := c.viewAdmins(sess); err != nil {
		return err
	}

	id, err := c.prompt("Enter admin ID to delete")
	if err != nil {
		return err
	}
	if sess.Admin != nil && sess.Admin.ID == id {
		c.result(response.Fail("You cannot remove the admin you are logged in as!"))
		return nil
	}
	if err := c.svc.Admins.Remove(id); err != nil {
		c.failure("Admin", "delete admin", err)
		return nil
	}

	c.log.Info("admin removed", slog.String("id", id))
	c.result(response.OK("Admin removed successfully!"))
	return nil
}
