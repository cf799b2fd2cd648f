// Package types holds the entity records shared by the directories, the
// storage backends and the console layer. Keeping them in one place
// prevents import cycles between those packages.
package types

import "time"

// DateLayout is how enrollment dates are rendered and stored.
const DateLayout = "2006-01-02"

// Student is a registered learner.
//
// Password holds whatever the configured auth.Verifier produced from the
// raw secret; it is never rendered.
type Student struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Key implements storage.Entity.
func (s Student) Key() string { return s.ID }

// Course is one entry of the catalog. Duration is free text ("3 months").
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Teacher     string `json:"teacher"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Key implements storage.Entity.
func (c Course) Key() string { return c.ID }

// Registration links a student to a course by value. Neither ID is
// checked against the other directories once stored.
type Registration struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	Date      time.Time `json:"date"`
}

// Key implements storage.Entity.
func (r Registration) Key() string { return r.ID }

// Admin is an administrator account.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Key implements storage.Entity.
func (a Admin) Key() string { return a.ID }
