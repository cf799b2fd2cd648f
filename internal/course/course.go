// Package course implements the course catalog.
package course

import (
	"fmt"
	"strings"

	"github.com/aanand-mishra/course-registration/internal/ids"
	"github.com/aanand-mishra/course-registration/internal/storage"
	"github.com/aanand-mishra/course-registration/internal/types"
)

// Catalog owns the course records. Course identifiers are matched
// case-insensitively because admins type them by hand.
//
// Catalog is not safe for concurrent use.
type Catalog struct {
	courses storage.Collection[types.Course]
	ids     *ids.Sequence
}

// New returns a catalog backed by courses.
func New(courses storage.Collection[types.Course]) *Catalog {
	return &Catalog{
		courses: courses,
		ids:     ids.NewCourseSequence(),
	}
}

// GenerateID returns the next C-NNNN identifier, starting at C-1001.
func (c *Catalog) GenerateID() string {
	return c.ids.Next()
}

// Add stores a new course. Fails with ErrDuplicateName if a course with
// the same name (ignoring case) exists.
func (c *Catalog) Add(name, teacher, duration, description string) (types.Course, error) {
	all, err := c.courses.List()
	if err != nil {
		return types.Course{}, fmt.Errorf("Add: list: %w", err)
	}
	for _, existing := range all {
		if strings.EqualFold(existing.Name, name) {
			return types.Course{}, fmt.Errorf("%w: %s", types.ErrDuplicateName, name)
		}
	}

	course := types.Course{
		ID:          c.GenerateID(),
		Name:        name,
		Teacher:     teacher,
		Duration:    duration,
		Description: description,
	}
	if err := c.courses.Insert(course); err != nil {
		return types.Course{}, fmt.Errorf("Add: insert: %w", err)
	}
	return course, nil
}

// GetByID looks a course up by identifier, ignoring case.
func (c *Catalog) GetByID(id string) (types.Course, bool, error) {
	all, err := c.courses.List()
	if err != nil {
		return types.Course{}, false, fmt.Errorf("GetByID: list: %w", err)
	}
	for _, course := range all {
		if strings.EqualFold(course.ID, id) {
			return course, true, nil
		}
	}
	return types.Course{}, false, nil
}

// Update overwrites all four mutable fields. Unlike Add it does not check
// the new name against other courses.
func (c *Catalog) Update(id, name, teacher, duration, description string) (types.Course, error) {
	course, ok, err := c.GetByID(id)
	if err != nil {
		return types.Course{}, err
	}
	if !ok {
		return types.Course{}, fmt.Errorf("%w: course %s", types.ErrNotFound, id)
	}

	course.Name = name
	course.Teacher = teacher
	course.Duration = duration
	course.Description = description
	if _, err := c.courses.Replace(course); err != nil {
		return types.Course{}, fmt.Errorf("Update: replace: %w", err)
	}
	return course, nil
}

// Remove deletes the course. Registrations for it are left in place.
func (c *Catalog) Remove(id string) error {
	course, ok, err := c.GetByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: course %s", types.ErrNotFound, id)
	}

	if _, err := c.courses.Delete(course.ID); err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}

// ListAll returns every course in creation order.
func (c *Catalog) ListAll() ([]types.Course, error) {
	all, err := c.courses.List()
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return all, nil
}
