package course

import (
	"sync"

	"coursehub/backend/models"
	"coursehub/backend/store"
)

// Catalog mirrors the fetched course list the same way roster.Manager
// mirrors teachers: fetch once, splice on every successful mutation.
type Catalog struct {
	mu      sync.RWMutex
	store   store.CourseStore
	courses []models.Course
	err     error
}

func NewCatalog(s store.CourseStore) *Catalog {
	return &Catalog{store: s}
}

func (c *Catalog) Load() error {
	courses, err := c.store.List()
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.err = err
		return err
	}
	c.err = nil
	c.courses = courses
	return nil
}

func (c *Catalog) Courses() []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

func (c *Catalog) Find(id uint) (models.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, course := range c.courses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

func (c *Catalog) ByTeacher(teacherID uint) []models.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Course, 0, len(c.courses))
	for _, course := range c.courses {
		if course.TeacherID == teacherID {
			out = append(out, course)
		}
	}
	return out
}

func (c *Catalog) Add(course models.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.courses = append(c.courses, course)
}

func (c *Catalog) Replace(course models.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.courses {
		if c.courses[i].ID == course.ID {
			c.courses[i] = course
			return
		}
	}
	c.courses = append(c.courses, course)
}

func (c *Catalog) Remove(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.courses[:0]
	for _, course := range c.courses {
		if course.ID != id {
			kept = append(kept, course)
		}
	}
	c.courses = kept
}
