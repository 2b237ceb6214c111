// Package store is the data-access layer over the three marketplace tables
// (admins, teachers, courses). Queries are exact-match filters ordered by id.
// Single-row lookups report zero rows through the bool return, not through
// the error: callers chain fallback lookups (admin table, then teacher
// table) and a miss is not a failure.
package store

import "coursehub/backend/models"

type AdminStore interface {
	FindByCredentials(adminname, password string) (models.Admin, bool, error)
	Count() (int64, error)
	Insert(admin models.Admin) (models.Admin, error)
}

type TeacherStore interface {
	List() ([]models.Teacher, error)
	FindByID(id uint) (models.Teacher, bool, error)
	FindByCredentials(username, password string) (models.Teacher, bool, error)
	Insert(teacher models.Teacher) (models.Teacher, error)
	Update(teacher models.Teacher) (models.Teacher, error)
	Delete(id uint) error
}

type CourseStore interface {
	List() ([]models.Course, error)
	FindByID(id uint) (models.Course, bool, error)
	Insert(course models.Course) (models.Course, error)
	Update(course models.Course) (models.Course, error)
	Delete(id uint) error
}

// Stores bundles the three tables for wiring through routes and main.
type Stores struct {
	Admins   AdminStore
	Teachers TeacherStore
	Courses  CourseStore
}
