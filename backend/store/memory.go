package store

import (
	"sort"
	"sync"
	"time"

	"coursehub/backend/models"
)

// In-memory tables with the same contract as the GORM stores. Used by the
// test suite and for running the server without a Postgres instance.

func NewMemStores() Stores {
	return Stores{
		Admins:   &MemAdminStore{table: make(map[string]models.Admin)},
		Teachers: &MemTeacherStore{table: make(map[uint]models.Teacher)},
		Courses:  &MemCourseStore{table: make(map[uint]models.Course)},
	}
}

type MemAdminStore struct {
	mu    sync.RWMutex
	table map[string]models.Admin
}

func (s *MemAdminStore) FindByCredentials(adminname, password string) (models.Admin, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.table {
		if admin.AdminName == adminname && admin.Password == password {
			return admin, true, nil
		}
	}
	return models.Admin{}, false, nil
}

func (s *MemAdminStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.table)), nil
}

func (s *MemAdminStore) Insert(admin models.Admin) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[admin.ID] = admin
	return admin, nil
}

type MemTeacherStore struct {
	mu     sync.RWMutex
	table  map[uint]models.Teacher
	nextID uint
}

func (s *MemTeacherStore) List() ([]models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teachers := make([]models.Teacher, 0, len(s.table))
	for _, t := range s.table {
		teachers = append(teachers, t)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (s *MemTeacherStore) FindByID(id uint) (models.Teacher, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teacher, ok := s.table[id]
	return teacher, ok, nil
}

func (s *MemTeacherStore) FindByCredentials(username, password string) (models.Teacher, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.table {
		if t.Username == username && t.Password == password {
			return t, true, nil
		}
	}
	return models.Teacher{}, false, nil
}

func (s *MemTeacherStore) Insert(teacher models.Teacher) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if teacher.ID == 0 {
		s.nextID++
		for _, exists := s.table[s.nextID]; exists; _, exists = s.table[s.nextID] {
			s.nextID++
		}
		teacher.ID = s.nextID
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now()
	}
	s.table[teacher.ID] = teacher
	return teacher, nil
}

func (s *MemTeacherStore) Update(teacher models.Teacher) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[teacher.ID] = teacher
	return teacher, nil
}

func (s *MemTeacherStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, id)
	return nil
}

type MemCourseStore struct {
	mu     sync.RWMutex
	table  map[uint]models.Course
	nextID uint
}

func (s *MemCourseStore) List() ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]models.Course, 0, len(s.table))
	for _, c := range s.table {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *MemCourseStore) FindByID(id uint) (models.Course, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.table[id]
	return course, ok, nil
}

func (s *MemCourseStore) Insert(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if course.ID == 0 {
		s.nextID++
		for _, exists := s.table[s.nextID]; exists; _, exists = s.table[s.nextID] {
			s.nextID++
		}
		course.ID = s.nextID
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}
	s.table[course.ID] = course
	return course, nil
}

func (s *MemCourseStore) Update(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[course.ID] = course
	return course, nil
}

func (s *MemCourseStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, id)
	return nil
}
