// Package session resolves credentials against the admin and teacher tables
// and tracks the signed-in identity.
package session

import (
	"errors"
	"strconv"

	"coursehub/backend/models"
	"coursehub/backend/store"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account is locked")
)

// Account is the resolved identity after a successful login. Exactly one of
// Admin or Teacher is set, matching Role.
type Account struct {
	Role    Role
	Admin   *models.Admin
	Teacher *models.Teacher
}

func (a Account) ID() string {
	if a.Role == RoleAdmin && a.Admin != nil {
		return a.Admin.ID
	}
	if a.Teacher != nil {
		return strconv.Itoa(int(a.Teacher.ID))
	}
	return ""
}

type Service struct {
	Admins   store.AdminStore
	Teachers store.TeacherStore
}

func NewService(admins store.AdminStore, teachers store.TeacherStore) *Service {
	return &Service{Admins: admins, Teachers: teachers}
}

// Login tries the admin table first, then the teacher table. Credentials are
// matched exactly; a miss in one table falls through to the next. A teacher
// whose status is inactive authenticates but is refused as locked.
func (s *Service) Login(username, password string) (Account, error) {
	admin, found, err := s.Admins.FindByCredentials(username, password)
	if err != nil {
		return Account{}, err
	}
	if found {
		return Account{Role: RoleAdmin, Admin: &admin}, nil
	}

	teacher, found, err := s.Teachers.FindByCredentials(username, password)
	if err != nil {
		return Account{}, err
	}
	if found {
		if teacher.Inactive() {
			return Account{}, ErrAccountLocked
		}
		return Account{Role: RoleTeacher, Teacher: &teacher}, nil
	}

	return Account{}, ErrInvalidCredentials
}
