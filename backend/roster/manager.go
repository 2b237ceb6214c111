// Package roster holds the admin-side teacher list: client-side filtering,
// search and pagination over the fetched rows, plus the validated CRUD
// operations that keep the list in sync with the store.
package roster

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"coursehub/backend/models"
	"coursehub/backend/store"

	"github.com/go-playground/validator/v10"
)

const PageSize = 8

const (
	StatusAll      = "all"
	StatusActive   = models.StatusActive
	StatusInactive = models.StatusInactive
)

var timeworkPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

var (
	ErrMissingFields  = errors.New("name, username and password are required")
	ErrBadTimework    = errors.New("timework must be in HH:MM format, e.g. 08:30")
	ErrTeacherMissing = errors.New("teacher not found")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timeworkPattern.MatchString(fl.Field().String())
	})
	return v
}

// Input is a draft teacher record coming from the add/edit form.
type Input struct {
	Name     string `json:"name" validate:"required"`
	Job      string `json:"job"`
	Location string `json:"location"`
	TimeWork string `json:"timework" validate:"required,hhmm"`
	Image    string `json:"image"`
	School   string `json:"school"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Status   string `json:"status"`
}

func (in Input) validateInput() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		for _, fe := range fields {
			if fe.Tag() == "hhmm" {
				return ErrBadTimework
			}
		}
	}
	return ErrMissingFields
}

func (in Input) apply(t *models.Teacher) {
	t.Name = in.Name
	t.Job = in.Job
	t.Location = in.Location
	t.TimeWork = in.TimeWork
	t.Image = in.Image
	t.School = in.School
	t.Username = in.Username
	t.Password = in.Password
	t.Status = in.Status
	if t.Status == "" {
		t.Status = models.StatusActive
	}
}

// Query selects a filtered view of the roster. Status narrows by equality
// (StatusAll skips the check). Search is a case-insensitive substring match:
// against Field when set, otherwise against name or username.
type Query struct {
	Status string `json:"status"`
	Search string `json:"search"`
	Field  string `json:"field"`
}

// Page is one screenful of the filtered roster.
type Page struct {
	Items      []models.Teacher `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	Total      int              `json:"total"`
}

// Manager owns the in-memory teacher list. All reads and mutations go
// through its methods; a failed store call leaves the list untouched.
type Manager struct {
	mu       sync.RWMutex
	store    store.TeacherStore
	teachers []models.Teacher
	loading  bool
	err      error
}

func NewManager(s store.TeacherStore) *Manager {
	return &Manager{store: s}
}

// Load refetches the full list from the store.
func (m *Manager) Load() error {
	m.mu.Lock()
	m.loading = true
	m.err = nil
	m.mu.Unlock()

	teachers, err := m.store.List()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.err = err
		return err
	}
	m.teachers = teachers
	return nil
}

func (m *Manager) Teachers() []models.Teacher {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Teacher, len(m.teachers))
	copy(out, m.teachers)
	return out
}

func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Filter applies the status and search predicates in order.
func (m *Manager) Filter(q Query) []models.Teacher {
	return FilterTeachers(m.Teachers(), q)
}

func FilterTeachers(teachers []models.Teacher, q Query) []models.Teacher {
	filtered := make([]models.Teacher, 0, len(teachers))
	needle := strings.ToLower(q.Search)
	for _, t := range teachers {
		if q.Status != "" && q.Status != StatusAll && !strings.EqualFold(t.Status, q.Status) {
			continue
		}
		if needle != "" && !matches(t, q.Field, needle) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func matches(t models.Teacher, field, needle string) bool {
	if field != "" {
		return strings.Contains(strings.ToLower(fieldValue(t, field)), needle)
	}
	return strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Username), needle)
}

func fieldValue(t models.Teacher, field string) string {
	switch field {
	case "name":
		return t.Name
	case "job":
		return t.Job
	case "location":
		return t.Location
	case "timework":
		return t.TimeWork
	case "school":
		return t.School
	default:
		return ""
	}
}

// Paginate slices the filtered view into fixed pages of PageSize. The page
// number is clamped to [1, totalPages]; no store round-trip happens here.
func (m *Manager) Paginate(q Query, page int) Page {
	filtered := m.Filter(q)
	totalPages := (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
	}
}

// Add validates the input, inserts it and appends the stored row.
func (m *Manager) Add(in Input) (models.Teacher, error) {
	if err := in.validateInput(); err != nil {
		return models.Teacher{}, err
	}

	var teacher models.Teacher
	in.apply(&teacher)

	stored, err := m.store.Insert(teacher)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.err = err
		return models.Teacher{}, err
	}
	m.err = nil
	m.teachers = append(m.teachers, stored)
	return stored, nil
}

// Update validates the input, saves it and replaces the row by id.
func (m *Manager) Update(id uint, in Input) (models.Teacher, error) {
	if err := in.validateInput(); err != nil {
		return models.Teacher{}, err
	}

	existing, found, err := m.store.FindByID(id)
	if err != nil {
		m.mu.Lock()
		m.err = err
		m.mu.Unlock()
		return models.Teacher{}, err
	}
	if !found {
		return models.Teacher{}, ErrTeacherMissing
	}
	in.apply(&existing)

	stored, err := m.store.Update(existing)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.err = err
		return models.Teacher{}, err
	}
	m.err = nil
	m.replace(stored)
	return stored, nil
}

// SetStatus flips a teacher between active and inactive.
func (m *Manager) SetStatus(id uint, status string) (models.Teacher, error) {
	if status != models.StatusActive && status != models.StatusInactive {
		return models.Teacher{}, errors.New("status must be active or inactive")
	}
	existing, found, err := m.store.FindByID(id)
	if err != nil {
		m.mu.Lock()
		m.err = err
		m.mu.Unlock()
		return models.Teacher{}, err
	}
	if !found {
		return models.Teacher{}, ErrTeacherMissing
	}
	existing.Status = status

	stored, err := m.store.Update(existing)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.err = err
		return models.Teacher{}, err
	}
	m.err = nil
	m.replace(stored)
	return stored, nil
}

// Delete removes the row remotely, then drops it from the list.
func (m *Manager) Delete(id uint) error {
	err := m.store.Delete(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.err = err
		return err
	}
	m.err = nil
	kept := m.teachers[:0]
	for _, t := range m.teachers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.teachers = kept
	return nil
}

func (m *Manager) replace(teacher models.Teacher) {
	for i := range m.teachers {
		if m.teachers[i].ID == teacher.ID {
			m.teachers[i] = teacher
			return
		}
	}
	m.teachers = append(m.teachers, teacher)
}
