package roster

import (
	"errors"
	"fmt"
	"testing"

	"coursehub/backend/models"
	"coursehub/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededManager(t *testing.T, teachers ...models.Teacher) *Manager {
	t.Helper()
	stores := store.NewMemStores()
	for _, teacher := range teachers {
		_, err := stores.Teachers.Insert(teacher)
		require.NoError(t, err)
	}
	mgr := NewManager(stores.Teachers)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestLoadClearsFlags(t *testing.T) {
	mgr := seededManager(t, models.Teacher{Name: "Anna", Username: "anna"})

	assert.False(t, mgr.Loading())
	assert.NoError(t, mgr.Err())
	assert.Len(t, mgr.Teachers(), 1)
}

func TestFilterByStatus(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna", Status: models.StatusActive},
		models.Teacher{Name: "Bob", Username: "bob", Status: models.StatusInactive},
		models.Teacher{Name: "Carol", Username: "carol", Status: models.StatusActive},
	)

	assert.Len(t, mgr.Filter(Query{Status: StatusAll}), 3)
	assert.Len(t, mgr.Filter(Query{Status: StatusActive}), 2)

	inactive := mgr.Filter(Query{Status: StatusInactive})
	require.Len(t, inactive, 1)
	assert.Equal(t, "Bob", inactive[0].Name)
}

func TestFilterByStatusIgnoresCase(t *testing.T) {
	// old rows carry free-form status text like "Inactive"
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna", Status: "Inactive"},
		models.Teacher{Name: "Bob", Username: "bob", Status: models.StatusActive},
	)

	inactive := mgr.Filter(Query{Status: StatusInactive})
	require.Len(t, inactive, 1)
	assert.Equal(t, "Anna", inactive[0].Name)
	assert.True(t, inactive[0].Inactive())
}

func TestSearchNameOrUsername(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna Schmidt", Username: "aschmidt"},
		models.Teacher{Name: "Bob Jones", Username: "bjones"},
		models.Teacher{Name: "Carla", Username: "anchor"},
	)

	// matches Anna by name and Carla by username
	got := mgr.Filter(Query{Search: "an"})
	require.Len(t, got, 2)
	assert.Equal(t, "Anna Schmidt", got[0].Name)
	assert.Equal(t, "Carla", got[1].Name)

	// case-insensitive
	assert.Len(t, mgr.Filter(Query{Search: "ANNA"}), 1)
}

func TestSearchSingleField(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna", Job: "Designer", School: "MIT"},
		models.Teacher{Name: "Bob", Username: "design_bob", Job: "Engineer", School: "Stanford"},
	)

	// field search ignores name/username
	got := mgr.Filter(Query{Search: "design", Field: "job"})
	require.Len(t, got, 1)
	assert.Equal(t, "Anna", got[0].Name)

	got = mgr.Filter(Query{Search: "stan", Field: "school"})
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)

	// unknown field matches nothing
	assert.Empty(t, mgr.Filter(Query{Search: "x", Field: "password"}))
}

func TestFilterIdempotent(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna", Status: models.StatusActive},
		models.Teacher{Name: "Bob", Username: "bob", Status: models.StatusInactive},
		models.Teacher{Name: "Annika", Username: "annika", Status: models.StatusActive},
	)
	q := Query{Status: StatusActive, Search: "ann"}

	once := mgr.Filter(q)
	twice := FilterTeachers(once, q)

	assert.Equal(t, once, twice)
}

func TestPagination(t *testing.T) {
	teachers := make([]models.Teacher, 0, 17)
	for i := 1; i <= 17; i++ {
		teachers = append(teachers, models.Teacher{
			Name:     fmt.Sprintf("Teacher %02d", i),
			Username: fmt.Sprintf("teacher%02d", i),
		})
	}
	mgr := seededManager(t, teachers...)

	page1 := mgr.Paginate(Query{}, 1)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 17, page1.Total)
	assert.Len(t, page1.Items, 8)

	page3 := mgr.Paginate(Query{}, 3)
	require.Len(t, page3.Items, 1)
	assert.Equal(t, "Teacher 17", page3.Items[0].Name)

	// out-of-range pages clamp instead of failing
	assert.Equal(t, 3, mgr.Paginate(Query{}, 99).Page)
	assert.Equal(t, 1, mgr.Paginate(Query{}, -2).Page)
}

func TestPaginateEmptyList(t *testing.T) {
	mgr := seededManager(t)

	page := mgr.Paginate(Query{}, 1)

	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestAddValidation(t *testing.T) {
	mgr := seededManager(t)

	_, err := mgr.Add(Input{Name: "No Creds", TimeWork: "08:30"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = mgr.Add(Input{Name: "Anna", Username: "anna", Password: "pw", TimeWork: "25:00"})
	assert.ErrorIs(t, err, ErrBadTimework)

	_, err = mgr.Add(Input{Name: "Anna", Username: "anna", Password: "pw", TimeWork: "8:30am"})
	assert.ErrorIs(t, err, ErrBadTimework)

	assert.Empty(t, mgr.Teachers(), "failed adds must not touch the list")
}

func TestAddAppendsStoredRow(t *testing.T) {
	mgr := seededManager(t)

	teacher, err := mgr.Add(Input{
		Name:     "Anna",
		Username: "anna",
		Password: "pw",
		TimeWork: "08:30",
		Job:      "Designer",
	})

	require.NoError(t, err)
	assert.NotZero(t, teacher.ID)
	assert.Equal(t, models.StatusActive, teacher.Status, "status defaults to active")
	require.Len(t, mgr.Teachers(), 1)
	assert.Equal(t, teacher, mgr.Teachers()[0])
}

func TestUpdateReplacesByID(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna", Password: "pw", TimeWork: "08:30"},
		models.Teacher{Name: "Bob", Username: "bob", Password: "pw", TimeWork: "09:00"},
	)
	id := mgr.Teachers()[0].ID

	updated, err := mgr.Update(id, Input{
		Name:     "Anna Maria",
		Username: "anna",
		Password: "pw2",
		TimeWork: "10:15",
		Status:   models.StatusInactive,
	})

	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "Anna Maria", mgr.Teachers()[0].Name)
	assert.Equal(t, "10:15", mgr.Teachers()[0].TimeWork)
	assert.Len(t, mgr.Teachers(), 2)
}

type brokenTeacherStore struct {
	store.TeacherStore
	findErr error
}

func (s brokenTeacherStore) FindByID(id uint) (models.Teacher, bool, error) {
	return models.Teacher{}, false, s.findErr
}

func TestUpdateRecordsStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	mgr := NewManager(brokenTeacherStore{store.NewMemStores().Teachers, boom})

	_, err := mgr.Update(1, Input{Name: "X", Username: "x", Password: "p", TimeWork: "08:00"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, mgr.Err(), boom)

	_, err = mgr.SetStatus(1, models.StatusInactive)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, mgr.Err(), boom)
}

func TestUpdateUnknownTeacher(t *testing.T) {
	mgr := seededManager(t)

	_, err := mgr.Update(404, Input{Name: "X", Username: "x", Password: "p", TimeWork: "08:00"})

	assert.ErrorIs(t, err, ErrTeacherMissing)
}

func TestSetStatus(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna", Status: models.StatusActive},
	)
	id := mgr.Teachers()[0].ID

	teacher, err := mgr.SetStatus(id, models.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, teacher.Status)
	assert.Equal(t, models.StatusInactive, mgr.Teachers()[0].Status)

	_, err = mgr.SetStatus(id, "banned")
	assert.Error(t, err)
}

func TestDeleteRemovesByID(t *testing.T) {
	mgr := seededManager(t,
		models.Teacher{Name: "Anna", Username: "anna"},
		models.Teacher{Name: "Bob", Username: "bob"},
	)
	id := mgr.Teachers()[0].ID

	require.NoError(t, mgr.Delete(id))

	require.Len(t, mgr.Teachers(), 1)
	assert.Equal(t, "Bob", mgr.Teachers()[0].Name)
}
