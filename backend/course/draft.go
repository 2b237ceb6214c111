package course

import (
	"errors"

	"coursehub/backend/models"
)

const placeholderImage = "https://placehold.co/300x200/cccccc/999999/png"

var (
	ErrNoTeacher      = errors.New("course has no owning teacher")
	ErrDraftName      = errors.New("course name is required")
	ErrDraftPrice     = errors.New("price must not be negative")
	ErrDraftDiscount  = errors.New("discount must not be negative")
	ErrDraftCategory  = errors.New("category is required")
	ErrDraftBadCat    = errors.New("unknown category")
	ErrDraftDesc      = errors.New("description is required")
	ErrDraftImage     = errors.New("image is required")
	ErrDraftChapters  = errors.New("course needs at least one chapter")
	ErrChapterTitle   = errors.New("every chapter needs a title")
	ErrChapterLessons = errors.New("every chapter needs at least one lesson")
)

// Draft is an in-progress, possibly invalid course held in editor state. It
// becomes a persistable models.Course only through BuildCreate/BuildUpdate,
// which recompute the derived totals and encode the blob columns.
type Draft struct {
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Discount    float64          `json:"discount"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	ProjectDesc string           `json:"projectdesc"`
	Chapters    []models.Chapter `json:"chapters"`
	TeacherID   uint             `json:"teacherid"`
}

func (d Draft) Validate() error {
	switch {
	case d.TeacherID == 0:
		return ErrNoTeacher
	case d.Name == "":
		return ErrDraftName
	case d.Price < 0:
		return ErrDraftPrice
	case d.Discount < 0:
		return ErrDraftDiscount
	case d.Category == "":
		return ErrDraftCategory
	case !models.ValidCategory(d.Category):
		return ErrDraftBadCat
	case d.Description == "":
		return ErrDraftDesc
	case d.Image == "":
		return ErrDraftImage
	case len(d.Chapters) == 0:
		return ErrDraftChapters
	}
	for _, ch := range d.Chapters {
		if ch.Title == "" {
			return ErrChapterTitle
		}
		if len(ch.Lessons) == 0 {
			return ErrChapterLessons
		}
	}
	return nil
}

// BuildCreate produces the insert record. Identity fields (id, created_at)
// are never set so the store assigns them, and engagement counters start at
// zero regardless of what the draft carried.
func (d Draft) BuildCreate() (models.Course, error) {
	if err := d.Validate(); err != nil {
		return models.Course{}, err
	}
	return models.Course{
		Name:        d.Name,
		TeacherID:   d.TeacherID,
		Price:       d.Price,
		Discount:    d.Discount,
		Category:    d.Category,
		Description: d.Description,
		Image:       imageOrPlaceholder(d.Image),
		LessonCount: TotalLessons(d.Chapters),
		Duration:    FormatDuration(TotalMinutes(d.Chapters)),
		Chapters:    models.EncodeChapters(d.Chapters),
		Project:     models.EncodeProject(models.Project{Description: d.ProjectDesc, StudentProject: []models.StudentProject{}}),
		QA:          models.EncodeQA(nil),
		Reviews:     models.EncodeReviews(nil),
	}, nil
}

// BuildUpdate rewrites an existing row from the draft. Engagement counters
// and community content (student submissions, qa, reviews) survive the edit;
// the totals are recomputed from the draft's chapter tree.
func (d Draft) BuildUpdate(existing models.Course) (models.Course, error) {
	if err := d.Validate(); err != nil {
		return models.Course{}, err
	}
	project := models.DecodeProject(existing.Project)
	project.Description = d.ProjectDesc

	updated := existing
	updated.Name = d.Name
	updated.TeacherID = d.TeacherID
	updated.Price = d.Price
	updated.Discount = d.Discount
	updated.Category = d.Category
	updated.Description = d.Description
	updated.Image = imageOrPlaceholder(d.Image)
	updated.LessonCount = TotalLessons(d.Chapters)
	updated.Duration = FormatDuration(TotalMinutes(d.Chapters))
	updated.Chapters = models.EncodeChapters(d.Chapters)
	updated.Project = models.EncodeProject(project)
	updated.QA = models.EncodeQA(models.DecodeQA(existing.QA))
	updated.Reviews = models.EncodeReviews(models.DecodeReviews(existing.Reviews))
	return updated, nil
}

// DraftOf reopens a stored course for editing, decoding the chapter blob.
func DraftOf(c models.Course) Draft {
	return Draft{
		Name:        c.Name,
		Price:       c.Price,
		Discount:    c.Discount,
		Category:    c.Category,
		Description: c.Description,
		Image:       c.Image,
		ProjectDesc: models.DecodeProject(c.Project).Description,
		Chapters:    models.DecodeChapters(c.Chapters),
		TeacherID:   c.TeacherID,
	}
}

func imageOrPlaceholder(image string) string {
	if image == "" {
		return placeholderImage
	}
	return image
}
