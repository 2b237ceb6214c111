package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course is a marketplace listing owned by a teacher. The nested content
// (chapters, project, qa, reviews) is stored as JSON blobs, not relational
// rows; use the codec in content.go to move between blob and struct form.
type Course struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time      `json:"created_at"`
	Name        string         `json:"name"`
	TeacherID   uint           `json:"teacherid" gorm:"column:teacherid;index"`
	Price       float64        `json:"price"`
	Discount    float64        `json:"discount"`
	Vote        float64        `json:"vote"`
	VoteCount   int            `json:"votecount" gorm:"column:votecount"`
	Likes       int            `json:"likes"`
	Share       int            `json:"share"`
	Category    string         `json:"category"`
	Duration    string         `json:"duration"`
	Description string         `json:"description"`
	LessonCount int            `json:"lessoncount" gorm:"column:lessoncount"`
	Image       string         `json:"image"`
	Chapters    datatypes.JSON `json:"chapters" gorm:"type:jsonb"`
	Project     datatypes.JSON `json:"project" gorm:"type:jsonb"`
	QA          datatypes.JSON `json:"qa" gorm:"type:jsonb"`
	Reviews     datatypes.JSON `json:"reviews" gorm:"type:jsonb"`
}

func (Course) TableName() string {
	return "courses"
}

var Categories = []string{
	"Business",
	"Design",
	"Code",
	"Writing",
	"Movie",
	"Language",
}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
