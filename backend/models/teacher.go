package models

import (
	"strings"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Teacher struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Job       string    `json:"job"`
	Location  string    `json:"location"`
	TimeWork  string    `json:"timework" gorm:"column:timework"` // daily start time, HH:MM
	Image     string    `json:"image"`
	School    string    `json:"school"`
	Username  string    `json:"username" gorm:"uniqueIndex"`
	Password  string    `json:"password"`
	Vote      float64   `json:"vote"`
	VoteCount int       `json:"votecount" gorm:"column:votecount"`
	Status    string    `json:"status" gorm:"default:active"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// Inactive reports whether the account is locked. The status column holds
// free-form text in old rows, so the comparison is case-insensitive.
func (t Teacher) Inactive() bool {
	return strings.EqualFold(t.Status, StatusInactive)
}
