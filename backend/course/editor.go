// Package course builds and validates the chapter/lesson tree of a course
// draft, derives the totals persisted on the course row, and mirrors the
// fetched course list.
package course

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"coursehub/backend/models"
)

var (
	ErrLastChapter   = errors.New("a course must keep at least one chapter")
	ErrNoSuchChapter = errors.New("chapter index out of range")
	ErrNoSuchLesson  = errors.New("lesson index out of range")
)

const (
	defaultLessonTitle    = "First lesson"
	newLessonTitle        = "New lesson"
	defaultLessonDuration = "15m"
	newLessonDuration     = "10m"
)

// NewChapters seeds an editor with one chapter holding one lesson, the
// starting point of the create screen.
func NewChapters() []models.Chapter {
	return []models.Chapter{
		{
			Title: "Chapter 1",
			Order: 1,
			Lessons: []models.Lesson{
				{ID: 1, Title: defaultLessonTitle, Duration: defaultLessonDuration, Status: models.LessonNotStarted},
			},
		},
	}
}

// Tree operations return a fresh slice so callers never alias editor state
// across updates.

func AddChapter(chapters []models.Chapter) []models.Chapter {
	out := cloneChapters(chapters)
	n := len(out) + 1
	out = append(out, models.Chapter{
		Title: fmt.Sprintf("Chapter %d", n),
		Order: n,
		Lessons: []models.Lesson{
			{ID: nextLessonID(out), Title: defaultLessonTitle, Duration: defaultLessonDuration, Status: models.LessonNotStarted},
		},
	})
	return out
}

// RemoveChapter drops the chapter at idx and renumbers the survivors so the
// display order stays 1..n. Removing the only remaining chapter is refused.
func RemoveChapter(chapters []models.Chapter, idx int) ([]models.Chapter, error) {
	if len(chapters) <= 1 {
		return nil, ErrLastChapter
	}
	if idx < 0 || idx >= len(chapters) {
		return nil, ErrNoSuchChapter
	}
	out := make([]models.Chapter, 0, len(chapters)-1)
	for i, ch := range chapters {
		if i == idx {
			continue
		}
		out = append(out, cloneChapter(ch))
	}
	for i := range out {
		out[i].Order = i + 1
	}
	return out, nil
}

func UpdateChapterTitle(chapters []models.Chapter, idx int, title string) ([]models.Chapter, error) {
	if idx < 0 || idx >= len(chapters) {
		return nil, ErrNoSuchChapter
	}
	out := cloneChapters(chapters)
	out[idx].Title = title
	return out, nil
}

// AddLesson appends a default lesson to the chapter at chIdx. Lesson ids are
// unique within the course: one past the highest id anywhere in the tree.
func AddLesson(chapters []models.Chapter, chIdx int) ([]models.Chapter, error) {
	if chIdx < 0 || chIdx >= len(chapters) {
		return nil, ErrNoSuchChapter
	}
	out := cloneChapters(chapters)
	out[chIdx].Lessons = append(out[chIdx].Lessons, models.Lesson{
		ID:       nextLessonID(out),
		Title:    newLessonTitle,
		Duration: newLessonDuration,
		Status:   models.LessonNotStarted,
	})
	return out, nil
}

func UpdateLesson(chapters []models.Chapter, chIdx, lesIdx int, lesson models.Lesson) ([]models.Chapter, error) {
	if chIdx < 0 || chIdx >= len(chapters) {
		return nil, ErrNoSuchChapter
	}
	if lesIdx < 0 || lesIdx >= len(chapters[chIdx].Lessons) {
		return nil, ErrNoSuchLesson
	}
	out := cloneChapters(chapters)
	lesson.ID = out[chIdx].Lessons[lesIdx].ID
	out[chIdx].Lessons[lesIdx] = lesson
	return out, nil
}

func RemoveLesson(chapters []models.Chapter, chIdx, lesIdx int) ([]models.Chapter, error) {
	if chIdx < 0 || chIdx >= len(chapters) {
		return nil, ErrNoSuchChapter
	}
	if lesIdx < 0 || lesIdx >= len(chapters[chIdx].Lessons) {
		return nil, ErrNoSuchLesson
	}
	out := cloneChapters(chapters)
	out[chIdx].Lessons = append(out[chIdx].Lessons[:lesIdx], out[chIdx].Lessons[lesIdx+1:]...)
	return out, nil
}

// TotalLessons is the sum of every chapter's lesson count.
func TotalLessons(chapters []models.Chapter) int {
	total := 0
	for _, ch := range chapters {
		total += len(ch.Lessons)
	}
	return total
}

// TotalMinutes sums the parsed duration of every lesson in the tree.
func TotalMinutes(chapters []models.Chapter) int {
	total := 0
	for _, ch := range chapters {
		for _, l := range ch.Lessons {
			total += ParseMinutes(l.Duration)
		}
	}
	return total
}

// ParseMinutes reads the leading integer of a duration string like "15m" or
// "1h". An "h" suffix converts to minutes; anything unparseable counts as 0.
func ParseMinutes(duration string) int {
	s := strings.TrimSpace(duration)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	if i < len(s) && (s[i] == 'h' || s[i] == 'H') {
		return n * 60
	}
	return n
}

// FormatDuration renders minutes as "{h}h {m}m", dropping the hour part
// when it is zero.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func nextLessonID(chapters []models.Chapter) int {
	max := 0
	for _, ch := range chapters {
		for _, l := range ch.Lessons {
			if l.ID > max {
				max = l.ID
			}
		}
	}
	return max + 1
}

func cloneChapters(chapters []models.Chapter) []models.Chapter {
	out := make([]models.Chapter, len(chapters))
	for i, ch := range chapters {
		out[i] = cloneChapter(ch)
	}
	return out
}

func cloneChapter(ch models.Chapter) models.Chapter {
	lessons := make([]models.Lesson, len(ch.Lessons))
	copy(lessons, ch.Lessons)
	ch.Lessons = lessons
	return ch
}
