package course

import (
	"testing"

	"coursehub/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoChapterTree() []models.Chapter {
	return []models.Chapter{
		{
			Title: "Basics",
			Order: 1,
			Lessons: []models.Lesson{
				{ID: 1, Title: "A", Duration: "15m", Status: models.LessonNotStarted},
				{ID: 2, Title: "B", Duration: "1h", Status: models.LessonNotStarted},
			},
		},
		{
			Title: "Advanced",
			Order: 2,
			Lessons: []models.Lesson{
				{ID: 3, Title: "C", Duration: "bad", Status: models.LessonNotStarted},
			},
		},
	}
}

func TestTotalLessons(t *testing.T) {
	assert.Equal(t, 3, TotalLessons(twoChapterTree()))
	assert.Equal(t, 0, TotalLessons(nil))
	assert.Equal(t, 0, TotalLessons([]models.Chapter{{Title: "Empty", Order: 1}}))
}

func TestParseMinutes(t *testing.T) {
	assert.Equal(t, 15, ParseMinutes("15m"))
	assert.Equal(t, 60, ParseMinutes("1h"))
	assert.Equal(t, 0, ParseMinutes("bad"))
	assert.Equal(t, 0, ParseMinutes(""))
	assert.Equal(t, 10, ParseMinutes("10"))
	assert.Equal(t, 120, ParseMinutes("2H"))
	assert.Equal(t, 45, ParseMinutes(" 45m "))
}

func TestDurationAggregation(t *testing.T) {
	chapters := []models.Chapter{
		{
			Title: "Mixed",
			Order: 1,
			Lessons: []models.Lesson{
				{ID: 1, Duration: "15m"},
				{ID: 2, Duration: "1h"},
				{ID: 3, Duration: "bad"},
			},
		},
	}

	total := TotalMinutes(chapters)
	assert.Equal(t, 75, total)
	assert.Equal(t, "1h 15m", FormatDuration(total))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "1h 0m", FormatDuration(60))
	assert.Equal(t, "2h 5m", FormatDuration(125))
}

func TestAddChapterSeedsLesson(t *testing.T) {
	chapters := NewChapters()
	chapters = AddChapter(chapters)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Chapter 2", chapters[1].Title)
	assert.Equal(t, 2, chapters[1].Order)
	require.Len(t, chapters[1].Lessons, 1)
	assert.Equal(t, models.LessonNotStarted, chapters[1].Lessons[0].Status)
	// the seeded lesson id must not collide with chapter 1's lesson
	assert.Equal(t, 2, chapters[1].Lessons[0].ID)
}

func TestRemoveLastChapterRejected(t *testing.T) {
	chapters := NewChapters()

	_, err := RemoveChapter(chapters, 0)

	assert.ErrorIs(t, err, ErrLastChapter)
	assert.Len(t, chapters, 1)
}

func TestRemoveChapterReindexesOrder(t *testing.T) {
	chapters := []models.Chapter{
		{Title: "One", Order: 1, Lessons: []models.Lesson{{ID: 1}}},
		{Title: "Two", Order: 2, Lessons: []models.Lesson{{ID: 2}}},
		{Title: "Three", Order: 3, Lessons: []models.Lesson{{ID: 3}}},
	}

	out, err := RemoveChapter(chapters, 1)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "One", out[0].Title)
	assert.Equal(t, 1, out[0].Order)
	assert.Equal(t, "Three", out[1].Title)
	assert.Equal(t, 2, out[1].Order)
}

func TestUpdateChapterTitle(t *testing.T) {
	out, err := UpdateChapterTitle(twoChapterTree(), 1, "Renamed")

	require.NoError(t, err)
	assert.Equal(t, "Renamed", out[1].Title)

	_, err = UpdateChapterTitle(out, 7, "Nope")
	assert.ErrorIs(t, err, ErrNoSuchChapter)
}

func TestRemoveChapterBadIndex(t *testing.T) {
	_, err := RemoveChapter(twoChapterTree(), 5)
	assert.ErrorIs(t, err, ErrNoSuchChapter)
}

func TestAddLessonUsesNextID(t *testing.T) {
	out, err := AddLesson(twoChapterTree(), 1)

	require.NoError(t, err)
	require.Len(t, out[1].Lessons, 2)
	assert.Equal(t, 4, out[1].Lessons[1].ID)
	assert.Equal(t, newLessonDuration, out[1].Lessons[1].Duration)
}

func TestUpdateLessonKeepsID(t *testing.T) {
	out, err := UpdateLesson(twoChapterTree(), 0, 1, models.Lesson{
		ID:       999,
		Title:    "B renamed",
		Duration: "30m",
		Status:   models.LessonCompleted,
	})

	require.NoError(t, err)
	got := out[0].Lessons[1]
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, "B renamed", got.Title)
	assert.Equal(t, "30m", got.Duration)
	assert.Equal(t, models.LessonCompleted, got.Status)
}

func TestRemoveLesson(t *testing.T) {
	out, err := RemoveLesson(twoChapterTree(), 0, 0)

	require.NoError(t, err)
	require.Len(t, out[0].Lessons, 1)
	assert.Equal(t, "B", out[0].Lessons[0].Title)

	_, err = RemoveLesson(out, 0, 9)
	assert.ErrorIs(t, err, ErrNoSuchLesson)
}

func TestTreeOpsDoNotAliasInput(t *testing.T) {
	chapters := twoChapterTree()

	out, err := AddLesson(chapters, 0)
	require.NoError(t, err)
	out[0].Lessons[0].Title = "mutated"
	out[0].Title = "mutated"

	assert.Equal(t, "A", chapters[0].Lessons[0].Title)
	assert.Equal(t, "Basics", chapters[0].Title)
	assert.Len(t, chapters[0].Lessons, 2)
}
