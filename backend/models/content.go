package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

const (
	LessonCompleted  = "completed"
	LessonInProgress = "inprogress"
	LessonNotStarted = "not_started"
)

type Lesson struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"` // e.g. "15m", "1h"
	Status   string `json:"status"`
}

type Chapter struct {
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Lessons []Lesson `json:"lessons"`
}

type ResourceFile struct {
	URL  string `json:"url"`
	Size string `json:"size"`
}

type StudentProject struct {
	UserID   int            `json:"userid"`
	Name     string         `json:"nameprj"`
	Image    string         `json:"imageprj"`
	Resource []ResourceFile `json:"resourse"`
}

type Project struct {
	Description    string           `json:"description"`
	StudentProject []StudentProject `json:"studentproject"`
}

type QAEntry struct {
	UserID       int    `json:"userid"`
	PostDate     string `json:"postdate"`
	Content      string `json:"content"`
	Like         int    `json:"like"`
	CommentCount int    `json:"commentcount"`
}

type Review struct {
	UserID   int    `json:"userId"`
	PostDate string `json:"postDate"`
	Content  string `json:"content"`
	Vote     int    `json:"vote"`
}

// CourseContent is the decoded form of the four blob columns on Course.
type CourseContent struct {
	Chapters []Chapter `json:"chapters"`
	Project  Project   `json:"project"`
	QA       []QAEntry `json:"qa"`
	Reviews  []Review  `json:"reviews"`
}

// Blob codec. Encoding only fails on unmarshalable values, which these
// types cannot produce, so Encode* swallow the error and return a valid
// blob. Decoding is tolerant: a missing, empty or malformed column yields
// the zero structure instead of an error, so one bad row never breaks a
// course load.

func EncodeChapters(chapters []Chapter) datatypes.JSON {
	if chapters == nil {
		chapters = []Chapter{}
	}
	b, _ := json.Marshal(chapters)
	return datatypes.JSON(b)
}

func DecodeChapters(blob datatypes.JSON) []Chapter {
	var chapters []Chapter
	if len(blob) == 0 || json.Unmarshal(blob, &chapters) != nil || chapters == nil {
		return []Chapter{}
	}
	return chapters
}

func EncodeProject(p Project) datatypes.JSON {
	if p.StudentProject == nil {
		p.StudentProject = []StudentProject{}
	}
	b, _ := json.Marshal(p)
	return datatypes.JSON(b)
}

func DecodeProject(blob datatypes.JSON) Project {
	var p Project
	if len(blob) == 0 || json.Unmarshal(blob, &p) != nil {
		return Project{StudentProject: []StudentProject{}}
	}
	if p.StudentProject == nil {
		p.StudentProject = []StudentProject{}
	}
	return p
}

func EncodeQA(qa []QAEntry) datatypes.JSON {
	if qa == nil {
		qa = []QAEntry{}
	}
	b, _ := json.Marshal(qa)
	return datatypes.JSON(b)
}

func DecodeQA(blob datatypes.JSON) []QAEntry {
	var qa []QAEntry
	if len(blob) == 0 || json.Unmarshal(blob, &qa) != nil || qa == nil {
		return []QAEntry{}
	}
	return qa
}

func EncodeReviews(reviews []Review) datatypes.JSON {
	if reviews == nil {
		reviews = []Review{}
	}
	b, _ := json.Marshal(reviews)
	return datatypes.JSON(b)
}

func DecodeReviews(blob datatypes.JSON) []Review {
	var reviews []Review
	if len(blob) == 0 || json.Unmarshal(blob, &reviews) != nil || reviews == nil {
		return []Review{}
	}
	return reviews
}

// Content decodes all four blob columns at once.
func (c Course) Content() CourseContent {
	return CourseContent{
		Chapters: DecodeChapters(c.Chapters),
		Project:  DecodeProject(c.Project),
		QA:       DecodeQA(c.QA),
		Reviews:  DecodeReviews(c.Reviews),
	}
}
