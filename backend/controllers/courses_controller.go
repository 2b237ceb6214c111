package controllers

import (
	"strconv"

	"coursehub/backend/config"
	"coursehub/backend/course"
	"coursehub/backend/models"
	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Courses store.CourseStore
	Catalog *course.Catalog
	Cfg     *config.Config
}

func NewCoursesController(courses store.CourseStore, catalog *course.Catalog, cfg *config.Config) *CoursesController {
	return &CoursesController{Courses: courses, Catalog: catalog, Cfg: cfg}
}

func (cc *CoursesController) teacherID(c *fiber.Ctx) (uint, bool) {
	raw, _ := c.Locals("user_id").(string)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// List refetches the catalog mirror and serves the signed-in teacher's slice
// of it, blob columns decoded for the course list screen.
func (cc *CoursesController) List(c *fiber.Ctx) error {
	teacherID, ok := cc.teacherID(c)
	if !ok {
		return utils.Unauthorized(c, "Unknown teacher identity")
	}

	if err := cc.Catalog.Load(); err != nil {
		return utils.InternalServerError(c, "Could not fetch courses")
	}

	courses := cc.Catalog.ByTeacher(teacherID)
	result := make([]fiber.Map, 0, len(courses))
	for _, crs := range courses {
		result = append(result, courseView(crs))
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func (cc *CoursesController) Get(c *fiber.Ctx) error {
	teacherID, ok := cc.teacherID(c)
	if !ok {
		return utils.Unauthorized(c, "Unknown teacher identity")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := cc.Catalog.Load(); err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	crs, found := cc.Catalog.Find(uint(id))
	if !found || crs.TeacherID != teacherID {
		return utils.NotFound(c, "Course not found")
	}

	return utils.Success(c, fiber.StatusOK, courseView(crs))
}

// Create validates the draft and inserts the built record. The owning
// teacher always comes from the token, never the payload, and the store
// assigns the identity fields.
func (cc *CoursesController) Create(c *fiber.Ctx) error {
	teacherID, ok := cc.teacherID(c)
	if !ok {
		return utils.Unauthorized(c, "Unknown teacher identity")
	}

	var draft course.Draft
	if err := c.BodyParser(&draft); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	draft.TeacherID = teacherID

	record, err := draft.BuildCreate()
	if err != nil {
		return utils.ValidationError(c, err)
	}

	stored, err := cc.Courses.Insert(record)
	if err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}
	cc.Catalog.Add(stored)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created",
		"course":  courseView(stored),
	})
}

func (cc *CoursesController) Update(c *fiber.Ctx) error {
	teacherID, ok := cc.teacherID(c)
	if !ok {
		return utils.Unauthorized(c, "Unknown teacher identity")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	existing, found, err := cc.Courses.FindByID(uint(id))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !found || existing.TeacherID != teacherID {
		return utils.NotFound(c, "Course not found")
	}

	draft := course.DraftOf(existing)
	if err := c.BodyParser(&draft); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	draft.TeacherID = teacherID

	record, err := draft.BuildUpdate(existing)
	if err != nil {
		return utils.ValidationError(c, err)
	}

	stored, err := cc.Courses.Update(record)
	if err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}
	cc.Catalog.Replace(stored)

	return c.JSON(fiber.Map{
		"message": "Course updated",
		"course":  courseView(stored),
	})
}

func (cc *CoursesController) Delete(c *fiber.Ctx) error {
	teacherID, ok := cc.teacherID(c)
	if !ok {
		return utils.Unauthorized(c, "Unknown teacher identity")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	existing, found, err := cc.Courses.FindByID(uint(id))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !found || existing.TeacherID != teacherID {
		return utils.NotFound(c, "Course not found")
	}

	if err := cc.Courses.Delete(uint(id)); err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}
	cc.Catalog.Remove(uint(id))

	return c.JSON(fiber.Map{
		"message": "Course deleted",
	})
}

// courseView flattens a stored row plus its decoded content for clients.
func courseView(crs models.Course) fiber.Map {
	content := crs.Content()
	return fiber.Map{
		"id":          crs.ID,
		"created_at":  crs.CreatedAt,
		"name":        crs.Name,
		"teacherid":   crs.TeacherID,
		"price":       crs.Price,
		"discount":    crs.Discount,
		"vote":        crs.Vote,
		"votecount":   crs.VoteCount,
		"likes":       crs.Likes,
		"share":       crs.Share,
		"category":    crs.Category,
		"duration":    crs.Duration,
		"description": crs.Description,
		"lessoncount": crs.LessonCount,
		"image":       crs.Image,
		"chapters":    content.Chapters,
		"project":     content.Project,
		"qa":          content.QA,
		"reviews":     content.Reviews,
	}
}
