package controllers

import (
	"errors"
	"strconv"

	"coursehub/backend/config"
	"coursehub/backend/roster"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type TeachersController struct {
	Roster *roster.Manager
	Cfg    *config.Config
}

func NewTeachersController(mgr *roster.Manager, cfg *config.Config) *TeachersController {
	return &TeachersController{Roster: mgr, Cfg: cfg}
}

// List refetches the roster and returns the requested page of the filtered
// view. Filtering and pagination happen entirely in memory.
func (tc *TeachersController) List(c *fiber.Ctx) error {
	if err := tc.Roster.Load(); err != nil {
		return utils.InternalServerError(c, "Could not fetch teachers")
	}

	query := roster.Query{
		Status: c.Query("status", roster.StatusAll),
		Search: c.Query("search"),
		Field:  c.Query("field"),
	}
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}

	result := tc.Roster.Paginate(query, page)
	return utils.Paginate(c, result.Items, result.Total, result.Page, result.TotalPages, roster.PageSize)
}

func (tc *TeachersController) Create(c *fiber.Ctx) error {
	var input roster.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	teacher, err := tc.Roster.Add(input)
	if err != nil {
		if errors.Is(err, roster.ErrMissingFields) || errors.Is(err, roster.ErrBadTimework) {
			return utils.ValidationError(c, err)
		}
		return utils.InternalServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Teacher created",
		"teacher": teacher,
	})
}

func (tc *TeachersController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid teacher ID")
	}

	var input roster.Input
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	teacher, err := tc.Roster.Update(uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrMissingFields), errors.Is(err, roster.ErrBadTimework):
			return utils.ValidationError(c, err)
		case errors.Is(err, roster.ErrTeacherMissing):
			return utils.NotFound(c, "Teacher not found")
		default:
			return utils.InternalServerError(c, err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"message": "Teacher updated",
		"teacher": teacher,
	})
}

// UpdateStatus is the dedicated active/inactive toggle from the roster
// table, separate from the full edit form.
func (tc *TeachersController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid teacher ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	teacher, err := tc.Roster.SetStatus(uint(id), input.Status)
	if err != nil {
		if errors.Is(err, roster.ErrTeacherMissing) {
			return utils.NotFound(c, "Teacher not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Status updated",
		"teacher": teacher,
	})
}

func (tc *TeachersController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid teacher ID")
	}

	if err := tc.Roster.Delete(uint(id)); err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Teacher deleted",
	})
}
