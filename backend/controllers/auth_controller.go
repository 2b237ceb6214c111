package controllers

import (
	"errors"

	"coursehub/backend/config"
	"coursehub/backend/session"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Sessions *session.Service
	State    *session.State
	Cfg      *config.Config
}

func NewAuthController(sessions *session.Service, state *session.State, cfg *config.Config) *AuthController {
	return &AuthController{Sessions: sessions, State: state, Cfg: cfg}
}

// Login resolves credentials against the admin table, then the teacher
// table, and returns a role-tagged token. A locked teacher account gets a
// distinct message so the client can tell it from a typo.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	ac.State.Begin()
	account, err := ac.Sessions.Login(input.Username, input.Password)
	if err != nil {
		ac.State.Fail()
		if errors.Is(err, session.ErrInvalidCredentials) || errors.Is(err, session.ErrAccountLocked) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query database",
		})
	}
	ac.State.Succeed(account)

	token, err := utils.GenerateJWTToken(account.ID(), string(account.Role), ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	var user interface{}
	if account.Role == session.RoleAdmin {
		user = account.Admin
	} else {
		user = account.Teacher
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  account.Role,
		"user":  user,
	})
}

// Logout clears the session state. Purely local, nothing is touched
// remotely.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.State.Logout()
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}
