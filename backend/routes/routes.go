package routes

import (
	"coursehub/backend/config"
	"coursehub/backend/controllers"
	"coursehub/backend/course"
	"coursehub/backend/middleware"
	"coursehub/backend/roster"
	"coursehub/backend/session"
	"coursehub/backend/store"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires the HTTP rendition of the app's screens: login, the
// admin roster table and the teacher's course editor.
func SetupRoutes(app *fiber.App, stores store.Stores, cfg *config.Config) {
	sessions := session.NewService(stores.Admins, stores.Teachers)
	state := session.NewState()
	rosterMgr := roster.NewManager(stores.Teachers)
	catalog := course.NewCatalog(stores.Courses)

	// Auth routes
	authController := controllers.NewAuthController(sessions, state, cfg)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)

	authMiddleware := middleware.AuthMiddleware(cfg)

	// Admin routes: teacher roster CRUD
	teachersController := controllers.NewTeachersController(rosterMgr, cfg)
	admin := app.Group("/api/admin", authMiddleware, middleware.RequireRole(string(session.RoleAdmin)))
	admin.Get("/teachers", teachersController.List)
	admin.Post("/teachers", teachersController.Create)
	admin.Put("/teachers/:id", teachersController.Update)
	admin.Put("/teachers/:id/status", teachersController.UpdateStatus)
	admin.Delete("/teachers/:id", teachersController.Delete)

	// Teacher routes: own-course CRUD with nested content editing
	coursesController := controllers.NewCoursesController(stores.Courses, catalog, cfg)
	teacher := app.Group("/api/teacher", authMiddleware, middleware.RequireRole(string(session.RoleTeacher)))
	teacher.Get("/courses", coursesController.List)
	teacher.Get("/courses/:id", coursesController.Get)
	teacher.Post("/courses", coursesController.Create)
	teacher.Put("/courses/:id", coursesController.Update)
	teacher.Delete("/courses/:id", coursesController.Delete)
}
