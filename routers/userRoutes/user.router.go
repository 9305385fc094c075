package userRoutes

import (
	userController "trainhub/controllers/user"
	"trainhub/middleware"
	userValidator "trainhub/validators/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, ctrl *userController.Controller, tokens *middleware.TokenService, db *gorm.DB) {
	userGroup := app.Group("/api/users")

	// Public routes
	userGroup.Post("/register", userValidator.Register(), ctrl.Register)
	userGroup.Post("/login", userValidator.Login(), ctrl.Login)

	// Protected routes, profile access re-checks that the subject still exists
	userGroup.Get("/profile", tokens.Protect(), middleware.EnsureUserExists(db), ctrl.GetProfile)
	userGroup.Put("/profile", tokens.Protect(), middleware.EnsureUserExists(db), userValidator.UpdateProfile(), ctrl.UpdateProfile)
}
