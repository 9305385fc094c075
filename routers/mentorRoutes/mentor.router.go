package mentorRoutes

import (
	mentorController "trainhub/controllers/mentor"
	"trainhub/middleware"
	"trainhub/validators/listquery"
	mentorValidator "trainhub/validators/mentor"

	"github.com/gofiber/fiber/v2"
)

func SetupMentorRoutes(app *fiber.App, ctrl *mentorController.Controller, tokens *middleware.TokenService) {
	mentorGroup := app.Group("/api/mentor", tokens.Protect())

	mentorGroup.Post("/create", mentorValidator.Create(), ctrl.Create)
	mentorGroup.Get("/", listquery.Parse(), ctrl.List)
	mentorGroup.Get("/get/:id", ctrl.GetByID)
	mentorGroup.Put("/update/:id", mentorValidator.Update(), ctrl.Update)
	mentorGroup.Delete("/delete/:id", ctrl.Delete)
}
