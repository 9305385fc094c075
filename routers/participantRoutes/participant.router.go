package participantRoutes

import (
	participantController "trainhub/controllers/participant"
	"trainhub/middleware"
	"trainhub/validators/listquery"
	participantValidator "trainhub/validators/participant"

	"github.com/gofiber/fiber/v2"
)

func SetupParticipantRoutes(app *fiber.App, ctrl *participantController.Controller, tokens *middleware.TokenService) {
	participantGroup := app.Group("/api/participant", tokens.Protect())

	participantGroup.Post("/create", participantValidator.Create(), ctrl.Create)
	participantGroup.Get("/", listquery.Parse(), ctrl.List)
	participantGroup.Get("/get/:id", ctrl.GetByID)
	participantGroup.Put("/update/:id", participantValidator.Update(), ctrl.Update)
	participantGroup.Delete("/delete/:id", ctrl.Delete)
}
