package evaluationRoutes

import (
	evaluationController "trainhub/controllers/evaluation"
	"trainhub/middleware"
	evaluationValidator "trainhub/validators/evaluation"
	"trainhub/validators/listquery"

	"github.com/gofiber/fiber/v2"
)

func SetupEvaluationRoutes(app *fiber.App, ctrl *evaluationController.Controller, tokens *middleware.TokenService) {
	evaluationGroup := app.Group("/api/evaluation", tokens.Protect())

	evaluationGroup.Post("/create", evaluationValidator.Create(), ctrl.Create)
	evaluationGroup.Get("/", listquery.Parse(), ctrl.List)
	evaluationGroup.Get("/get/:id", ctrl.GetByID)
	evaluationGroup.Put("/update/:id", evaluationValidator.Update(), ctrl.Update)
	evaluationGroup.Delete("/delete/:id", ctrl.Delete)
}
