package moduleRoutes

import (
	moduleController "trainhub/controllers/module"
	"trainhub/middleware"
	"trainhub/validators/listquery"
	moduleValidator "trainhub/validators/module"

	"github.com/gofiber/fiber/v2"
)

func SetupModuleRoutes(app *fiber.App, ctrl *moduleController.Controller, tokens *middleware.TokenService) {
	moduleGroup := app.Group("/api/module", tokens.Protect())

	// Module content routes
	moduleGroup.Post("/content/create", moduleValidator.CreateContent(), ctrl.CreateContent)
	moduleGroup.Get("/content/", listquery.Parse(), ctrl.ListContents)
	moduleGroup.Get("/content/get/:id", ctrl.GetContentsByModuleID)
	moduleGroup.Put("/content/update/:id", moduleValidator.UpdateContent(), ctrl.UpdateContent)
	moduleGroup.Delete("/content/delete/:id", ctrl.DeleteContent)

	moduleGroup.Post("/create", moduleValidator.Create(), ctrl.Create)
	moduleGroup.Get("/", listquery.Parse(), ctrl.List)
	moduleGroup.Get("/get/:id", ctrl.GetByID)
	moduleGroup.Put("/update/:id", moduleValidator.Update(), ctrl.Update)
	moduleGroup.Delete("/delete/:id", ctrl.Delete)
}
