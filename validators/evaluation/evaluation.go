package evaluationValidator

import (
	"trainhub/middleware"
	"trainhub/validators/validate"

	"github.com/gofiber/fiber/v2"
)

type CreateEvaluationRequest struct {
	Rank          int    `json:"rank"`
	ParticipantID uint   `json:"participant_id" validate:"required"`
	ModuleID      uint   `json:"module_id" validate:"required"`
	Class         string `json:"class"`
	Points        int    `json:"points"`
}

type UpdateEvaluationRequest struct {
	Rank          int    `json:"rank"`
	ParticipantID uint   `json:"participant_id"`
	ModuleID      uint   `json:"module_id"`
	Class         string `json:"class"`
	Points        int    `json:"points"`
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEvaluationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvaluation", reqData)
		return c.Next()
	}
}

func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateEvaluationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedEvaluationUpdate", reqData)
		return c.Next()
	}
}
