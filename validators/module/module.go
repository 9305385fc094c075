package moduleValidator

import (
	"trainhub/middleware"
	"trainhub/validators/validate"

	"github.com/gofiber/fiber/v2"
)

// CreateModuleRequest requires all five fields, module creation is the
// only create in the API with full required-field validation.
type CreateModuleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ClassModule string `json:"class_module" validate:"required"`
	Date        string `json:"date" validate:"required"`
	MentorID    uint   `json:"mentor_id" validate:"required"`
}

type UpdateModuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ClassModule string `json:"class_module"`
	Date        string `json:"date"`
	MentorID    uint   `json:"mentor_id"`
}

type CreateContentRequest struct {
	ModuleID uint   `json:"module_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type UpdateContentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}
