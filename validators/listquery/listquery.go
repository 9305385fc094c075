package listquery

import (
	"trainhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Params is the common query contract for every listing route: substring
// search plus page/limit pagination with defaults 1/10.
type Params struct {
	Search string
	Page   int
	Limit  int
}

func (p *Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse validates the listing query parameters and stores the result in
// the request context. page and limit must be positive when provided.
func Parse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := &Params{
			Search: c.Query("search"),
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
		}

		errors := make(map[string]string)

		if params.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if params.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("listQuery", params)
		return c.Next()
	}
}
