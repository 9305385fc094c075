package mentorController

import (
	"errors"

	"trainhub/middleware"
	"trainhub/models"
	"trainhub/validators/listquery"
	mentorValidator "trainhub/validators/mentor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Create adds a new mentor
func (ct *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMentor").(*mentorValidator.CreateMentorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mentor := models.Mentor{
		Name:  reqData.Name,
		Email: reqData.Email,
	}

	if err := ct.DB.Create(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Add Mentor successfully.", mentor)
}

// List returns mentors matching the search term, paginated
func (ct *Controller) List(c *fiber.Ctx) error {
	params, ok := c.Locals("listQuery").(*listquery.Params)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := ct.DB.Model(&models.Mentor{})
	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	query.Count(&total)

	var mentors []models.Mentor
	if err := query.
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&mentors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor list fetched.", fiber.Map{
		"total":      total,
		"page":       params.Page,
		"totalPages": (total + int64(params.Limit) - 1) / int64(params.Limit),
		"items":      mentors,
	})
}

// GetByID returns one mentor
func (ct *Controller) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var mentor models.Mentor
	if err := ct.DB.First(&mentor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mentor found.", mentor)
}

// Update modifies a mentor, omitted fields keep their previous value
func (ct *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var mentor models.Mentor
	if err := ct.DB.First(&mentor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentor!", nil)
	}

	reqData, ok := c.Locals("validatedMentorUpdate").(*mentorValidator.UpdateMentorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		mentor.Name = reqData.Name
	}
	if reqData.Email != "" {
		mentor.Email = reqData.Email
	}

	if err := ct.DB.Save(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Updated Mentor successfully.", mentor)
}

// Delete removes a mentor
func (ct *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var mentor models.Mentor
	if err := ct.DB.First(&mentor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mentor not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mentor!", nil)
	}

	if err := ct.DB.Delete(&mentor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete mentor!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deleted Mentor successfully.", nil)
}
