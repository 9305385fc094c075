package participantController

import (
	"errors"

	"trainhub/middleware"
	"trainhub/models"
	"trainhub/validators/listquery"
	participantValidator "trainhub/validators/participant"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Create adds a new participant
func (ct *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedParticipant").(*participantValidator.CreateParticipantRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	participant := models.Participant{
		Name:  reqData.Name,
		Email: reqData.Email,
		Phone: reqData.Phone,
	}

	if err := ct.DB.Create(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Add Participant successfully.", participant)
}

// List returns participants matching the search term, paginated
func (ct *Controller) List(c *fiber.Ctx) error {
	params, ok := c.Locals("listQuery").(*listquery.Params)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := ct.DB.Model(&models.Participant{})
	if params.Search != "" {
		query = query.Where("name LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	query.Count(&total)

	var participants []models.Participant
	if err := query.
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&participants).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch participants!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant list fetched.", fiber.Map{
		"total":      total,
		"page":       params.Page,
		"totalPages": (total + int64(params.Limit) - 1) / int64(params.Limit),
		"items":      participants,
	})
}

// GetByID returns one participant
func (ct *Controller) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var participant models.Participant
	if err := ct.DB.First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant found.", participant)
}

// Update modifies a participant, omitted fields keep their previous value
func (ct *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var participant models.Participant
	if err := ct.DB.First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch participant!", nil)
	}

	reqData, ok := c.Locals("validatedParticipantUpdate").(*participantValidator.UpdateParticipantRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		participant.Name = reqData.Name
	}
	if reqData.Email != "" {
		participant.Email = reqData.Email
	}
	if reqData.Phone != "" {
		participant.Phone = reqData.Phone
	}

	if err := ct.DB.Save(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Updated Participant successfully.", participant)
}

// Delete removes a participant
func (ct *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var participant models.Participant
	if err := ct.DB.First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch participant!", nil)
	}

	if err := ct.DB.Delete(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deleted Participant successfully.", nil)
}
