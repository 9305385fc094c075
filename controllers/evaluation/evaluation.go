package evaluationController

import (
	"errors"

	"trainhub/middleware"
	"trainhub/models"
	evaluationValidator "trainhub/validators/evaluation"
	"trainhub/validators/listquery"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// Create links a participant to a module with rank and points
func (ct *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEvaluation").(*evaluationValidator.CreateEvaluationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	participantID := reqData.ParticipantID
	moduleID := reqData.ModuleID
	evaluation := models.Evaluation{
		Rank:          reqData.Rank,
		ParticipantID: &participantID,
		ModuleID:      &moduleID,
		Class:         reqData.Class,
		Points:        reqData.Points,
	}

	if err := ct.DB.Create(&evaluation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create evaluation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Add Evaluation successfully.", evaluation)
}

// List returns evaluations matching the search term against the class
// label, paginated, with participant and module eager loaded
func (ct *Controller) List(c *fiber.Ctx) error {
	params, ok := c.Locals("listQuery").(*listquery.Params)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := ct.DB.Model(&models.Evaluation{})
	if params.Search != "" {
		query = query.Where("class LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	query.Count(&total)

	var evaluations []models.Evaluation
	if err := query.
		Preload("Participant").
		Preload("Module").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&evaluations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation list fetched.", fiber.Map{
		"total":      total,
		"page":       params.Page,
		"totalPages": (total + int64(params.Limit) - 1) / int64(params.Limit),
		"items":      evaluations,
	})
}

// GetByID returns one evaluation with its participant and module
func (ct *Controller) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var evaluation models.Evaluation
	if err := ct.DB.
		Preload("Participant").
		Preload("Module").
		First(&evaluation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Evaluation found.", evaluation)
}

// Update modifies an evaluation, omitted or zero fields keep their
// previous value
func (ct *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var evaluation models.Evaluation
	if err := ct.DB.First(&evaluation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluation!", nil)
	}

	reqData, ok := c.Locals("validatedEvaluationUpdate").(*evaluationValidator.UpdateEvaluationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Rank > 0 {
		evaluation.Rank = reqData.Rank
	}
	if reqData.ParticipantID > 0 {
		participantID := reqData.ParticipantID
		evaluation.ParticipantID = &participantID
	}
	if reqData.ModuleID > 0 {
		moduleID := reqData.ModuleID
		evaluation.ModuleID = &moduleID
	}
	if reqData.Class != "" {
		evaluation.Class = reqData.Class
	}
	if reqData.Points > 0 {
		evaluation.Points = reqData.Points
	}

	if err := ct.DB.Save(&evaluation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update evaluation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Updated Evaluation successfully.", evaluation)
}

// Delete removes an evaluation
func (ct *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var evaluation models.Evaluation
	if err := ct.DB.First(&evaluation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Evaluation not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch evaluation!", nil)
	}

	if err := ct.DB.Delete(&evaluation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete evaluation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deleted Evaluation successfully.", nil)
}
