package moduleController

import (
	"errors"

	"trainhub/middleware"
	"trainhub/models"
	"trainhub/validators/listquery"
	moduleValidator "trainhub/validators/module"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateContent adds a content entry to an existing module
func (ct *Controller) CreateContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContent").(*moduleValidator.CreateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module models.Module
	if err := ct.DB.First(&module, reqData.ModuleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	content := models.ModuleContent{
		ModuleID: module.ID,
		Title:    reqData.Title,
		Content:  reqData.Content,
	}

	if err := ct.DB.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module content created successfully.", content)
}

// ListContents returns all module contents, paginated. The search term
// matches content titles.
func (ct *Controller) ListContents(c *fiber.Ctx) error {
	params, ok := c.Locals("listQuery").(*listquery.Params)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := ct.DB.Model(&models.ModuleContent{})
	if params.Search != "" {
		query = query.Where("title LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	query.Count(&total)

	var contents []models.ModuleContent
	if err := query.
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module contents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module content list fetched.", fiber.Map{
		"total":      total,
		"page":       params.Page,
		"totalPages": (total + int64(params.Limit) - 1) / int64(params.Limit),
		"items":      contents,
	})
}

// GetContentsByModuleID returns every content row of one module. An
// empty module yields 200 with an empty collection.
func (ct *Controller) GetContentsByModuleID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var contents []models.ModuleContent
	if err := ct.DB.Where("module_id = ?", id).Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module contents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module contents fetched.", fiber.Map{
		"items": contents,
	})
}

// UpdateContent modifies a content entry, omitted fields keep their
// previous value
func (ct *Controller) UpdateContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var content models.ModuleContent
	if err := ct.DB.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module content not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module content!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*moduleValidator.UpdateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		content.Title = reqData.Title
	}
	if reqData.Content != "" {
		content.Content = reqData.Content
	}

	if err := ct.DB.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module content updated successfully.", content)
}

// DeleteContent removes one content entry
func (ct *Controller) DeleteContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var content models.ModuleContent
	if err := ct.DB.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module content not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module content!", nil)
	}

	if err := ct.DB.Delete(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module content deleted successfully.", nil)
}
