package moduleController

import (
	"errors"
	"time"

	"trainhub/middleware"
	"trainhub/models"
	"trainhub/validators/listquery"
	moduleValidator "trainhub/validators/module"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// parseDate accepts both full timestamps and plain dates
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// mentorPreview limits the eager-loaded mentor to its display name
func mentorPreview(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

// contentPreview limits eager-loaded contents to title and body
func contentPreview(db *gorm.DB) *gorm.DB {
	return db.Select("id", "module_id", "title", "content")
}

// Create adds a new module. All five fields are required, see the
// validator.
func (ct *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*moduleValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	date, err := parseDate(reqData.Date)
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"date": "Date must be YYYY-MM-DD or RFC3339!",
		})
	}

	mentorID := reqData.MentorID
	module := models.Module{
		Title:       reqData.Title,
		Description: reqData.Description,
		ClassModule: reqData.ClassModule,
		Date:        date,
		MentorID:    &mentorID,
	}

	if err := ct.DB.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully.", module)
}

// List returns modules matching the search term against the title,
// paginated, each with its mentor name and contents eager loaded
func (ct *Controller) List(c *fiber.Ctx) error {
	params, ok := c.Locals("listQuery").(*listquery.Params)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := ct.DB.Model(&models.Module{})
	if params.Search != "" {
		query = query.Where("title LIKE ?", "%"+params.Search+"%")
	}

	var total int64
	query.Count(&total)

	var modules []models.Module
	if err := query.
		Preload("Mentor", mentorPreview).
		Preload("Contents", contentPreview).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module list fetched.", fiber.Map{
		"total":      total,
		"page":       params.Page,
		"totalPages": (total + int64(params.Limit) - 1) / int64(params.Limit),
		"items":      modules,
	})
}

// GetByID returns one module with its mentor name and all contents
func (ct *Controller) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var module models.Module
	if err := ct.DB.
		Preload("Mentor", mentorPreview).
		Preload("Contents", contentPreview).
		First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module found.", module)
}

// Update modifies a module, omitted fields keep their previous value
func (ct *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var module models.Module
	if err := ct.DB.First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*moduleValidator.UpdateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.ClassModule != "" {
		module.ClassModule = reqData.ClassModule
	}
	if reqData.Date != "" {
		date, err := parseDate(reqData.Date)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"date": "Date must be YYYY-MM-DD or RFC3339!",
			})
		}
		module.Date = date
	}
	if reqData.MentorID > 0 {
		mentorID := reqData.MentorID
		module.MentorID = &mentorID
	}

	if err := ct.DB.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully.", module)
}

// Delete removes a module and all its contents in one transaction so no
// orphaned content rows remain
func (ct *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
	}

	var module models.Module
	if err := ct.DB.First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	err = ct.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", module.ID).Delete(&models.ModuleContent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&module).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully.", nil)
}
