package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tesouraria_backend/internals/features/church/classification/dto"
	model "tesouraria_backend/internals/features/church/classification/model"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type ClassificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassificationController(db *gorm.DB) *ClassificationController {
	return &ClassificationController{DB: db, Validator: validator.New()}
}

func (ctl *ClassificationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "classification_code", "asc", helper.DefaultOpts)
	q := ctl.DB.Model(&model.ClassificationModel{})

	if desc := strings.TrimSpace(c.Query("description")); desc != "" {
		q = q.Where("classification_description ILIKE ?", "%"+desc+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"classification_code":        "classification_code",
		"classification_description": "classification_description",
	}, "classification_code")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.ClassificationModel
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.InfraError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModels(rows),
		"meta":  helper.BuildMeta(total, p),
	})
}

func (ctl *ClassificationController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageClassifications {
		return helper.Forbidden(c, "Missing capability: manage classifications")
	}

	var req dto.CreateClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classification created", dto.FromModel(m))
}

func (ctl *ClassificationController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageClassifications {
		return helper.Forbidden(c, "Missing capability: manage classifications")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "classification_id invalid")
	}

	var m model.ClassificationModel
	if err := ctl.DB.First(&m, "classification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Classification not found")
		}
		return helper.InfraError(c, err)
	}

	var req dto.UpdateClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Classification updated", dto.FromModel(&m))
}

func (ctl *ClassificationController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageClassifications {
		return helper.Forbidden(c, "Missing capability: manage classifications")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Query("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "id query param invalid")
	}

	var launches int64
	if err := ctl.DB.Table("launches").Where("launch_classification_id = ?", id).Count(&launches).Error; err != nil {
		return helper.InfraError(c, err)
	}
	if launches > 0 {
		return helper.DomainError(c, "classification has dependent launches")
	}

	if err := ctl.DB.Delete(&model.ClassificationModel{}, "classification_id = ?", id).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Classification deleted", nil)
}
