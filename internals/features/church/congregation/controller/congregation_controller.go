// file: internals/features/church/congregation/controller/congregation_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tesouraria_backend/internals/features/church/congregation/dto"
	model "tesouraria_backend/internals/features/church/congregation/model"
	service "tesouraria_backend/internals/features/church/congregation/service"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type CongregationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCongregationController(db *gorm.DB) *CongregationController {
	return &CongregationController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *CongregationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "congregation_code", "asc", helper.DefaultOpts)
	q := ctl.DB.Model(&model.CongregationModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("congregation_name ILIKE ?", "%"+name+"%")
	}
	if code := strings.TrimSpace(c.Query("code")); code != "" {
		q = q.Where("congregation_code = ?", code)
	}
	// users without the global view see only their scoped congregations
	if !helperAuth.GetCapabilities(c).CanViewAllCongregations {
		ids := helperAuth.GetCongregationIDs(c)
		if len(ids) == 0 {
			return helper.Success(c, "OK", fiber.Map{
				"items": []dto.CongregationResponse{},
				"meta":  helper.BuildMeta(0, p),
			})
		}
		q = q.Where("congregation_id IN ?", ids)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"congregation_code": "congregation_code",
		"congregation_name": "congregation_name",
	}, "congregation_code")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.CongregationModel
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

// ========== Create ==========
func (ctl *CongregationController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageCongregations {
		return helper.Forbidden(c, "Missing capability: manage congregations")
	}

	var req dto.CreateCongregationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Congregation created", dto.FromModel(m))
}

// ========== Update ==========
func (ctl *CongregationController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageCongregations {
		return helper.Forbidden(c, "Missing capability: manage congregations")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_id invalid")
	}

	var m model.CongregationModel
	if err := ctl.DB.First(&m, "congregation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Congregation not found")
		}
		return helper.InfraError(c, err)
	}

	var req dto.UpdateCongregationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Congregation updated", dto.FromModel(&m))
}

// ========== Delete ==========
// A congregation with contributors or launches cannot be removed.
func (ctl *CongregationController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageCongregations {
		return helper.Forbidden(c, "Missing capability: manage congregations")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Query("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "id query param invalid")
	}

	var contributors int64
	if err := ctl.DB.Table("contributors").
		Where("contributor_congregation_id = ?", id).Count(&contributors).Error; err != nil {
		return helper.InfraError(c, err)
	}
	var launches int64
	if err := ctl.DB.Table("launches").
		Where("launch_congregation_id = ?", id).Count(&launches).Error; err != nil {
		return helper.InfraError(c, err)
	}
	if err := service.EnsureDeletable(contributors, launches); err != nil {
		return helper.DomainError(c, err.Error())
	}

	if err := ctl.DB.Delete(&model.CongregationModel{}, "congregation_id = ?", id).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Congregation deleted", nil)
}
