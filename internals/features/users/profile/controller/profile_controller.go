// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tesouraria_backend/internals/features/users/profile/dto"
	model "tesouraria_backend/internals/features/users/profile/model"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type ProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *ProfileController) List(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageProfiles {
		return helper.Forbidden(c, "Missing capability: manage profiles")
	}

	p := helper.ParseFiber(c, "profile_name", "asc", helper.AdminOpts)
	q := ctl.DB.Model(&model.ProfileModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("profile_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"profile_name":       "profile_name",
		"profile_created_at": "profile_created_at",
	}, "profile_name")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.ProfileModel
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
func (ctl *ProfileController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageProfiles {
		return helper.Forbidden(c, "Missing capability: manage profiles")
	}

	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.ProfileDefaultLaunchType.Valid() {
		return helper.DomainError(c, "unknown launch type "+string(req.ProfileDefaultLaunchType))
	}

	p := req.ToModel()
	if err := ctl.DB.Create(p).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Profile created", dto.FromModel(p))
}

// ========== Update ==========
func (ctl *ProfileController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageProfiles {
		return helper.Forbidden(c, "Missing capability: manage profiles")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "profile_id invalid")
	}

	var p model.ProfileModel
	if err := ctl.DB.First(&p, "profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Profile not found")
		}
		return helper.InfraError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.ProfileDefaultLaunchType != nil && !req.ProfileDefaultLaunchType.Valid() {
		return helper.DomainError(c, "unknown launch type "+string(*req.ProfileDefaultLaunchType))
	}

	req.ApplyTo(&p)
	if err := ctl.DB.Save(&p).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Profile updated", dto.FromModel(&p))
}

// ========== Duplicate (copy-on-write) ==========
func (ctl *ProfileController) Duplicate(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageProfiles {
		return helper.Forbidden(c, "Missing capability: manage profiles")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "profile_id invalid")
	}

	var req dto.DuplicateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var src model.ProfileModel
	if err := ctl.DB.First(&src, "profile_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Profile not found")
		}
		return helper.InfraError(c, err)
	}

	cp := src.Duplicate(req.ProfileName)
	if err := ctl.DB.Create(&cp).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Profile duplicated", dto.FromModel(&cp))
}

// ========== Delete ==========
func (ctl *ProfileController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageProfiles {
		return helper.Forbidden(c, "Missing capability: manage profiles")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Query("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "id query param invalid")
	}

	// a profile still referenced by users cannot go away
	var refs int64
	if err := ctl.DB.Table("users").Where("user_profile_id = ?", id).Count(&refs).Error; err != nil {
		return helper.InfraError(c, err)
	}
	if refs > 0 {
		return helper.DomainError(c, "profile has dependent users")
	}

	if err := ctl.DB.Delete(&model.ProfileModel{}, "profile_id = ?", id).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Profile deleted", nil)
}
