// file: internals/features/church/contributor/controller/contributor_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/configs"
	dto "tesouraria_backend/internals/features/church/contributor/dto"
	model "tesouraria_backend/internals/features/church/contributor/model"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type ContributorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewContributorController(db *gorm.DB) *ContributorController {
	return &ContributorController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *ContributorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "contributor_name", "asc", helper.DefaultOpts)
	q := ctl.DB.Model(&model.ContributorModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("contributor_name ILIKE ?", "%"+name+"%")
	}
	if cong := strings.TrimSpace(c.Query("congregation_id")); cong != "" {
		id, err := uuid.Parse(cong)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_id invalid")
		}
		q = q.Scopes(model.ScopeByCongregation(id))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"contributor_name": "contributor_name",
		"contributor_code": "contributor_code",
	}, "contributor_name")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.ContributorModel
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
func (ctl *ContributorController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageContributors {
		return helper.Forbidden(c, "Missing capability: manage contributors")
	}

	var req dto.CreateContributorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.ContributorType.Valid() {
		return helper.DomainError(c, "contributor type must be MEMBRO or CONGREGADO")
	}
	if !helperAuth.MayOperateOn(c, req.ContributorCongregationID) {
		return helper.Forbidden(c, "Congregation outside your scope")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Contributor created", dto.FromModel(m))
}

// ========== Update ==========
func (ctl *ContributorController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageContributors {
		return helper.Forbidden(c, "Missing capability: manage contributors")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "contributor_id invalid")
	}

	var m model.ContributorModel
	if err := ctl.DB.First(&m, "contributor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Contributor not found")
		}
		return helper.InfraError(c, err)
	}

	var req dto.UpdateContributorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.ContributorType != nil && !req.ContributorType.Valid() {
		return helper.DomainError(c, "contributor type must be MEMBRO or CONGREGADO")
	}

	req.ApplyTo(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Contributor updated", dto.FromModel(&m))
}

// ========== Photo upload ==========
// multipart field "file"; stored under the public dir and referenced by
// relative path.
func (ctl *ContributorController) UploadPhoto(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageContributors {
		return helper.Forbidden(c, "Missing capability: manage contributors")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "contributor_id invalid")
	}

	var m model.ContributorModel
	if err := ctl.DB.First(&m, "contributor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Contributor not found")
		}
		return helper.InfraError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "missing multipart field \"file\"")
	}

	rel, err := helper.SavePhoto(configs.PublicDir, "uploads/contributors", fh)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}

	old := m.ContributorPhotoPath
	m.ContributorPhotoPath = &rel
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	if old != nil {
		_ = helper.RemovePhoto(configs.PublicDir, *old)
	}
	return helper.Success(c, "Photo stored", dto.FromModel(&m))
}

// ========== Delete ==========
func (ctl *ContributorController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageContributors {
		return helper.Forbidden(c, "Missing capability: manage contributors")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Query("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "id query param invalid")
	}

	var launches int64
	if err := ctl.DB.Table("launches").Where("launch_contributor_id = ?", id).Count(&launches).Error; err != nil {
		return helper.InfraError(c, err)
	}
	if launches > 0 {
		return helper.DomainError(c, "contributor has dependent launches")
	}

	if err := ctl.DB.Delete(&model.ContributorModel{}, "contributor_id = ?", id).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Contributor deleted", nil)
}
