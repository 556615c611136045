package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tesouraria_backend/internals/features/church/supplier/dto"
	model "tesouraria_backend/internals/features/church/supplier/model"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type SupplierController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db, Validator: validator.New()}
}

func (ctl *SupplierController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "supplier_name", "asc", helper.DefaultOpts)
	q := ctl.DB.Model(&model.SupplierModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("supplier_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"supplier_name": "supplier_name",
		"supplier_code": "supplier_code",
	}, "supplier_name")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.SupplierModel
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

func (ctl *SupplierController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageSuppliers {
		return helper.Forbidden(c, "Missing capability: manage suppliers")
	}

	var req dto.CreateSupplierRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Supplier created", dto.FromModel(m))
}

func (ctl *SupplierController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageSuppliers {
		return helper.Forbidden(c, "Missing capability: manage suppliers")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "supplier_id invalid")
	}

	var m model.SupplierModel
	if err := ctl.DB.First(&m, "supplier_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Supplier not found")
		}
		return helper.InfraError(c, err)
	}

	var req dto.UpdateSupplierRequest
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
	return helper.Success(c, "Supplier updated", dto.FromModel(&m))
}

func (ctl *SupplierController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageSuppliers {
		return helper.Forbidden(c, "Missing capability: manage suppliers")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Query("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "id query param invalid")
	}

	var launches int64
	if err := ctl.DB.Table("launches").Where("launch_supplier_id = ?", id).Count(&launches).Error; err != nil {
		return helper.InfraError(c, err)
	}
	if launches > 0 {
		return helper.DomainError(c, "supplier has dependent launches")
	}

	if err := ctl.DB.Delete(&model.SupplierModel{}, "supplier_id = ?", id).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Supplier deleted", nil)
}
