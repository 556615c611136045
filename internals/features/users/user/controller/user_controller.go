// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "tesouraria_backend/internals/features/users/user/dto"
	model "tesouraria_backend/internals/features/users/user/model"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *UserController) List(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}

	p := helper.ParseFiber(c, "user_name", "asc", helper.AdminOpts)
	q := ctl.DB.Model(&model.UserModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("user_name ILIKE ? OR user_full_name ILIKE ?", "%"+name+"%", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"user_name":       "user_name",
		"user_full_name":  "user_full_name",
		"user_created_at": "user_created_at",
	}, "user_name")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.UserModel
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
func (ctl *UserController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := req.ToModel(helperAuth.GetUserName(c))
	if err != nil {
		return helper.InfraError(c, err)
	}
	if err := ctl.DB.Create(u).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.FromModel(u))
}

// ========== Update ==========
func (ctl *UserController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "user_id invalid")
	}

	var u model.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "User not found")
		}
		return helper.InfraError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(&u); err != nil {
		return helper.InfraError(c, err)
	}
	if err := ctl.DB.Save(&u).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "User updated", dto.FromModel(&u))
}

// ========== Congregation scope ==========
func (ctl *UserController) AssignCongregation(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "user_id invalid")
	}

	var req dto.AssignCongregationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	uc := model.UserCongregationModel{
		UserCongregationUserID:         userID,
		UserCongregationCongregationID: req.CongregationID,
	}
	if err := ctl.DB.Create(&uc).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Congregation assigned", uc)
}

func (ctl *UserController) UnassignCongregation(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanManageUsers {
		return helper.Forbidden(c, "Missing capability: manage users")
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "user_id invalid")
	}
	congID, err := uuid.Parse(strings.TrimSpace(c.Query("congregation_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_id invalid")
	}

	if err := ctl.DB.Delete(&model.UserCongregationModel{},
		"user_congregation_user_id = ? AND user_congregation_congregation_id = ?", userID, congID).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Congregation unassigned", nil)
}
