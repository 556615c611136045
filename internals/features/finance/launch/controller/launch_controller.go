// file: internals/features/finance/launch/controller/launch_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
	dto "tesouraria_backend/internals/features/finance/launch/dto"
	model "tesouraria_backend/internals/features/finance/launch/model"
	service "tesouraria_backend/internals/features/finance/launch/service"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

type LaunchController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLaunchController(db *gorm.DB) *LaunchController {
	return &LaunchController{DB: db, Validator: validator.New()}
}

// ========== List ==========
// Filters: congregation_id, type, status, date_from, date_to. Results are
// always clipped to the session's congregation scope.
func (ctl *LaunchController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "launch_date", "desc", helper.AdminOpts)
	q := ctl.DB.Model(&model.LaunchModel{})

	caps := helperAuth.GetCapabilities(c)
	if cong := strings.TrimSpace(c.Query("congregation_id")); cong != "" {
		id, err := uuid.Parse(cong)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_id invalid")
		}
		if !helperAuth.MayOperateOn(c, id) {
			return helper.Forbidden(c, "Congregation outside your scope")
		}
		q = q.Where("launch_congregation_id = ?", id)
	} else if !caps.CanViewAllCongregations {
		scope := helperAuth.GetCongregationIDs(c)
		if len(scope) == 0 {
			return helper.Success(c, "OK", fiber.Map{
				"items": []*dto.LaunchResponse{},
				"meta":  helper.BuildMeta(0, p),
			})
		}
		q = q.Scopes(model.ScopeByCongregations(scope))
	}

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		if !constants.LaunchType(t).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "type invalid")
		}
		q = q.Where("launch_type = ?", t)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !constants.LaunchStatus(s).Valid() {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "status invalid")
		}
		q = q.Where("launch_status = ?", s)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		day, err := timex.ParseCalendarDate(from)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "date_from invalid")
		}
		q = q.Where("launch_date >= ?", day)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		day, err := timex.ParseCalendarDate(to)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "date_to invalid")
		}
		q = q.Where("launch_date <= ?", day)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"launch_date":  "launch_date",
		"launch_value": "launch_value",
		"launch_type":  "launch_type",
	}, "launch_date")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.LaunchModel
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

// ========== GetByID ==========
func (ctl *LaunchController) GetByID(c *fiber.Ctx) error {
	m, fail := ctl.load(c, c.Params("id"))
	if fail != nil {
		return fail(c)
	}
	return helper.Success(c, "OK", dto.FromModel(m))
}

// ========== Create ==========
func (ctl *LaunchController) Create(c *fiber.Ctx) error {
	var req dto.CreateLaunchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	caps := helperAuth.GetCapabilities(c)
	if !constants.LaunchType(req.LaunchType).Valid() {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "launch_type invalid")
	}
	if !caps.CanLaunch(constants.LaunchType(req.LaunchType)) {
		return helper.Forbidden(c, "Missing capability: launch "+req.LaunchType)
	}
	if !helperAuth.MayOperateOn(c, req.LaunchCongregationID) {
		return helper.Forbidden(c, "Congregation outside your scope")
	}

	m, err := req.ToModel(helperAuth.GetUserName(c))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := service.ValidateNew(m, time.Now()); err != nil {
		return helper.DomainError(c, err.Error())
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Launch created", dto.FromModel(m))
}

// ========== Update ==========
// Only NORMAL launches not attached to a summary are editable.
func (ctl *LaunchController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanEditLaunch {
		return helper.Forbidden(c, "Missing capability: edit launches")
	}

	m, fail := ctl.load(c, c.Params("id"))
	if fail != nil {
		return fail(c)
	}
	if err := service.EnsureEditable(m); err != nil {
		return helper.DomainError(c, err.Error())
	}

	var req dto.UpdateLaunchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.ApplyTo(m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := service.ValidateNew(m, time.Now()); err != nil {
		return helper.DomainError(c, err.Error())
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Launch updated", dto.FromModel(m))
}

// ========== UpdateStatus ==========
// PUT /:id/status — NORMAL⇄APPROVED and NORMAL→CANCELED. EXPORTED is
// rejected here; only the export routine sets it.
func (ctl *LaunchController) UpdateStatus(c *fiber.Ctx) error {
	m, fail := ctl.load(c, c.Params("id"))
	if fail != nil {
		return fail(c)
	}

	var req dto.UpdateLaunchStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	caps := helperAuth.GetCapabilities(c)
	err := service.Transition(m, constants.LaunchStatus(req.LaunchStatus), caps, helperAuth.GetUserName(c), time.Now())
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNotApprover),
		errors.Is(err, service.ErrCannotUnapprove),
		errors.Is(err, service.ErrCannotCancel):
		return helper.Forbidden(c, err.Error())
	default:
		return helper.DomainError(c, err.Error())
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Launch status updated", dto.FromModel(m))
}

// ========== Delete ==========
func (ctl *LaunchController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanDeleteLaunch {
		return helper.Forbidden(c, "Missing capability: delete launches")
	}

	m, fail := ctl.load(c, c.Query("id"))
	if fail != nil {
		return fail(c)
	}
	if err := service.EnsureDeletable(m); err != nil {
		return helper.DomainError(c, err.Error())
	}

	if err := ctl.DB.Delete(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Launch deleted", nil)
}

// load fetches the row for rawID and enforces the congregation scope.
func (ctl *LaunchController) load(c *fiber.Ctx, rawID string) (*model.LaunchModel, func(*fiber.Ctx) error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "launch_id invalid")
		}
	}

	var m model.LaunchModel
	if err := ctl.DB.First(&m, "launch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, func(c *fiber.Ctx) error {
				return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Launch not found")
			}
		}
		wrapped := err
		return nil, func(c *fiber.Ctx) error { return helper.InfraError(c, wrapped) }
	}
	if !helperAuth.MayOperateOn(c, m.LaunchCongregationID) {
		return nil, func(c *fiber.Ctx) error {
			return helper.Forbidden(c, "Congregation outside your scope")
		}
	}
	return &m, nil
}
