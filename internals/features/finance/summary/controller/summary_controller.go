// file: internals/features/finance/summary/controller/summary_controller.go
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
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
	dto "tesouraria_backend/internals/features/finance/summary/dto"
	model "tesouraria_backend/internals/features/finance/summary/model"
	service "tesouraria_backend/internals/features/finance/summary/service"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

type SummaryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{DB: db, Validator: validator.New()}
}

// ========== List ==========
func (ctl *SummaryController) List(c *fiber.Ctx) error {
	caps := helperAuth.GetCapabilities(c)
	if !caps.CanViewSummaries {
		return helper.Forbidden(c, "Missing capability: view summaries")
	}

	p := helper.ParseFiber(c, "summary_date_from", "desc", helper.AdminOpts)
	q := ctl.DB.Model(&model.SummaryModel{})

	if cong := strings.TrimSpace(c.Query("congregation_id")); cong != "" {
		id, err := uuid.Parse(cong)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_id invalid")
		}
		if !helperAuth.MayOperateOn(c, id) {
			return helper.Forbidden(c, "Congregation outside your scope")
		}
		q = q.Where("summary_congregation_id = ?", id)
	} else if !caps.CanViewAllCongregations {
		scope := helperAuth.GetCongregationIDs(c)
		if len(scope) == 0 {
			return helper.Success(c, "OK", fiber.Map{
				"items": []*dto.SummaryResponse{},
				"meta":  helper.BuildMeta(0, p),
			})
		}
		q = q.Where("summary_congregation_id IN ?", scope)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.InfraError(c, err)
	}

	order, err := p.SafeOrderClause(map[string]string{
		"summary_date_from": "summary_date_from",
	}, "summary_date_from")
	if err != nil {
		return helper.InfraError(c, err)
	}

	var rows []model.SummaryModel
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
func (ctl *SummaryController) GetByID(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanViewSummaries {
		return helper.Forbidden(c, "Missing capability: view summaries")
	}
	m, fail := ctl.load(c)
	if fail != nil {
		return fail(c)
	}
	return helper.Success(c, "OK", dto.FromModel(m))
}

// ========== Create ==========
// Builds the snapshot over the period's non-canceled, unattached launches
// and freezes them under the new summary in one transaction.
func (ctl *SummaryController) Create(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanCreateSummary {
		return helper.Forbidden(c, "Missing capability: create summaries")
	}

	var req dto.CreateSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !helperAuth.MayOperateOn(c, req.SummaryCongregationID) {
		return helper.Forbidden(c, "Congregation outside your scope")
	}

	from, err := timex.ParseCalendarDate(req.SummaryDateFrom)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "summary_date_from invalid")
	}
	to, err := timex.ParseCalendarDate(req.SummaryDateTo)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "summary_date_to invalid")
	}
	if to.Before(from) {
		return helper.DomainError(c, service.ErrInvertedPeriod.Error())
	}

	m := &model.SummaryModel{
		SummaryCongregationID: req.SummaryCongregationID,
		SummaryDateFrom:       from,
		SummaryDateTo:         to,
		SummaryCreatedBy:      helperAuth.GetUserName(c),
	}
	if err := dto.ParseManualFields(req.SummaryDepositValue, req.SummaryCashValue, req.SummaryTotalValue, m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var launches []launchModel.LaunchModel
		if err := tx.
			Scopes(launchModel.ScopeNotCanceled, launchModel.ScopeInRange(from, to)).
			Where("launch_congregation_id = ?", req.SummaryCongregationID).
			Where("launch_summary_id IS NULL").
			Find(&launches).Error; err != nil {
			return err
		}
		if len(launches) == 0 {
			return service.ErrEmptyPeriod
		}

		breakdown, totals := service.Aggregate(launches)
		if err := service.Fill(m, breakdown, totals); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		for i := range launches {
			if err := service.Attach(m, &launches[i]); err != nil {
				return err
			}
		}
		ids := make([]uuid.UUID, 0, len(launches))
		for i := range launches {
			ids = append(ids, launches[i].LaunchID)
		}
		return tx.Model(&launchModel.LaunchModel{}).
			Where("launch_id IN ?", ids).
			Update("launch_summary_id", m.SummaryID).Error
	})
	if txErr != nil {
		if errors.Is(txErr, service.ErrEmptyPeriod) || errors.Is(txErr, service.ErrLaunchAlreadyFrozen) {
			return helper.DomainError(c, txErr.Error())
		}
		return helper.InfraError(c, txErr)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Summary created", dto.FromModel(m))
}

// ========== Update ==========
// Only the manual reconciliation fields change after creation.
func (ctl *SummaryController) Update(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanCreateSummary {
		return helper.Forbidden(c, "Missing capability: create summaries")
	}
	m, fail := ctl.load(c)
	if fail != nil {
		return fail(c)
	}

	var req dto.UpdateSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := dto.ParseManualFields(req.SummaryDepositValue, req.SummaryCashValue, req.SummaryTotalValue, m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.InfraError(c, err)
	}
	return helper.Success(c, "Summary updated", dto.FromModel(m))
}

// ========== Approve ==========
// PUT /:id/approve {slot} — stamps the slot and mirrors actor/timestamp
// onto every attached launch.
func (ctl *SummaryController) Approve(c *fiber.Ctx) error {
	m, fail := ctl.load(c)
	if fail != nil {
		return fail(c)
	}

	var req dto.ApproveSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	slot := service.Slot(req.Slot)
	caps := helperAuth.GetCapabilities(c)
	actor := helperAuth.GetUserName(c)
	now := time.Now()

	if err := service.ApproveSlot(m, slot, caps, actor, now); err != nil {
		if errors.Is(err, service.ErrNotSummaryApprover) {
			return helper.Forbidden(c, err.Error())
		}
		return helper.DomainError(c, err.Error())
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		var launches []launchModel.LaunchModel
		if err := tx.Where("launch_summary_id = ?", m.SummaryID).Find(&launches).Error; err != nil {
			return err
		}
		for i := range launches {
			before := launches[i].LaunchStatus
			service.MirrorApproval(&launches[i], slot, actor, now)
			switch before {
			case constants.LaunchStatusExported, constants.LaunchStatusCanceled:
				continue
			}
			if err := tx.Save(&launches[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.InfraError(c, txErr)
	}

	return helper.Success(c, "Summary slot approved", dto.FromModel(m))
}

// ========== Delete ==========
// Allowed only while no slot is approved; detaches the frozen launches.
func (ctl *SummaryController) Delete(c *fiber.Ctx) error {
	if !helperAuth.GetCapabilities(c).CanCreateSummary {
		return helper.Forbidden(c, "Missing capability: create summaries")
	}
	m, fail := ctl.load(c)
	if fail != nil {
		return fail(c)
	}
	if m.SummaryTreasuryApproved || m.SummaryAccountantApproved || m.SummaryDirectorApproved {
		return helper.DomainError(c, "summary has approvals and cannot be deleted")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&launchModel.LaunchModel{}).
			Where("launch_summary_id = ?", m.SummaryID).
			Update("launch_summary_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if txErr != nil {
		return helper.InfraError(c, txErr)
	}
	return helper.Success(c, "Summary deleted", nil)
}

func (ctl *SummaryController) load(c *fiber.Ctx) (*model.SummaryModel, func(*fiber.Ctx) error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "summary_id invalid")
		}
	}

	var m model.SummaryModel
	if err := ctl.DB.First(&m, "summary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, func(c *fiber.Ctx) error {
				return helper.Error(c, fiber.StatusNotFound, helper.CategoryDomain, "Summary not found")
			}
		}
		wrapped := err
		return nil, func(c *fiber.Ctx) error { return helper.InfraError(c, wrapped) }
	}
	if !helperAuth.MayOperateOn(c, m.SummaryCongregationID) {
		return nil, func(c *fiber.Ctx) error {
			return helper.Forbidden(c, "Congregation outside your scope")
		}
	}
	return &m, nil
}
