// file: internals/features/finance/export/controller/export_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
	classificationModel "tesouraria_backend/internals/features/church/classification/model"
	congregationModel "tesouraria_backend/internals/features/church/congregation/model"
	contributorModel "tesouraria_backend/internals/features/church/contributor/model"
	supplierModel "tesouraria_backend/internals/features/church/supplier/model"
	exportService "tesouraria_backend/internals/features/finance/export/service"
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
	launchService "tesouraria_backend/internals/features/finance/launch/service"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ========== ExportLaunches ==========
// GET /exports/launches?date_from&date_to&congregation_ids&types&statuses
// Streams an xlsx attachment; as a side effect every included launch moves
// to EXPORTED. This handler is the only writer of that status.
func (ctl *ExportController) ExportLaunches(c *fiber.Ctx) error {
	caps := helperAuth.GetCapabilities(c)
	if !caps.CanExport {
		return helper.Forbidden(c, "Missing capability: export")
	}

	q := ctl.DB.Model(&launchModel.LaunchModel{})

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

	congIDs, err := parseUUIDList(c.Query("congregation_ids"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "congregation_ids invalid")
	}
	if len(congIDs) > 0 {
		for _, id := range congIDs {
			if !helperAuth.MayOperateOn(c, id) {
				return helper.Forbidden(c, "Congregation outside your scope")
			}
		}
		q = q.Scopes(launchModel.ScopeByCongregations(congIDs))
	} else if !caps.CanViewAllCongregations {
		scope := helperAuth.GetCongregationIDs(c)
		if len(scope) == 0 {
			return helper.DomainError(c, "no congregations in scope")
		}
		q = q.Scopes(launchModel.ScopeByCongregations(scope))
	}

	if types := splitList(c.Query("types")); len(types) > 0 {
		for _, t := range types {
			if !constants.LaunchType(t).Valid() {
				return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "types invalid")
			}
		}
		q = q.Where("launch_type IN ?", types)
	}

	// default selection: whatever is still exportable
	statuses := splitList(c.Query("statuses"))
	if len(statuses) == 0 {
		statuses = []string{
			string(constants.LaunchStatusNormal),
			string(constants.LaunchStatusApproved),
		}
	}
	for _, s := range statuses {
		status := constants.LaunchStatus(s)
		if !status.Valid() {
			return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, "statuses invalid")
		}
		if status == constants.LaunchStatusCanceled || status == constants.LaunchStatusExported {
			return helper.DomainError(c, "only NORMAL and APPROVED launches can be exported")
		}
	}
	q = q.Where("launch_status IN ?", statuses)

	var launches []launchModel.LaunchModel
	if err := q.Order("launch_date ASC, launch_created_at ASC").Find(&launches).Error; err != nil {
		return helper.InfraError(c, err)
	}
	// zero matches still yield a headers-only workbook, so a re-export of
	// an already exported period completes with an empty file
	rows, err := ctl.resolveRows(launches)
	if err != nil {
		return helper.InfraError(c, err)
	}

	buf, err := exportService.BuildWorkbook(rows)
	if err != nil {
		return helper.InfraError(c, err)
	}

	// workbook written; flip the status in one transaction
	ids := make([]uuid.UUID, 0, len(launches))
	for i := range launches {
		if err := launchService.MarkExported(&launches[i]); err != nil {
			return helper.DomainError(c, err.Error())
		}
		ids = append(ids, launches[i].LaunchID)
	}
	if len(ids) > 0 {
		if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
			return tx.Model(&launchModel.LaunchModel{}).
				Where("launch_id IN ?", ids).
				Update("launch_status", constants.LaunchStatusExported).Error
		}); err != nil {
			return helper.InfraError(c, err)
		}
	}

	filename := exportService.Filename(time.Now())
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// resolveRows preloads the related records in bulk and joins them in
// memory; missing relations leave their cells empty.
func (ctl *ExportController) resolveRows(launches []launchModel.LaunchModel) ([]*exportService.RowSource, error) {
	congSet := map[uuid.UUID]struct{}{}
	contribSet := map[uuid.UUID]struct{}{}
	supplierSet := map[uuid.UUID]struct{}{}
	classSet := map[uuid.UUID]struct{}{}
	for i := range launches {
		l := &launches[i]
		congSet[l.LaunchCongregationID] = struct{}{}
		if l.LaunchContributorID != nil {
			contribSet[*l.LaunchContributorID] = struct{}{}
		}
		if l.LaunchSupplierID != nil {
			supplierSet[*l.LaunchSupplierID] = struct{}{}
		}
		if l.LaunchClassificationID != nil {
			classSet[*l.LaunchClassificationID] = struct{}{}
		}
	}

	congs := map[uuid.UUID]congregationModel.CongregationModel{}
	if len(congSet) > 0 {
		var rows []congregationModel.CongregationModel
		if err := ctl.DB.Where("congregation_id IN ?", keys(congSet)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			congs[r.CongregationID] = r
		}
	}

	contribs := map[uuid.UUID]contributorModel.ContributorModel{}
	if len(contribSet) > 0 {
		var rows []contributorModel.ContributorModel
		if err := ctl.DB.Where("contributor_id IN ?", keys(contribSet)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			contribs[r.ContributorID] = r
		}
	}

	suppliers := map[uuid.UUID]supplierModel.SupplierModel{}
	if len(supplierSet) > 0 {
		var rows []supplierModel.SupplierModel
		if err := ctl.DB.Where("supplier_id IN ?", keys(supplierSet)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			suppliers[r.SupplierID] = r
		}
	}

	classes := map[uuid.UUID]classificationModel.ClassificationModel{}
	if len(classSet) > 0 {
		var rows []classificationModel.ClassificationModel
		if err := ctl.DB.Where("classification_id IN ?", keys(classSet)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			classes[r.ClassificationID] = r
		}
	}

	out := make([]*exportService.RowSource, 0, len(launches))
	for i := range launches {
		l := &launches[i]
		src := &exportService.RowSource{
			Launch:       *l,
			Congregation: congs[l.LaunchCongregationID],
		}

		switch {
		case l.LaunchContributorID != nil:
			if contrib, ok := contribs[*l.LaunchContributorID]; ok {
				src.SubjectName = contrib.ContributorName
				if contrib.ContributorCPF != nil {
					src.SubjectTax = *contrib.ContributorCPF
				}
			}
		case l.LaunchContributorName != nil:
			src.SubjectName = *l.LaunchContributorName
		case l.LaunchSupplierID != nil:
			if sup, ok := suppliers[*l.LaunchSupplierID]; ok {
				src.SubjectName = sup.SupplierName
				if sup.SupplierTaxID != nil {
					src.SubjectTax = *sup.SupplierTaxID
				}
			}
		case l.LaunchSupplierName != nil:
			src.SubjectName = *l.LaunchSupplierName
		}

		if l.LaunchClassificationID != nil {
			if cls, ok := classes[*l.LaunchClassificationID]; ok {
				src.ClassificationCode = cls.ClassificationCode
				src.ClassificationDescription = cls.ClassificationDescription
			}
		}
		out = append(out, src)
	}
	return out, nil
}

func keys(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	parts := splitList(raw)
	out := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
