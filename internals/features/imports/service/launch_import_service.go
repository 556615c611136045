// file: internals/features/imports/service/launch_import_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	contributorModel "tesouraria_backend/internals/features/church/contributor/model"
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
	launchService "tesouraria_backend/internals/features/finance/launch/service"
	"tesouraria_backend/internals/features/imports/pipeline"
	"tesouraria_backend/internals/helpers/timex"
)

/* =========================
   Column inference
   ========================= */

// launchColumns holds the inferred position per field; -1 means the header
// gave no hint and the fixed-order fallback position applies.
type launchColumns struct {
	date        int
	value       int
	subject     int
	description int
	document    int
}

// fixed order fallback: data, valor, nome, descrição, documento
var launchColumnFallback = launchColumns{date: 0, value: 1, subject: 2, description: 3, document: 4}

// inferLaunchColumns maps header tokens by fuzzy name match. Any header
// containing "data" is the date, "valor" the value, "contribuinte" or
// "nome" the subject, "descri" the description and "recibo"/"tal"/"nr"
// the document number. Fields the header never names keep their fixed
// fallback position.
func inferLaunchColumns(header []string) launchColumns {
	cols := launchColumns{date: -1, value: -1, subject: -1, description: -1, document: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(h, "data"):
			cols.date = i
		case strings.Contains(h, "valor"):
			cols.value = i
		case strings.Contains(h, "contribuinte"), strings.Contains(h, "nome"):
			cols.subject = i
		case strings.Contains(h, "descri"):
			cols.description = i
		case strings.Contains(h, "recibo"), strings.Contains(h, "tal"), strings.Contains(h, "nr"):
			cols.document = i
		}
	}
	if cols.date < 0 {
		cols.date = launchColumnFallback.date
	}
	if cols.value < 0 {
		cols.value = launchColumnFallback.value
	}
	if cols.subject < 0 {
		cols.subject = launchColumnFallback.subject
	}
	if cols.description < 0 {
		cols.description = launchColumnFallback.description
	}
	if cols.document < 0 {
		cols.document = launchColumnFallback.document
	}
	return cols
}

// minColumns is the row-width floor. Only date and value are mandatory,
// so only their positions set the floor; subject, description and
// document may sit past the row's end and read as empty via field().
func (c launchColumns) minColumns() int {
	m := c.date
	if c.value > m {
		m = c.value
	}
	return m + 1
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}

/* =========================
   Importer
   ========================= */

// ImportLaunches loads one file of launches for a single congregation and
// type. A free-text subject is resolved to a registered contributor by
// case-insensitive exact name match within the congregation; no match
// keeps the free text.
func (s *ImportService) ImportLaunches(raw []byte, congregationID uuid.UUID, launchType constants.LaunchType, classificationID *uuid.UUID) pipeline.Result {
	cols := inferLaunchColumns(pipeline.Header(raw))
	now := time.Now()

	return pipeline.Run(raw, cols.minColumns(), func(fields []string) (pipeline.Outcome, error) {
		day, err := timex.ParseCalendarDate(field(fields, cols.date))
		if err != nil {
			return 0, errors.New("data inválida: " + field(fields, cols.date))
		}

		rawValue := strings.ReplaceAll(field(fields, cols.value), ",", ".")
		value, err := decimal.NewFromString(rawValue)
		if err != nil {
			return 0, errors.New("valor inválido: " + field(fields, cols.value))
		}

		m := &launchModel.LaunchModel{
			LaunchCongregationID: congregationID,
			LaunchType:           launchType,
			LaunchStatus:         constants.LaunchStatusNormal,
			LaunchDate:           day,
			LaunchValue:          value,
			LaunchCreatedBy:      constants.CreatedByImport,
		}
		m.LaunchClassificationID = classificationID
		if d := field(fields, cols.description); d != "" {
			m.LaunchDescription = &d
		}
		if doc := field(fields, cols.document); doc != "" {
			m.LaunchTalonNumber = &doc
		}

		if subject := field(fields, cols.subject); subject != "" {
			if launchType == constants.LaunchTypeSaida {
				// expense rows name a supplier; no contributor lookup
				m.SetSupplier(launchModel.FreeTextSubject(subject))
			} else {
				m.SetContributor(s.resolveContributor(congregationID, subject))
			}
		}

		if err := launchService.ValidateNew(m, now); err != nil {
			return 0, err
		}
		if err := s.DB.Create(m).Error; err != nil {
			return 0, err
		}
		return pipeline.OutcomeCreated, nil
	})
}

func (s *ImportService) resolveContributor(congregationID uuid.UUID, name string) launchModel.SubjectRef {
	var contrib contributorModel.ContributorModel
	err := s.DB.
		Where("contributor_congregation_id = ?", congregationID).
		Where("LOWER(contributor_name) = LOWER(?)", name).
		First(&contrib).Error
	if err != nil {
		// lookup failure degrades to free text, same as no match
		return launchModel.FreeTextSubject(name)
	}
	return launchModel.RegisteredSubject(contrib.ContributorID)
}
