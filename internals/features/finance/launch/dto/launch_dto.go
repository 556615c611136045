// file: internals/features/finance/launch/dto/launch_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	"tesouraria_backend/internals/features/finance/launch/model"
	"tesouraria_backend/internals/helpers/timex"
)

/* =========================
   Requests
   ========================= */

type CreateLaunchRequest struct {
	LaunchCongregationID uuid.UUID `json:"launch_congregation_id" validate:"required"`
	LaunchType           string    `json:"launch_type" validate:"required"`
	LaunchDate           string    `json:"launch_date" validate:"required"`
	LaunchValue          string    `json:"launch_value" validate:"required"`

	LaunchDescription *string `json:"launch_description,omitempty"`
	LaunchTalonNumber *string `json:"launch_talon_number,omitempty" validate:"omitempty,max=30"`

	LaunchContributorID   *uuid.UUID `json:"launch_contributor_id,omitempty"`
	LaunchContributorName *string    `json:"launch_contributor_name,omitempty" validate:"omitempty,max=120"`
	LaunchSupplierID      *uuid.UUID `json:"launch_supplier_id,omitempty"`
	LaunchSupplierName    *string    `json:"launch_supplier_name,omitempty" validate:"omitempty,max=120"`

	LaunchClassificationID *uuid.UUID `json:"launch_classification_id,omitempty"`
}

// ToModel parses the calendar date and decimal value and builds the row.
// Domain validation (value sign, type requirements) happens in the service.
func (r *CreateLaunchRequest) ToModel(createdBy string) (*model.LaunchModel, error) {
	day, err := timex.ParseCalendarDate(r.LaunchDate)
	if err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(r.LaunchValue)
	if err != nil {
		return nil, err
	}

	m := &model.LaunchModel{
		LaunchCongregationID:   r.LaunchCongregationID,
		LaunchType:             constants.LaunchType(r.LaunchType),
		LaunchStatus:           constants.LaunchStatusNormal,
		LaunchDate:             day,
		LaunchValue:            value,
		LaunchDescription:      r.LaunchDescription,
		LaunchTalonNumber:      r.LaunchTalonNumber,
		LaunchClassificationID: r.LaunchClassificationID,
		LaunchCreatedBy:        createdBy,
	}
	m.SetContributor(subjectRef(r.LaunchContributorID, r.LaunchContributorName))
	m.SetSupplier(subjectRef(r.LaunchSupplierID, r.LaunchSupplierName))
	return m, nil
}

type UpdateLaunchRequest struct {
	LaunchDate  *string `json:"launch_date,omitempty"`
	LaunchValue *string `json:"launch_value,omitempty"`

	LaunchDescription *string `json:"launch_description,omitempty"`
	LaunchTalonNumber *string `json:"launch_talon_number,omitempty" validate:"omitempty,max=30"`

	LaunchContributorID   *uuid.UUID `json:"launch_contributor_id,omitempty"`
	LaunchContributorName *string    `json:"launch_contributor_name,omitempty" validate:"omitempty,max=120"`
	LaunchSupplierID      *uuid.UUID `json:"launch_supplier_id,omitempty"`
	LaunchSupplierName    *string    `json:"launch_supplier_name,omitempty" validate:"omitempty,max=120"`

	LaunchClassificationID *uuid.UUID `json:"launch_classification_id,omitempty"`
}

func (r *UpdateLaunchRequest) ApplyTo(m *model.LaunchModel) error {
	if r.LaunchDate != nil {
		day, err := timex.ParseCalendarDate(*r.LaunchDate)
		if err != nil {
			return err
		}
		m.LaunchDate = day
	}
	if r.LaunchValue != nil {
		value, err := decimal.NewFromString(*r.LaunchValue)
		if err != nil {
			return err
		}
		m.LaunchValue = value
	}
	if r.LaunchDescription != nil {
		m.LaunchDescription = r.LaunchDescription
	}
	if r.LaunchTalonNumber != nil {
		m.LaunchTalonNumber = r.LaunchTalonNumber
	}
	if r.LaunchContributorID != nil || r.LaunchContributorName != nil {
		m.SetContributor(subjectRef(r.LaunchContributorID, r.LaunchContributorName))
	}
	if r.LaunchSupplierID != nil || r.LaunchSupplierName != nil {
		m.SetSupplier(subjectRef(r.LaunchSupplierID, r.LaunchSupplierName))
	}
	if r.LaunchClassificationID != nil {
		m.LaunchClassificationID = r.LaunchClassificationID
	}
	return nil
}

type UpdateLaunchStatusRequest struct {
	LaunchStatus string `json:"launch_status" validate:"required"`
}

func subjectRef(id *uuid.UUID, name *string) model.SubjectRef {
	if id != nil {
		return model.RegisteredSubject(*id)
	}
	if name != nil && *name != "" {
		return model.FreeTextSubject(*name)
	}
	return model.SubjectRef{}
}

/* =========================
   Responses
   ========================= */

type LaunchResponse struct {
	LaunchID             uuid.UUID `json:"launch_id"`
	LaunchCongregationID uuid.UUID `json:"launch_congregation_id"`
	LaunchType           string    `json:"launch_type"`
	LaunchStatus         string    `json:"launch_status"`
	LaunchDate           string    `json:"launch_date"`
	LaunchValue          string    `json:"launch_value"`

	LaunchDescription *string `json:"launch_description,omitempty"`
	LaunchTalonNumber *string `json:"launch_talon_number,omitempty"`

	LaunchContributorID   *uuid.UUID `json:"launch_contributor_id,omitempty"`
	LaunchContributorName *string    `json:"launch_contributor_name,omitempty"`
	LaunchSupplierID      *uuid.UUID `json:"launch_supplier_id,omitempty"`
	LaunchSupplierName    *string    `json:"launch_supplier_name,omitempty"`

	LaunchClassificationID *uuid.UUID `json:"launch_classification_id,omitempty"`
	LaunchSummaryID        *uuid.UUID `json:"launch_summary_id,omitempty"`

	LaunchCreatedBy string `json:"launch_created_by"`

	LaunchTreasuryApprovedBy   *string    `json:"launch_treasury_approved_by,omitempty"`
	LaunchTreasuryApprovedAt   *time.Time `json:"launch_treasury_approved_at,omitempty"`
	LaunchAccountantApprovedBy *string    `json:"launch_accountant_approved_by,omitempty"`
	LaunchAccountantApprovedAt *time.Time `json:"launch_accountant_approved_at,omitempty"`
	LaunchDirectorApprovedBy   *string    `json:"launch_director_approved_by,omitempty"`
	LaunchDirectorApprovedAt   *time.Time `json:"launch_director_approved_at,omitempty"`

	LaunchCanceledBy *string    `json:"launch_canceled_by,omitempty"`
	LaunchCanceledAt *time.Time `json:"launch_canceled_at,omitempty"`

	LaunchCreatedAt time.Time `json:"launch_created_at"`
	LaunchUpdatedAt time.Time `json:"launch_updated_at"`
}

func FromModel(m *model.LaunchModel) *LaunchResponse {
	return &LaunchResponse{
		LaunchID:                   m.LaunchID,
		LaunchCongregationID:       m.LaunchCongregationID,
		LaunchType:                 string(m.LaunchType),
		LaunchStatus:               string(m.LaunchStatus),
		LaunchDate:                 m.LaunchDate.In(timex.Location()).Format("2006-01-02"),
		LaunchValue:                m.LaunchValue.StringFixed(2),
		LaunchDescription:          m.LaunchDescription,
		LaunchTalonNumber:          m.LaunchTalonNumber,
		LaunchContributorID:        m.LaunchContributorID,
		LaunchContributorName:      m.LaunchContributorName,
		LaunchSupplierID:           m.LaunchSupplierID,
		LaunchSupplierName:         m.LaunchSupplierName,
		LaunchClassificationID:     m.LaunchClassificationID,
		LaunchSummaryID:            m.LaunchSummaryID,
		LaunchCreatedBy:            m.LaunchCreatedBy,
		LaunchTreasuryApprovedBy:   m.LaunchTreasuryApprovedBy,
		LaunchTreasuryApprovedAt:   m.LaunchTreasuryApprovedAt,
		LaunchAccountantApprovedBy: m.LaunchAccountantApprovedBy,
		LaunchAccountantApprovedAt: m.LaunchAccountantApprovedAt,
		LaunchDirectorApprovedBy:   m.LaunchDirectorApprovedBy,
		LaunchDirectorApprovedAt:   m.LaunchDirectorApprovedAt,
		LaunchCanceledBy:           m.LaunchCanceledBy,
		LaunchCanceledAt:           m.LaunchCanceledAt,
		LaunchCreatedAt:            m.LaunchCreatedAt,
		LaunchUpdatedAt:            m.LaunchUpdatedAt,
	}
}

func FromModels(ms []model.LaunchModel) []*LaunchResponse {
	out := make([]*LaunchResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
