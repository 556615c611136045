// file: internals/features/finance/summary/dto/summary_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/features/finance/summary/model"
	"tesouraria_backend/internals/helpers/timex"
)

/* =========================
   Requests
   ========================= */

type CreateSummaryRequest struct {
	SummaryCongregationID uuid.UUID `json:"summary_congregation_id" validate:"required"`
	SummaryDateFrom       string    `json:"summary_date_from" validate:"required"`
	SummaryDateTo         string    `json:"summary_date_to" validate:"required"`

	SummaryDepositValue *string `json:"summary_deposit_value,omitempty"`
	SummaryCashValue    *string `json:"summary_cash_value,omitempty"`
	SummaryTotalValue   *string `json:"summary_total_value,omitempty"`
}

type UpdateSummaryRequest struct {
	SummaryDepositValue *string `json:"summary_deposit_value,omitempty"`
	SummaryCashValue    *string `json:"summary_cash_value,omitempty"`
	SummaryTotalValue   *string `json:"summary_total_value,omitempty"`
}

type ApproveSummaryRequest struct {
	Slot string `json:"slot" validate:"required,oneof=treasury accountant director"`
}

// ParseManualFields converts the optional reconciliation strings; a nil
// pointer leaves the target untouched.
func ParseManualFields(deposit, cash, total *string, s *model.SummaryModel) error {
	set := func(src *string, dst **decimal.Decimal) error {
		if src == nil {
			return nil
		}
		v, err := decimal.NewFromString(*src)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	if err := set(deposit, &s.SummaryDepositValue); err != nil {
		return err
	}
	if err := set(cash, &s.SummaryCashValue); err != nil {
		return err
	}
	return set(total, &s.SummaryTotalValue)
}

/* =========================
   Responses
   ========================= */

type SummaryResponse struct {
	SummaryID             uuid.UUID `json:"summary_id"`
	SummaryCongregationID uuid.UUID `json:"summary_congregation_id"`
	SummaryDateFrom       string    `json:"summary_date_from"`
	SummaryDateTo         string    `json:"summary_date_to"`

	SummaryBreakdown model.Breakdown `json:"summary_breakdown"`

	SummaryEntryCount int    `json:"summary_entry_count"`
	SummaryEntryTotal string `json:"summary_entry_total"`
	SummaryExitCount  int    `json:"summary_exit_count"`
	SummaryExitTotal  string `json:"summary_exit_total"`

	SummaryDepositValue *string `json:"summary_deposit_value,omitempty"`
	SummaryCashValue    *string `json:"summary_cash_value,omitempty"`
	SummaryTotalValue   *string `json:"summary_total_value,omitempty"`

	SummaryTreasuryApproved     bool       `json:"summary_treasury_approved"`
	SummaryTreasuryApprovedBy   *string    `json:"summary_treasury_approved_by,omitempty"`
	SummaryTreasuryApprovedAt   *time.Time `json:"summary_treasury_approved_at,omitempty"`
	SummaryAccountantApproved   bool       `json:"summary_accountant_approved"`
	SummaryAccountantApprovedBy *string    `json:"summary_accountant_approved_by,omitempty"`
	SummaryAccountantApprovedAt *time.Time `json:"summary_accountant_approved_at,omitempty"`
	SummaryDirectorApproved     bool       `json:"summary_director_approved"`
	SummaryDirectorApprovedBy   *string    `json:"summary_director_approved_by,omitempty"`
	SummaryDirectorApprovedAt   *time.Time `json:"summary_director_approved_at,omitempty"`

	SummaryCreatedBy string    `json:"summary_created_by"`
	SummaryCreatedAt time.Time `json:"summary_created_at"`
	SummaryUpdatedAt time.Time `json:"summary_updated_at"`
}

func FromModel(m *model.SummaryModel) *SummaryResponse {
	breakdown, err := m.GetBreakdown()
	if err != nil {
		breakdown = model.Breakdown{}
	}

	fmtDec := func(p *decimal.Decimal) *string {
		if p == nil {
			return nil
		}
		s := p.StringFixed(2)
		return &s
	}

	return &SummaryResponse{
		SummaryID:                   m.SummaryID,
		SummaryCongregationID:       m.SummaryCongregationID,
		SummaryDateFrom:             m.SummaryDateFrom.In(timex.Location()).Format("2006-01-02"),
		SummaryDateTo:               m.SummaryDateTo.In(timex.Location()).Format("2006-01-02"),
		SummaryBreakdown:            breakdown,
		SummaryEntryCount:           m.SummaryEntryCount,
		SummaryEntryTotal:           m.SummaryEntryTotal.StringFixed(2),
		SummaryExitCount:            m.SummaryExitCount,
		SummaryExitTotal:            m.SummaryExitTotal.StringFixed(2),
		SummaryDepositValue:         fmtDec(m.SummaryDepositValue),
		SummaryCashValue:            fmtDec(m.SummaryCashValue),
		SummaryTotalValue:           fmtDec(m.SummaryTotalValue),
		SummaryTreasuryApproved:     m.SummaryTreasuryApproved,
		SummaryTreasuryApprovedBy:   m.SummaryTreasuryApprovedBy,
		SummaryTreasuryApprovedAt:   m.SummaryTreasuryApprovedAt,
		SummaryAccountantApproved:   m.SummaryAccountantApproved,
		SummaryAccountantApprovedBy: m.SummaryAccountantApprovedBy,
		SummaryAccountantApprovedAt: m.SummaryAccountantApprovedAt,
		SummaryDirectorApproved:     m.SummaryDirectorApproved,
		SummaryDirectorApprovedBy:   m.SummaryDirectorApprovedBy,
		SummaryDirectorApprovedAt:   m.SummaryDirectorApprovedAt,
		SummaryCreatedBy:            m.SummaryCreatedBy,
		SummaryCreatedAt:            m.SummaryCreatedAt,
		SummaryUpdatedAt:            m.SummaryUpdatedAt,
	}
}

func FromModels(ms []model.SummaryModel) []*SummaryResponse {
	out := make([]*SummaryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
