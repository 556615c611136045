// file: internals/features/finance/summary/model/summary_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
)

/* =========================
   Breakdown payload (JSONB)
   ========================= */

// CategoryAggregate is one cell of the per-category breakdown.
type CategoryAggregate struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// Breakdown keys aggregates per account category; CARNE_REVIVER launches
// fold into campanha through the same table the export uses.
type Breakdown map[constants.AccountCategory]CategoryAggregate

/* =========================
   Model: summaries
   ========================= */

type SummaryModel struct {
	SummaryID uuid.UUID `json:"summary_id" gorm:"column:summary_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SummaryCongregationID uuid.UUID `json:"summary_congregation_id" gorm:"column:summary_congregation_id;type:uuid;not null;index"`

	// UTC instants of local midnight; a daily summary has from == to
	SummaryDateFrom time.Time `json:"summary_date_from" gorm:"column:summary_date_from;type:timestamptz;not null;index"`
	SummaryDateTo   time.Time `json:"summary_date_to" gorm:"column:summary_date_to;type:timestamptz;not null"`

	SummaryBreakdown datatypes.JSON `json:"summary_breakdown,omitempty" gorm:"column:summary_breakdown;type:jsonb"`

	SummaryEntryCount int             `json:"summary_entry_count" gorm:"column:summary_entry_count;not null;default:0"`
	SummaryEntryTotal decimal.Decimal `json:"summary_entry_total" gorm:"column:summary_entry_total;type:numeric(14,2);not null;default:0"`
	SummaryExitCount  int             `json:"summary_exit_count" gorm:"column:summary_exit_count;not null;default:0"`
	SummaryExitTotal  decimal.Decimal `json:"summary_exit_total" gorm:"column:summary_exit_total;type:numeric(14,2);not null;default:0"`

	// manual reconciliation fields, entered by the treasurer
	SummaryDepositValue *decimal.Decimal `json:"summary_deposit_value,omitempty" gorm:"column:summary_deposit_value;type:numeric(14,2)"`
	SummaryCashValue    *decimal.Decimal `json:"summary_cash_value,omitempty" gorm:"column:summary_cash_value;type:numeric(14,2)"`
	SummaryTotalValue   *decimal.Decimal `json:"summary_total_value,omitempty" gorm:"column:summary_total_value;type:numeric(14,2)"`

	// three independent approval slots
	SummaryTreasuryApproved     bool       `json:"summary_treasury_approved" gorm:"column:summary_treasury_approved;not null;default:false"`
	SummaryTreasuryApprovedBy   *string    `json:"summary_treasury_approved_by,omitempty" gorm:"column:summary_treasury_approved_by;type:varchar(120)"`
	SummaryTreasuryApprovedAt   *time.Time `json:"summary_treasury_approved_at,omitempty" gorm:"column:summary_treasury_approved_at;type:timestamptz"`
	SummaryAccountantApproved   bool       `json:"summary_accountant_approved" gorm:"column:summary_accountant_approved;not null;default:false"`
	SummaryAccountantApprovedBy *string    `json:"summary_accountant_approved_by,omitempty" gorm:"column:summary_accountant_approved_by;type:varchar(120)"`
	SummaryAccountantApprovedAt *time.Time `json:"summary_accountant_approved_at,omitempty" gorm:"column:summary_accountant_approved_at;type:timestamptz"`
	SummaryDirectorApproved     bool       `json:"summary_director_approved" gorm:"column:summary_director_approved;not null;default:false"`
	SummaryDirectorApprovedBy   *string    `json:"summary_director_approved_by,omitempty" gorm:"column:summary_director_approved_by;type:varchar(120)"`
	SummaryDirectorApprovedAt   *time.Time `json:"summary_director_approved_at,omitempty" gorm:"column:summary_director_approved_at;type:timestamptz"`

	SummaryCreatedBy string `json:"summary_created_by" gorm:"column:summary_created_by;type:varchar(50);not null;default:''"`

	SummaryCreatedAt time.Time `json:"summary_created_at" gorm:"column:summary_created_at;type:timestamptz;not null;default:now()"`
	SummaryUpdatedAt time.Time `json:"summary_updated_at" gorm:"column:summary_updated_at;type:timestamptz;not null;default:now()"`
}

func (SummaryModel) TableName() string { return "summaries" }

func (m *SummaryModel) BeforeCreate(tx *gorm.DB) error {
	m.SummaryUpdatedAt = time.Now().UTC()
	return nil
}

func (m *SummaryModel) BeforeUpdate(tx *gorm.DB) error {
	m.SummaryUpdatedAt = time.Now().UTC()
	return nil
}

func (m *SummaryModel) SetBreakdown(b Breakdown) error {
	if b == nil {
		m.SummaryBreakdown = nil
		return nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	m.SummaryBreakdown = datatypes.JSON(raw)
	return nil
}

func (m *SummaryModel) GetBreakdown() (Breakdown, error) {
	if len(m.SummaryBreakdown) == 0 {
		return Breakdown{}, nil
	}
	var b Breakdown
	if err := json.Unmarshal(m.SummaryBreakdown, &b); err != nil {
		return nil, err
	}
	return b, nil
}
