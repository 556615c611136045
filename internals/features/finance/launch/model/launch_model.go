// file: internals/features/finance/launch/model/launch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
)

/* =========================
   Subject reference (union)
   ========================= */

// SubjectRef is either a registered person (contributor/supplier id) or a
// free-text name — never both. The two database columns stay mutually
// exclusive because all writes go through this type.
type SubjectRef struct {
	id   *uuid.UUID
	name string
}

func RegisteredSubject(id uuid.UUID) SubjectRef { return SubjectRef{id: &id} }
func FreeTextSubject(name string) SubjectRef    { return SubjectRef{name: name} }

func (s SubjectRef) IsZero() bool { return s.id == nil && s.name == "" }

func (s SubjectRef) Registered() (uuid.UUID, bool) {
	if s.id == nil {
		return uuid.Nil, false
	}
	return *s.id, true
}

func (s SubjectRef) FreeText() (string, bool) {
	if s.id != nil || s.name == "" {
		return "", false
	}
	return s.name, true
}

/* =========================
   Model: launches
   ========================= */

type LaunchModel struct {
	LaunchID uuid.UUID `json:"launch_id" gorm:"column:launch_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	LaunchCongregationID uuid.UUID `json:"launch_congregation_id" gorm:"column:launch_congregation_id;type:uuid;not null;index;constraint:OnDelete:RESTRICT"`

	LaunchType   constants.LaunchType   `json:"launch_type" gorm:"column:launch_type;type:varchar(20);not null;index"`
	LaunchStatus constants.LaunchStatus `json:"launch_status" gorm:"column:launch_status;type:varchar(10);not null;default:'NORMAL';index"`

	// UTC instant of local midnight in the operating timezone
	LaunchDate  time.Time       `json:"launch_date" gorm:"column:launch_date;type:timestamptz;not null;index"`
	LaunchValue decimal.Decimal `json:"launch_value" gorm:"column:launch_value;type:numeric(14,2);not null"`

	LaunchDescription *string `json:"launch_description,omitempty" gorm:"column:launch_description;type:text"`
	LaunchTalonNumber *string `json:"launch_talon_number,omitempty" gorm:"column:launch_talon_number;type:varchar(30)"`

	// subject: registered contributor XOR free-text name (DIZIMO/CARNE)
	LaunchContributorID   *uuid.UUID `json:"launch_contributor_id,omitempty" gorm:"column:launch_contributor_id;type:uuid;index"`
	LaunchContributorName *string    `json:"launch_contributor_name,omitempty" gorm:"column:launch_contributor_name;type:varchar(120)"`

	// subject: registered supplier XOR free-text name (SAIDA)
	LaunchSupplierID   *uuid.UUID `json:"launch_supplier_id,omitempty" gorm:"column:launch_supplier_id;type:uuid;index"`
	LaunchSupplierName *string    `json:"launch_supplier_name,omitempty" gorm:"column:launch_supplier_name;type:varchar(120)"`

	// mandatory for SAIDA
	LaunchClassificationID *uuid.UUID `json:"launch_classification_id,omitempty" gorm:"column:launch_classification_id;type:uuid;index"`

	// attachment to a congregation summary freezes the launch
	LaunchSummaryID *uuid.UUID `json:"launch_summary_id,omitempty" gorm:"column:launch_summary_id;type:uuid;index"`

	LaunchCreatedBy string `json:"launch_created_by" gorm:"column:launch_created_by;type:varchar(50);not null;default:''"`

	// approval slots, independently stampable
	LaunchTreasuryApprovedBy   *string    `json:"launch_treasury_approved_by,omitempty" gorm:"column:launch_treasury_approved_by;type:varchar(120)"`
	LaunchTreasuryApprovedAt   *time.Time `json:"launch_treasury_approved_at,omitempty" gorm:"column:launch_treasury_approved_at;type:timestamptz"`
	LaunchAccountantApprovedBy *string    `json:"launch_accountant_approved_by,omitempty" gorm:"column:launch_accountant_approved_by;type:varchar(120)"`
	LaunchAccountantApprovedAt *time.Time `json:"launch_accountant_approved_at,omitempty" gorm:"column:launch_accountant_approved_at;type:timestamptz"`
	LaunchDirectorApprovedBy   *string    `json:"launch_director_approved_by,omitempty" gorm:"column:launch_director_approved_by;type:varchar(120)"`
	LaunchDirectorApprovedAt   *time.Time `json:"launch_director_approved_at,omitempty" gorm:"column:launch_director_approved_at;type:timestamptz"`

	LaunchCanceledBy *string    `json:"launch_canceled_by,omitempty" gorm:"column:launch_canceled_by;type:varchar(120)"`
	LaunchCanceledAt *time.Time `json:"launch_canceled_at,omitempty" gorm:"column:launch_canceled_at;type:timestamptz"`

	LaunchCreatedAt time.Time `json:"launch_created_at" gorm:"column:launch_created_at;type:timestamptz;not null;default:now()"`
	LaunchUpdatedAt time.Time `json:"launch_updated_at" gorm:"column:launch_updated_at;type:timestamptz;not null;default:now()"`
}

func (LaunchModel) TableName() string { return "launches" }

func (m *LaunchModel) BeforeCreate(tx *gorm.DB) error {
	m.LaunchUpdatedAt = time.Now().UTC()
	return nil
}

func (m *LaunchModel) BeforeUpdate(tx *gorm.DB) error {
	m.LaunchUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Subject setters
   ========================= */

func (m *LaunchModel) SetContributor(ref SubjectRef) {
	m.LaunchContributorID = nil
	m.LaunchContributorName = nil
	if id, ok := ref.Registered(); ok {
		m.LaunchContributorID = &id
		return
	}
	if name, ok := ref.FreeText(); ok {
		m.LaunchContributorName = &name
	}
}

func (m *LaunchModel) SetSupplier(ref SubjectRef) {
	m.LaunchSupplierID = nil
	m.LaunchSupplierName = nil
	if id, ok := ref.Registered(); ok {
		m.LaunchSupplierID = &id
		return
	}
	if name, ok := ref.FreeText(); ok {
		m.LaunchSupplierName = &name
	}
}

// HasContributorIdentity reports whether either side of the union is set.
func (m *LaunchModel) HasContributorIdentity() bool {
	if m.LaunchContributorID != nil {
		return true
	}
	return m.LaunchContributorName != nil && *m.LaunchContributorName != ""
}

/* =========================
   Scopes
   ========================= */

func ScopeByCongregations(ids []uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("launch_congregation_id IN ?", ids)
	}
}

func ScopeInRange(from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("launch_date >= ? AND launch_date <= ?", from, to)
	}
}

func ScopeNotCanceled(db *gorm.DB) *gorm.DB {
	return db.Where("launch_status <> ?", constants.LaunchStatusCanceled)
}
