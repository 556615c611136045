package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierModel — external payee for SAIDA (expense) launches.
type SupplierModel struct {
	SupplierID   uuid.UUID `json:"supplier_id" gorm:"column:supplier_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SupplierCode string    `json:"supplier_code" gorm:"column:supplier_code;type:varchar(20);unique;not null"`
	SupplierName string    `json:"supplier_name" gorm:"column:supplier_name;type:varchar(120);not null"`

	// CPF or CNPJ depending on the person flag
	SupplierTaxID    *string `json:"supplier_tax_id,omitempty" gorm:"column:supplier_tax_id;type:varchar(18);uniqueIndex"`
	SupplierIsPerson bool    `json:"supplier_is_person" gorm:"column:supplier_is_person;not null;default:false"`

	SupplierCreatedAt time.Time `json:"supplier_created_at" gorm:"column:supplier_created_at;type:timestamptz;not null;default:now()"`
	SupplierUpdatedAt time.Time `json:"supplier_updated_at" gorm:"column:supplier_updated_at;type:timestamptz;not null;default:now()"`
}

func (SupplierModel) TableName() string { return "suppliers" }

func (m *SupplierModel) BeforeCreate(tx *gorm.DB) error {
	m.SupplierUpdatedAt = time.Now().UTC()
	return nil
}

func (m *SupplierModel) BeforeUpdate(tx *gorm.DB) error {
	m.SupplierUpdatedAt = time.Now().UTC()
	return nil
}
