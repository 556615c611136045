package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContributorType string

const (
	ContributorTypeMembro     ContributorType = "MEMBRO"
	ContributorTypeCongregado ContributorType = "CONGREGADO"
)

func (t ContributorType) Valid() bool {
	return t == ContributorTypeMembro || t == ContributorTypeCongregado
}

/* =========================
   Model: contributors
   ========================= */

// ContributorModel — a person who may be the subject of a tithe launch.
// Belongs to exactly one congregation.
type ContributorModel struct {
	ContributorID   uuid.UUID `json:"contributor_id" gorm:"column:contributor_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ContributorCode string    `json:"contributor_code" gorm:"column:contributor_code;type:varchar(20);unique;not null"`
	ContributorName string    `json:"contributor_name" gorm:"column:contributor_name;type:varchar(120);not null"`

	// tax id; optional but unique when present (import upsert key)
	ContributorCPF *string `json:"contributor_cpf,omitempty" gorm:"column:contributor_cpf;type:varchar(14);uniqueIndex"`

	ContributorPosition *string         `json:"contributor_position,omitempty" gorm:"column:contributor_position;type:varchar(60)"`
	ContributorType     ContributorType `json:"contributor_type" gorm:"column:contributor_type;type:varchar(12);not null;default:'MEMBRO'"`

	ContributorCongregationID uuid.UUID `json:"contributor_congregation_id" gorm:"column:contributor_congregation_id;type:uuid;not null;constraint:OnDelete:RESTRICT"`

	// relative path under the public dir
	ContributorPhotoPath *string `json:"contributor_photo_path,omitempty" gorm:"column:contributor_photo_path;type:text"`

	ContributorCreatedAt time.Time `json:"contributor_created_at" gorm:"column:contributor_created_at;type:timestamptz;not null;default:now()"`
	ContributorUpdatedAt time.Time `json:"contributor_updated_at" gorm:"column:contributor_updated_at;type:timestamptz;not null;default:now()"`
}

func (ContributorModel) TableName() string { return "contributors" }

func (m *ContributorModel) BeforeCreate(tx *gorm.DB) error {
	m.ContributorUpdatedAt = time.Now().UTC()
	return nil
}

func (m *ContributorModel) BeforeUpdate(tx *gorm.DB) error {
	m.ContributorUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeByCongregation(id uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("contributor_congregation_id = ?", id)
	}
}
