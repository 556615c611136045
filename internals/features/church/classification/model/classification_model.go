package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassificationModel — chart-of-accounts entry classifying SAIDA launches.
type ClassificationModel struct {
	ClassificationID          uuid.UUID `json:"classification_id" gorm:"column:classification_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ClassificationCode        string    `json:"classification_code" gorm:"column:classification_code;type:varchar(20);unique;not null"`
	ClassificationShortCode   string    `json:"classification_short_code" gorm:"column:classification_short_code;type:varchar(10);unique;not null"`
	ClassificationDescription string    `json:"classification_description" gorm:"column:classification_description;type:varchar(160);not null"`

	ClassificationCreatedAt time.Time `json:"classification_created_at" gorm:"column:classification_created_at;type:timestamptz;not null;default:now()"`
	ClassificationUpdatedAt time.Time `json:"classification_updated_at" gorm:"column:classification_updated_at;type:timestamptz;not null;default:now()"`
}

func (ClassificationModel) TableName() string { return "classifications" }

func (m *ClassificationModel) BeforeCreate(tx *gorm.DB) error {
	m.ClassificationUpdatedAt = time.Now().UTC()
	return nil
}

func (m *ClassificationModel) BeforeUpdate(tx *gorm.DB) error {
	m.ClassificationUpdatedAt = time.Now().UTC()
	return nil
}
