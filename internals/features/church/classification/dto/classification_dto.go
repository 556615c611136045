package dto

import (
	"time"

	"github.com/google/uuid"

	model "tesouraria_backend/internals/features/church/classification/model"
)

type CreateClassificationRequest struct {
	ClassificationCode        string `json:"classification_code" validate:"required,max=20"`
	ClassificationShortCode   string `json:"classification_short_code" validate:"required,max=10"`
	ClassificationDescription string `json:"classification_description" validate:"required,max=160"`
}

func (r CreateClassificationRequest) ToModel() *model.ClassificationModel {
	return &model.ClassificationModel{
		ClassificationCode:        r.ClassificationCode,
		ClassificationShortCode:   r.ClassificationShortCode,
		ClassificationDescription: r.ClassificationDescription,
	}
}

type UpdateClassificationRequest struct {
	ClassificationShortCode   *string `json:"classification_short_code,omitempty" validate:"omitempty,max=10"`
	ClassificationDescription *string `json:"classification_description,omitempty" validate:"omitempty,max=160"`
}

func (r UpdateClassificationRequest) ApplyTo(m *model.ClassificationModel) {
	if r.ClassificationShortCode != nil {
		m.ClassificationShortCode = *r.ClassificationShortCode
	}
	if r.ClassificationDescription != nil {
		m.ClassificationDescription = *r.ClassificationDescription
	}
}

type ClassificationResponse struct {
	ClassificationID          uuid.UUID `json:"classification_id"`
	ClassificationCode        string    `json:"classification_code"`
	ClassificationShortCode   string    `json:"classification_short_code"`
	ClassificationDescription string    `json:"classification_description"`
	ClassificationCreatedAt   time.Time `json:"classification_created_at"`
}

func FromModel(m *model.ClassificationModel) ClassificationResponse {
	return ClassificationResponse{
		ClassificationID:          m.ClassificationID,
		ClassificationCode:        m.ClassificationCode,
		ClassificationShortCode:   m.ClassificationShortCode,
		ClassificationDescription: m.ClassificationDescription,
		ClassificationCreatedAt:   m.ClassificationCreatedAt,
	}
}

func FromModels(ms []model.ClassificationModel) []ClassificationResponse {
	out := make([]ClassificationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
