package dto

import (
	"time"

	"github.com/google/uuid"

	model "tesouraria_backend/internals/features/church/contributor/model"
)

type CreateContributorRequest struct {
	ContributorCode           string                `json:"contributor_code" validate:"required,max=20"`
	ContributorName           string                `json:"contributor_name" validate:"required,min=2,max=120"`
	ContributorCPF            *string               `json:"contributor_cpf,omitempty" validate:"omitempty,max=14"`
	ContributorPosition       *string               `json:"contributor_position,omitempty" validate:"omitempty,max=60"`
	ContributorType           model.ContributorType `json:"contributor_type" validate:"required"`
	ContributorCongregationID uuid.UUID             `json:"contributor_congregation_id" validate:"required"`
}

func (r CreateContributorRequest) ToModel() *model.ContributorModel {
	return &model.ContributorModel{
		ContributorCode:           r.ContributorCode,
		ContributorName:           r.ContributorName,
		ContributorCPF:            r.ContributorCPF,
		ContributorPosition:       r.ContributorPosition,
		ContributorType:           r.ContributorType,
		ContributorCongregationID: r.ContributorCongregationID,
	}
}

type UpdateContributorRequest struct {
	ContributorName           *string                `json:"contributor_name,omitempty" validate:"omitempty,min=2,max=120"`
	ContributorCPF            *string                `json:"contributor_cpf,omitempty" validate:"omitempty,max=14"`
	ContributorPosition       *string                `json:"contributor_position,omitempty" validate:"omitempty,max=60"`
	ContributorType           *model.ContributorType `json:"contributor_type,omitempty"`
	ContributorCongregationID *uuid.UUID             `json:"contributor_congregation_id,omitempty"`
}

func (r UpdateContributorRequest) ApplyTo(m *model.ContributorModel) {
	if r.ContributorName != nil {
		m.ContributorName = *r.ContributorName
	}
	if r.ContributorCPF != nil {
		m.ContributorCPF = r.ContributorCPF
	}
	if r.ContributorPosition != nil {
		m.ContributorPosition = r.ContributorPosition
	}
	if r.ContributorType != nil {
		m.ContributorType = *r.ContributorType
	}
	if r.ContributorCongregationID != nil {
		m.ContributorCongregationID = *r.ContributorCongregationID
	}
}

type ContributorResponse struct {
	ContributorID             uuid.UUID             `json:"contributor_id"`
	ContributorCode           string                `json:"contributor_code"`
	ContributorName           string                `json:"contributor_name"`
	ContributorCPF            *string               `json:"contributor_cpf,omitempty"`
	ContributorPosition       *string               `json:"contributor_position,omitempty"`
	ContributorType           model.ContributorType `json:"contributor_type"`
	ContributorCongregationID uuid.UUID             `json:"contributor_congregation_id"`
	ContributorPhotoPath      *string               `json:"contributor_photo_path,omitempty"`
	ContributorCreatedAt      time.Time             `json:"contributor_created_at"`
}

func FromModel(m *model.ContributorModel) ContributorResponse {
	return ContributorResponse{
		ContributorID:             m.ContributorID,
		ContributorCode:           m.ContributorCode,
		ContributorName:           m.ContributorName,
		ContributorCPF:            m.ContributorCPF,
		ContributorPosition:       m.ContributorPosition,
		ContributorType:           m.ContributorType,
		ContributorCongregationID: m.ContributorCongregationID,
		ContributorPhotoPath:      m.ContributorPhotoPath,
		ContributorCreatedAt:      m.ContributorCreatedAt,
	}
}

func FromModels(ms []model.ContributorModel) []ContributorResponse {
	out := make([]ContributorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
