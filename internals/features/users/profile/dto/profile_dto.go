package dto

import (
	"time"

	"github.com/google/uuid"

	"tesouraria_backend/internals/constants"
	model "tesouraria_backend/internals/features/users/profile/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

type CreateProfileRequest struct {
	ProfileName              string                   `json:"profile_name" validate:"required,min=3,max=80"`
	ProfileDefaultLaunchType constants.LaunchType     `json:"profile_default_launch_type" validate:"required"`
	Capabilities             helperAuth.Capabilities  `json:"capabilities"`
}

func (r CreateProfileRequest) ToModel() *model.ProfileModel {
	p := &model.ProfileModel{
		ProfileName:              r.ProfileName,
		ProfileDefaultLaunchType: r.ProfileDefaultLaunchType,
	}
	p.ApplyCapabilities(r.Capabilities)
	return p
}

type UpdateProfileRequest struct {
	ProfileName              *string                  `json:"profile_name,omitempty" validate:"omitempty,min=3,max=80"`
	ProfileDefaultLaunchType *constants.LaunchType    `json:"profile_default_launch_type,omitempty"`
	Capabilities             *helperAuth.Capabilities `json:"capabilities,omitempty"`
}

func (r UpdateProfileRequest) ApplyTo(p *model.ProfileModel) {
	if r.ProfileName != nil {
		p.ProfileName = *r.ProfileName
	}
	if r.ProfileDefaultLaunchType != nil {
		p.ProfileDefaultLaunchType = *r.ProfileDefaultLaunchType
	}
	if r.Capabilities != nil {
		p.ApplyCapabilities(*r.Capabilities)
	}
}

type DuplicateProfileRequest struct {
	ProfileName string `json:"profile_name" validate:"required,min=3,max=80"`
}

type ProfileResponse struct {
	ProfileID                uuid.UUID               `json:"profile_id"`
	ProfileName              string                  `json:"profile_name"`
	ProfileDefaultLaunchType constants.LaunchType    `json:"profile_default_launch_type"`
	Capabilities             helperAuth.Capabilities `json:"capabilities"`
	ProfileCreatedAt         time.Time               `json:"profile_created_at"`
	ProfileUpdatedAt         time.Time               `json:"profile_updated_at"`
}

func FromModel(p *model.ProfileModel) ProfileResponse {
	return ProfileResponse{
		ProfileID:                p.ProfileID,
		ProfileName:              p.ProfileName,
		ProfileDefaultLaunchType: p.ProfileDefaultLaunchType,
		Capabilities:             p.ToCapabilities(),
		ProfileCreatedAt:         p.ProfileCreatedAt,
		ProfileUpdatedAt:         p.ProfileUpdatedAt,
	}
}

func FromModels(ps []model.ProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ps))
	for i := range ps {
		out = append(out, FromModel(&ps[i]))
	}
	return out
}
