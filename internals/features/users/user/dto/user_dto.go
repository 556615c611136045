package dto

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	model "tesouraria_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName      string     `json:"user_name" validate:"required,min=3,max=50"`
	UserFullName  string     `json:"user_full_name" validate:"required,min=3,max=120"`
	UserEmail     *string    `json:"user_email,omitempty" validate:"omitempty,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	UserProfileID uuid.UUID  `json:"user_profile_id" validate:"required"`
	UserValidFrom *time.Time `json:"user_valid_from,omitempty"`
	UserValidTo   *time.Time `json:"user_valid_to,omitempty"`
}

func (r CreateUserRequest) ToModel(createdBy string) (*model.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &model.UserModel{
		UserName:      r.UserName,
		UserFullName:  r.UserFullName,
		UserEmail:     r.UserEmail,
		UserPassword:  string(hash),
		UserProfileID: r.UserProfileID,
		UserValidFrom: r.UserValidFrom,
		UserValidTo:   r.UserValidTo,
		UserCreatedBy: createdBy,
	}, nil
}

type UpdateUserRequest struct {
	UserFullName  *string    `json:"user_full_name,omitempty" validate:"omitempty,min=3,max=120"`
	UserEmail     *string    `json:"user_email,omitempty" validate:"omitempty,email"`
	Password      *string    `json:"password,omitempty" validate:"omitempty,min=8"`
	UserProfileID *uuid.UUID `json:"user_profile_id,omitempty"`
	UserValidFrom *time.Time `json:"user_valid_from,omitempty"`
	UserValidTo   *time.Time `json:"user_valid_to,omitempty"`
}

func (r UpdateUserRequest) ApplyTo(u *model.UserModel) error {
	if r.UserFullName != nil {
		u.UserFullName = *r.UserFullName
	}
	if r.UserEmail != nil {
		u.UserEmail = r.UserEmail
	}
	if r.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*r.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.UserPassword = string(hash)
	}
	if r.UserProfileID != nil {
		u.UserProfileID = *r.UserProfileID
	}
	if r.UserValidFrom != nil {
		u.UserValidFrom = r.UserValidFrom
	}
	if r.UserValidTo != nil {
		u.UserValidTo = r.UserValidTo
	}
	return nil
}

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserFullName  string     `json:"user_full_name"`
	UserEmail     *string    `json:"user_email,omitempty"`
	UserProfileID uuid.UUID  `json:"user_profile_id"`
	UserValidFrom *time.Time `json:"user_valid_from,omitempty"`
	UserValidTo   *time.Time `json:"user_valid_to,omitempty"`
	UserCreatedBy string     `json:"user_created_by"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		UserName:      u.UserName,
		UserFullName:  u.UserFullName,
		UserEmail:     u.UserEmail,
		UserProfileID: u.UserProfileID,
		UserValidFrom: u.UserValidFrom,
		UserValidTo:   u.UserValidTo,
		UserCreatedBy: u.UserCreatedBy,
		UserCreatedAt: u.UserCreatedAt,
	}
}

func FromModels(us []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for i := range us {
		out = append(out, FromModel(&us[i]))
	}
	return out
}

type AssignCongregationRequest struct {
	CongregationID uuid.UUID `json:"congregation_id" validate:"required"`
}
