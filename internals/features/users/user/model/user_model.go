package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/helpers/timex"
)

/* =========================
   Model: users
   ========================= */

// UserModel — users are never hard-deleted in the normal flow; the
// valid_from/valid_to window is the soft lifecycle.
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"column:user_name;type:varchar(50);unique;not null"`
	UserFullName string    `json:"user_full_name" gorm:"column:user_full_name;type:varchar(120);not null"`
	UserEmail    *string   `json:"user_email,omitempty" gorm:"column:user_email;type:varchar(255)"`
	UserPassword string    `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	// profile is shared: many users reference one profile
	UserProfileID uuid.UUID `json:"user_profile_id" gorm:"column:user_profile_id;type:uuid;not null;constraint:OnDelete:RESTRICT"`

	UserValidFrom *time.Time `json:"user_valid_from,omitempty" gorm:"column:user_valid_from;type:date"`
	UserValidTo   *time.Time `json:"user_valid_to,omitempty" gorm:"column:user_valid_to;type:date"`

	UserCreatedBy string `json:"user_created_by" gorm:"column:user_created_by;type:varchar(50);not null;default:''"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	u.UserUpdatedAt = time.Now().UTC()
	return nil
}

func (u *UserModel) BeforeUpdate(tx *gorm.DB) error {
	u.UserUpdatedAt = time.Now().UTC()
	return nil
}

// ActiveAt reports whether now's calendar day (operating timezone) sits
// inside the validity window. Open ends are unbounded.
func (u *UserModel) ActiveAt(now time.Time) bool {
	day := timex.LocalMidnightUTC(now)
	if u.UserValidFrom != nil && day.Before(timex.LocalMidnightUTC(*u.UserValidFrom)) {
		return false
	}
	if u.UserValidTo != nil && day.After(timex.LocalMidnightUTC(*u.UserValidTo)) {
		return false
	}
	return true
}

/* =========================
   Model: user_congregations
   ========================= */

// UserCongregationModel scopes which congregations a user may operate on.
type UserCongregationModel struct {
	UserCongregationID             uuid.UUID `json:"user_congregation_id" gorm:"column:user_congregation_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserCongregationUserID         uuid.UUID `json:"user_congregation_user_id" gorm:"column:user_congregation_user_id;type:uuid;not null;uniqueIndex:uq_user_congregation;constraint:OnDelete:CASCADE"`
	UserCongregationCongregationID uuid.UUID `json:"user_congregation_congregation_id" gorm:"column:user_congregation_congregation_id;type:uuid;not null;uniqueIndex:uq_user_congregation;constraint:OnDelete:CASCADE"`
	UserCongregationCreatedAt      time.Time `json:"user_congregation_created_at" gorm:"column:user_congregation_created_at;type:timestamptz;not null;default:now()"`
}

func (UserCongregationModel) TableName() string { return "user_congregations" }
