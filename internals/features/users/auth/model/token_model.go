package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist holds access tokens invalidated by logout until they would
// have expired anyway (next local midnight at the latest).
type TokenBlacklist struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token     string     `json:"token" gorm:"type:text;not null;index"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"type:timestamptz;not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"type:timestamptz"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

// RefreshTokenModel stores only the HMAC hash of issued refresh tokens.
type RefreshTokenModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Token     string    `json:"-" gorm:"type:varchar(128);not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"type:timestamptz;not null"`
	UserAgent *string   `json:"user_agent,omitempty" gorm:"type:text"`
	IP        *string   `json:"ip,omitempty" gorm:"type:varchar(64)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
