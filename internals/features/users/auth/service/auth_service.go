// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tesouraria_backend/internals/configs"
	authModel "tesouraria_backend/internals/features/users/auth/model"
	profileModel "tesouraria_backend/internals/features/users/profile/model"
	userModel "tesouraria_backend/internals/features/users/user/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

const refreshTTLDefault = 30 * 24 * time.Hour

var (
	ErrBadCredentials = fmt.Errorf("invalid username or password")
	ErrUserInactive   = fmt.Errorf("user outside validity window")
)

type Session struct {
	AccessToken      string                  `json:"access_token"`
	RefreshToken     string                  `json:"refresh_token"`
	ExpiresAt        time.Time               `json:"expires_at"`
	UserID           uuid.UUID               `json:"user_id"`
	UserName         string                  `json:"user_name"`
	UserFullName     string                  `json:"user_full_name"`
	DefaultType      string                  `json:"default_launch_type"`
	Capabilities     helperAuth.Capabilities `json:"capabilities"`
	CongregationIDs  []uuid.UUID             `json:"congregation_ids"`
}

// Login checks the credentials, mirrors the profile's capability flags into
// the access token (flags refresh only at login) and stamps the token expiry
// at the next operating-timezone midnight.
func Login(db *gorm.DB, username, password string, userAgent, ip string) (*Session, error) {
	var u userModel.UserModel
	if err := db.First(&u, "user_name = ?", username).Error; err != nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	now := time.Now()
	if !u.ActiveAt(now) {
		return nil, ErrUserInactive
	}

	var p profileModel.ProfileModel
	if err := db.First(&p, "profile_id = ?", u.UserProfileID).Error; err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	caps := p.ToCapabilities()

	var scopes []userModel.UserCongregationModel
	if err := db.Find(&scopes, "user_congregation_user_id = ?", u.UserID).Error; err != nil {
		return nil, fmt.Errorf("load congregation scope: %w", err)
	}
	congIDs := make([]uuid.UUID, 0, len(scopes))
	congStr := make([]string, 0, len(scopes))
	for _, s := range scopes {
		congIDs = append(congIDs, s.UserCongregationCongregationID)
		congStr = append(congStr, s.UserCongregationCongregationID.String())
	}

	expires := timex.NextLocalMidnight(now)
	accessClaims := jwt.MapClaims{
		"sub":           u.UserID.String(),
		"name":          u.UserName,
		"full_name":     u.UserFullName,
		"caps":          caps,
		"congregations": congStr,
		"iat":           now.Unix(),
		"exp":           expires.Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshClaims := jwt.MapClaims{
		"sub": u.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	rt := authModel.RefreshTokenModel{
		UserID:    u.UserID,
		Token:     ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(userAgent),
		IP:        strptr(ip),
	}
	if err := db.Create(&rt).Error; err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &Session{
		AccessToken:     access,
		RefreshToken:    refresh,
		ExpiresAt:       expires,
		UserID:          u.UserID,
		UserName:        u.UserName,
		UserFullName:    u.UserFullName,
		DefaultType:     string(p.ProfileDefaultLaunchType),
		Capabilities:    caps,
		CongregationIDs: congIDs,
	}, nil
}

// Refresh rotates a refresh token and reissues the session.
func Refresh(db *gorm.DB, refreshToken, userAgent, ip string) (*Session, error) {
	tok, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("refresh token invalid")
	}

	hash := ComputeRefreshHash(refreshToken, configs.JWTRefreshSecret)
	res := db.Delete(&authModel.RefreshTokenModel{}, "token = ? AND expires_at > NOW()", hash)
	if res.Error != nil {
		return nil, fmt.Errorf("refresh lookup: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("refresh token unknown or expired")
	}

	var u userModel.UserModel
	if err := db.First(&u, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}
	// reuse Login's issuing path without re-checking the password
	return issueFor(db, &u, userAgent, ip)
}

func issueFor(db *gorm.DB, u *userModel.UserModel, userAgent, ip string) (*Session, error) {
	now := time.Now()
	if !u.ActiveAt(now) {
		return nil, ErrUserInactive
	}
	var p profileModel.ProfileModel
	if err := db.First(&p, "profile_id = ?", u.UserProfileID).Error; err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	caps := p.ToCapabilities()

	var scopes []userModel.UserCongregationModel
	if err := db.Find(&scopes, "user_congregation_user_id = ?", u.UserID).Error; err != nil {
		return nil, fmt.Errorf("load congregation scope: %w", err)
	}
	congIDs := make([]uuid.UUID, 0, len(scopes))
	congStr := make([]string, 0, len(scopes))
	for _, s := range scopes {
		congIDs = append(congIDs, s.UserCongregationCongregationID)
		congStr = append(congStr, s.UserCongregationCongregationID.String())
	}

	expires := timex.NextLocalMidnight(now)
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":           u.UserID.String(),
		"name":          u.UserName,
		"full_name":     u.UserFullName,
		"caps":          caps,
		"congregations": congStr,
		"iat":           now.Unix(),
		"exp":           expires.Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	if err := db.Create(&authModel.RefreshTokenModel{
		UserID:    u.UserID,
		Token:     ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(userAgent),
		IP:        strptr(ip),
	}).Error; err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &Session{
		AccessToken:     access,
		RefreshToken:    refresh,
		ExpiresAt:       expires,
		UserID:          u.UserID,
		UserName:        u.UserName,
		UserFullName:    u.UserFullName,
		DefaultType:     string(p.ProfileDefaultLaunchType),
		Capabilities:    caps,
		CongregationIDs: congIDs,
	}, nil
}

// Logout blacklists the access token until its natural expiry.
func Logout(db *gorm.DB, accessToken string, expiresAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     accessToken,
		ExpiresAt: expiresAt,
	}).Error
}

func ComputeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
