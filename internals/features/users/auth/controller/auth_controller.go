// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "tesouraria_backend/internals/features/users/auth/service"
	helper "tesouraria_backend/internals/helpers"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

type loginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, helper.CategoryValidation, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sess, err := service.Login(ctl.DB, req.UserName, req.Password, c.Get("User-Agent"), c.IP())
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) || errors.Is(err, service.ErrUserInactive) {
			return helper.Error(c, fiber.StatusUnauthorized, helper.CategoryAuthorization, err.Error())
		}
		return helper.InfraError(c, err)
	}

	setSessionCookies(c, sess)
	return helper.Success(c, "Login ok", sess)
}

// POST /api/auth/refresh-token
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	refresh := strings.TrimSpace(c.Cookies("refresh_token"))
	if refresh == "" {
		// body fallback for non-cookie clients
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refresh = strings.TrimSpace(body.RefreshToken)
	}
	if refresh == "" {
		return helper.Error(c, fiber.StatusUnauthorized, helper.CategoryAuthorization, "Missing refresh token")
	}

	sess, err := service.Refresh(ctl.DB, refresh, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, helper.CategoryAuthorization, err.Error())
	}

	setSessionCookies(c, sess)
	return helper.Success(c, "Session refreshed", sess)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	token := helperAuth.GetRawAccessToken(c)
	if token == "" {
		return helper.Error(c, fiber.StatusUnauthorized, helper.CategoryAuthorization, "Missing token")
	}

	if err := service.Logout(ctl.DB, token, timex.NextLocalMidnight(time.Now())); err != nil {
		return helper.InfraError(c, err)
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logout ok", nil)
}

func setSessionCookies(c *fiber.Ctx, sess *service.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    sess.AccessToken,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    sess.RefreshToken,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
