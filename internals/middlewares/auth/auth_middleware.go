// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/configs"
	authModel "tesouraria_backend/internals/features/users/auth/model"
	userModel "tesouraria_backend/internals/features/users/user/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helperAuth.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		// blacklist check, once per request
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token found in blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] blacklist lookup:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Account is outside its validity window")
		}

		c.Locals(helperAuth.LocUserID, userID.String())
		if name, ok := claims["name"].(string); ok {
			c.Locals(helperAuth.LocUserName, name)
		}
		storeCapabilitiesToLocals(c, claims)
		storeCongregationIDsToLocals(c, claims)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("missing exp claim")
	}
	exp, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("exp claim is not numeric")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
		return fmt.Errorf("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

// ensureUserActive verifies the user row exists and today sits inside its
// validity window (users are never hard-deleted).
func ensureUserActive(db *gorm.DB, id uuid.UUID) error {
	var u userModel.UserModel
	if err := db.Select("user_id", "user_valid_from", "user_valid_to").
		First(&u, "user_id = ?", id).Error; err != nil {
		return err
	}
	if !u.ActiveAt(time.Now()) {
		return fmt.Errorf("user inactive")
	}
	return nil
}

// Capabilities are refreshed only at login: the flag set rides in the access
// token and is decoded straight from the claims here.
func storeCapabilitiesToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	raw, ok := claims["caps"]
	if !ok {
		c.Locals(helperAuth.LocCapabilities, helperAuth.Capabilities{})
		return
	}
	b, err := json.Marshal(raw)
	if err != nil {
		c.Locals(helperAuth.LocCapabilities, helperAuth.Capabilities{})
		return
	}
	var caps helperAuth.Capabilities
	if err := json.Unmarshal(b, &caps); err != nil {
		log.Println("[ERROR] caps claim decode:", err)
		c.Locals(helperAuth.LocCapabilities, helperAuth.Capabilities{})
		return
	}
	c.Locals(helperAuth.LocCapabilities, caps)
}

func storeCongregationIDsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	raw, ok := claims["congregations"].([]interface{})
	if !ok {
		c.Locals(helperAuth.LocCongregationIDs, []uuid.UUID{})
		return
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			if id, err := uuid.Parse(s); err == nil {
				ids = append(ids, id)
			}
		}
	}
	c.Locals(helperAuth.LocCongregationIDs, ids)
}
