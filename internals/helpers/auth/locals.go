package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware.
const (
	LocUserID          = "user_id"
	LocUserName        = "user_name"
	LocCapabilities    = "capabilities"
	LocCongregationIDs = "congregation_ids"
	LocRawToken        = "raw_token"
)

func GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetUserName(c *fiber.Ctx) string {
	v, _ := c.Locals(LocUserName).(string)
	return v
}

// GetCapabilities returns the per-request capability bag. The zero value
// (all false) comes back when the middleware did not run.
func GetCapabilities(c *fiber.Ctx) Capabilities {
	caps, _ := c.Locals(LocCapabilities).(Capabilities)
	return caps
}

// GetCongregationIDs returns the congregations the session user may operate
// on (empty means unrestricted only when CanViewAllCongregations is set).
func GetCongregationIDs(c *fiber.Ctx) []uuid.UUID {
	ids, _ := c.Locals(LocCongregationIDs).([]uuid.UUID)
	return ids
}

// MayOperateOn checks the UserCongregation scope for one congregation.
func MayOperateOn(c *fiber.Ctx, congregationID uuid.UUID) bool {
	if GetCapabilities(c).CanViewAllCongregations {
		return true
	}
	for _, id := range GetCongregationIDs(c) {
		if id == congregationID {
			return true
		}
	}
	return false
}

// GetRawAccessToken reads the access token from cookie, Locals or the
// Authorization header, in that order.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
