// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "tesouraria_backend/internals/features/users/auth/route"
	middlewareAuth "tesouraria_backend/internals/middlewares/auth"
	"tesouraria_backend/internals/route/details"
)

// SetupRoutes mounts the public surface (/health, /api/auth) and the
// authenticated admin surface (/api/a).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoute.AuthRoutes(app, db)

	admin := app.Group("/api/a", middlewareAuth.AuthMiddleware(db))
	details.AdminRoutes(admin, db)
}
