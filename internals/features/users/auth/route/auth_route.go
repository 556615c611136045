package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tesouraria_backend/internals/features/users/auth/controller"
	"tesouraria_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Post("/refresh-token", ctl.Refresh)
	g.Post("/logout", ctl.Logout)
}
