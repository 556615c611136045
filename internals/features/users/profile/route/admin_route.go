package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tesouraria_backend/internals/features/users/profile/controller"
)

func ProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProfileController(db)

	g := r.Group("/profiles")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/duplicate", ctl.Duplicate)
	g.Delete("/", ctl.Delete)
}
