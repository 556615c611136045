package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tesouraria_backend/internals/features/church/congregation/controller"
)

func CongregationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCongregationController(db)

	g := r.Group("/congregations")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/", ctl.Delete)
}
