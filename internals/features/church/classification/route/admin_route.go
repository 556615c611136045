package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tesouraria_backend/internals/features/church/classification/controller"
)

func ClassificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassificationController(db)

	g := r.Group("/classifications")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/", ctl.Delete)
}
