package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tesouraria_backend/internals/features/church/contributor/controller"
)

func ContributorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewContributorController(db)

	g := r.Group("/contributors")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/photo", ctl.UploadPhoto)
	g.Delete("/", ctl.Delete)
}
