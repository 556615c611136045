package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tesouraria_backend/internals/features/church/supplier/controller"
)

func SupplierAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSupplierController(db)

	g := r.Group("/suppliers")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/", ctl.Delete)
}
