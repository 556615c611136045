// file: internals/features/finance/launch/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	launchController "tesouraria_backend/internals/features/finance/launch/controller"
)

// LaunchAdminRoutes registers the launch CRUD and status endpoints under
// the authenticated admin group.
func LaunchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := launchController.NewLaunchController(db)

	launches := admin.Group("/launches")
	launches.Get("/", ctl.List)
	launches.Get("/:id", ctl.GetByID)
	launches.Post("/", ctl.Create)
	launches.Put("/:id", ctl.Update)
	launches.Put("/:id/status", ctl.UpdateStatus)
	launches.Delete("/", ctl.Delete)
}
