// file: internals/features/finance/export/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportController "tesouraria_backend/internals/features/finance/export/controller"
)

// ExportAdminRoutes registers the accounting export endpoint under the
// authenticated admin group.
func ExportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := exportController.NewExportController(db)

	exports := admin.Group("/exports")
	exports.Get("/launches", ctl.ExportLaunches)
}
