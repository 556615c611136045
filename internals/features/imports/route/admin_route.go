// file: internals/features/imports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importController "tesouraria_backend/internals/features/imports/controller"
	"tesouraria_backend/internals/middlewares"
)

// ImportAdminRoutes hangs one POST /<entity>/import per importer off the
// authenticated admin group, all behind the import rate limiter.
func ImportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := importController.NewImportController(db)
	limit := middlewares.ImportRateLimiter()

	admin.Post("/congregations/import", limit, ctl.ImportCongregations)
	admin.Post("/contributors/import", limit, ctl.ImportContributors)
	admin.Post("/suppliers/import", limit, ctl.ImportSuppliers)
	admin.Post("/classifications/import", limit, ctl.ImportClassifications)
	admin.Post("/users/import", limit, ctl.ImportUsers)
	admin.Post("/user-congregations/import", limit, ctl.ImportUserCongregations)
	admin.Post("/launches/import", limit, ctl.ImportLaunches)
}
