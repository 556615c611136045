// file: internals/features/finance/summary/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	summaryController "tesouraria_backend/internals/features/finance/summary/controller"
)

// SummaryAdminRoutes registers the congregation summary endpoints under the
// authenticated admin group.
func SummaryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := summaryController.NewSummaryController(db)

	summaries := admin.Group("/summaries")
	summaries.Get("/", ctl.List)
	summaries.Get("/:id", ctl.GetByID)
	summaries.Post("/", ctl.Create)
	summaries.Put("/:id", ctl.Update)
	summaries.Put("/:id/approve", ctl.Approve)
	summaries.Delete("/:id", ctl.Delete)
}
