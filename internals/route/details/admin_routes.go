// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classificationRoute "tesouraria_backend/internals/features/church/classification/route"
	congregationRoute "tesouraria_backend/internals/features/church/congregation/route"
	contributorRoute "tesouraria_backend/internals/features/church/contributor/route"
	supplierRoute "tesouraria_backend/internals/features/church/supplier/route"
	exportRoute "tesouraria_backend/internals/features/finance/export/route"
	launchRoute "tesouraria_backend/internals/features/finance/launch/route"
	summaryRoute "tesouraria_backend/internals/features/finance/summary/route"
	importRoute "tesouraria_backend/internals/features/imports/route"
	profileRoute "tesouraria_backend/internals/features/users/profile/route"
	userRoute "tesouraria_backend/internals/features/users/user/route"
)

// AdminRoutes wires every authenticated feature onto the /api/a group.
// Import endpoints register first so POST /launches/import wins over the
// launch :id parameter route.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	importRoute.ImportAdminRoutes(admin, db)

	profileRoute.ProfileAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	congregationRoute.CongregationAdminRoutes(admin, db)
	contributorRoute.ContributorAdminRoutes(admin, db)
	supplierRoute.SupplierAdminRoutes(admin, db)
	classificationRoute.ClassificationAdminRoutes(admin, db)

	launchRoute.LaunchAdminRoutes(admin, db)
	summaryRoute.SummaryAdminRoutes(admin, db)
	exportRoute.ExportAdminRoutes(admin, db)
}
