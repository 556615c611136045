package seeds

import (
	"gorm.io/gorm"

	users "tesouraria_backend/internals/seeds/users"
)

// RunAllSeeds bootstraps the minimum data a fresh database needs to be
// usable: the administrator profile and its first user. Guarded by the
// RUN_SEEDS env flag in main.
func RunAllSeeds(db *gorm.DB) {
	users.SeedAdminProfile(db)
	users.SeedAdminUser(db)
}
