package users

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tesouraria_backend/internals/configs"
	profileModel "tesouraria_backend/internals/features/users/profile/model"
	userModel "tesouraria_backend/internals/features/users/user/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

const adminProfileName = "Administrador"

// allCapabilities flips every flag on; the administrator profile can do
// everything, including reverting and exporting.
func allCapabilities() helperAuth.Capabilities {
	return helperAuth.Capabilities{
		CanLaunchDizimo:   true,
		CanLaunchOferta:   true,
		CanLaunchVoto:     true,
		CanLaunchEbd:      true,
		CanLaunchCampanha: true,
		CanLaunchMissao:   true,
		CanLaunchCirculo:  true,
		CanLaunchSaida:    true,
		CanLaunchCarne:    true,

		CanApproveDizimo:   true,
		CanApproveOferta:   true,
		CanApproveVoto:     true,
		CanApproveEbd:      true,
		CanApproveCampanha: true,
		CanApproveMissao:   true,
		CanApproveCirculo:  true,
		CanApproveSaida:    true,
		CanApproveCarne:    true,

		CanUnapproveLaunch: true,
		CanCancelLaunch:    true,
		CanEditLaunch:      true,
		CanDeleteLaunch:    true,
		CanImportLaunches:  true,

		CanCreateSummary:            true,
		CanApproveSummaryTreasury:   true,
		CanApproveSummaryAccountant: true,
		CanApproveSummaryDirector:   true,
		CanViewSummaries:            true,
		CanGenerateReports:          true,
		CanExport:                   true,

		CanManageUsers:           true,
		CanManageProfiles:        true,
		CanManageCongregations:   true,
		CanManageContributors:    true,
		CanManageSuppliers:       true,
		CanManageClassifications: true,
		CanImportReferenceData:   true,
		CanViewAllCongregations:  true,
	}
}

// SeedAdminProfile creates the Administrador profile once.
func SeedAdminProfile(db *gorm.DB) {
	var existing profileModel.ProfileModel
	err := db.First(&existing, "profile_name = ?", adminProfileName).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ Seed de perfil falhou na consulta: %v", err)
		return
	}

	p := profileModel.ProfileModel{ProfileName: adminProfileName}
	p.ApplyCapabilities(allCapabilities())
	if err := db.Create(&p).Error; err != nil {
		log.Printf("⚠️ Seed de perfil falhou: %v", err)
		return
	}
	log.Printf("🌱 Perfil %q criado", adminProfileName)
}

// SeedAdminUser creates the first login, bound to the admin profile. The
// password comes from SEED_ADMIN_PASSWORD; without it no user is created.
func SeedAdminUser(db *gorm.DB) {
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Println("🌱 SEED_ADMIN_PASSWORD ausente, usuário administrador não criado")
		return
	}
	userName := configs.GetEnv("SEED_ADMIN_USER", "admin")

	var existing userModel.UserModel
	if err := db.First(&existing, "user_name = ?", userName).Error; err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ Seed de usuário falhou na consulta: %v", err)
		return
	}

	var profile profileModel.ProfileModel
	if err := db.First(&profile, "profile_name = ?", adminProfileName).Error; err != nil {
		log.Printf("⚠️ Seed de usuário requer o perfil administrador: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️ Seed de usuário falhou no hash: %v", err)
		return
	}

	u := userModel.UserModel{
		UserName:      userName,
		UserFullName:  "Administrador",
		UserPassword:  string(hash),
		UserProfileID: profile.ProfileID,
		UserCreatedBy: "SEED",
	}
	if err := db.Create(&u).Error; err != nil {
		log.Printf("⚠️ Seed de usuário falhou: %v", err)
		return
	}
	log.Printf("🌱 Usuário %q criado", userName)
}
