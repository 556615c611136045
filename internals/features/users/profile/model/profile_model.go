package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tesouraria_backend/internals/constants"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

/* =========================
   Model: profiles
   ========================= */

// ProfileModel is a named bundle of boolean capability flags shared by many
// users. The flat column-per-flag layout is deliberate.
type ProfileModel struct {
	ProfileID   uuid.UUID `json:"profile_id" gorm:"column:profile_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfileName string    `json:"profile_name" gorm:"column:profile_name;type:varchar(80);unique;not null"`

	// default type preselected in the launch form
	ProfileDefaultLaunchType constants.LaunchType `json:"profile_default_launch_type" gorm:"column:profile_default_launch_type;type:varchar(20);not null;default:'OFERTA_CULTO'"`

	// launch entry, per type
	ProfileCanLaunchDizimo   bool `json:"profile_can_launch_dizimo" gorm:"column:profile_can_launch_dizimo;not null;default:false"`
	ProfileCanLaunchOferta   bool `json:"profile_can_launch_oferta" gorm:"column:profile_can_launch_oferta;not null;default:false"`
	ProfileCanLaunchVoto     bool `json:"profile_can_launch_voto" gorm:"column:profile_can_launch_voto;not null;default:false"`
	ProfileCanLaunchEbd      bool `json:"profile_can_launch_ebd" gorm:"column:profile_can_launch_ebd;not null;default:false"`
	ProfileCanLaunchCampanha bool `json:"profile_can_launch_campanha" gorm:"column:profile_can_launch_campanha;not null;default:false"`
	ProfileCanLaunchMissao   bool `json:"profile_can_launch_missao" gorm:"column:profile_can_launch_missao;not null;default:false"`
	ProfileCanLaunchCirculo  bool `json:"profile_can_launch_circulo" gorm:"column:profile_can_launch_circulo;not null;default:false"`
	ProfileCanLaunchSaida    bool `json:"profile_can_launch_saida" gorm:"column:profile_can_launch_saida;not null;default:false"`
	ProfileCanLaunchCarne    bool `json:"profile_can_launch_carne" gorm:"column:profile_can_launch_carne;not null;default:false"`

	// launch approval, per type
	ProfileCanApproveDizimo   bool `json:"profile_can_approve_dizimo" gorm:"column:profile_can_approve_dizimo;not null;default:false"`
	ProfileCanApproveOferta   bool `json:"profile_can_approve_oferta" gorm:"column:profile_can_approve_oferta;not null;default:false"`
	ProfileCanApproveVoto     bool `json:"profile_can_approve_voto" gorm:"column:profile_can_approve_voto;not null;default:false"`
	ProfileCanApproveEbd      bool `json:"profile_can_approve_ebd" gorm:"column:profile_can_approve_ebd;not null;default:false"`
	ProfileCanApproveCampanha bool `json:"profile_can_approve_campanha" gorm:"column:profile_can_approve_campanha;not null;default:false"`
	ProfileCanApproveMissao   bool `json:"profile_can_approve_missao" gorm:"column:profile_can_approve_missao;not null;default:false"`
	ProfileCanApproveCirculo  bool `json:"profile_can_approve_circulo" gorm:"column:profile_can_approve_circulo;not null;default:false"`
	ProfileCanApproveSaida    bool `json:"profile_can_approve_saida" gorm:"column:profile_can_approve_saida;not null;default:false"`
	ProfileCanApproveCarne    bool `json:"profile_can_approve_carne" gorm:"column:profile_can_approve_carne;not null;default:false"`

	// launch lifecycle
	ProfileCanUnapproveLaunch bool `json:"profile_can_unapprove_launch" gorm:"column:profile_can_unapprove_launch;not null;default:false"`
	ProfileCanCancelLaunch    bool `json:"profile_can_cancel_launch" gorm:"column:profile_can_cancel_launch;not null;default:false"`
	ProfileCanEditLaunch      bool `json:"profile_can_edit_launch" gorm:"column:profile_can_edit_launch;not null;default:false"`
	ProfileCanDeleteLaunch    bool `json:"profile_can_delete_launch" gorm:"column:profile_can_delete_launch;not null;default:false"`
	ProfileCanImportLaunches  bool `json:"profile_can_import_launches" gorm:"column:profile_can_import_launches;not null;default:false"`

	// summaries / reports / export
	ProfileCanCreateSummary            bool `json:"profile_can_create_summary" gorm:"column:profile_can_create_summary;not null;default:false"`
	ProfileCanApproveSummaryTreasury   bool `json:"profile_can_approve_summary_treasury" gorm:"column:profile_can_approve_summary_treasury;not null;default:false"`
	ProfileCanApproveSummaryAccountant bool `json:"profile_can_approve_summary_accountant" gorm:"column:profile_can_approve_summary_accountant;not null;default:false"`
	ProfileCanApproveSummaryDirector   bool `json:"profile_can_approve_summary_director" gorm:"column:profile_can_approve_summary_director;not null;default:false"`
	ProfileCanViewSummaries            bool `json:"profile_can_view_summaries" gorm:"column:profile_can_view_summaries;not null;default:false"`
	ProfileCanGenerateReports          bool `json:"profile_can_generate_reports" gorm:"column:profile_can_generate_reports;not null;default:false"`
	ProfileCanExport                   bool `json:"profile_can_export" gorm:"column:profile_can_export;not null;default:false"`

	// administration
	ProfileCanManageUsers           bool `json:"profile_can_manage_users" gorm:"column:profile_can_manage_users;not null;default:false"`
	ProfileCanManageProfiles        bool `json:"profile_can_manage_profiles" gorm:"column:profile_can_manage_profiles;not null;default:false"`
	ProfileCanManageCongregations   bool `json:"profile_can_manage_congregations" gorm:"column:profile_can_manage_congregations;not null;default:false"`
	ProfileCanManageContributors    bool `json:"profile_can_manage_contributors" gorm:"column:profile_can_manage_contributors;not null;default:false"`
	ProfileCanManageSuppliers       bool `json:"profile_can_manage_suppliers" gorm:"column:profile_can_manage_suppliers;not null;default:false"`
	ProfileCanManageClassifications bool `json:"profile_can_manage_classifications" gorm:"column:profile_can_manage_classifications;not null;default:false"`
	ProfileCanImportReferenceData   bool `json:"profile_can_import_reference_data" gorm:"column:profile_can_import_reference_data;not null;default:false"`
	ProfileCanViewAllCongregations  bool `json:"profile_can_view_all_congregations" gorm:"column:profile_can_view_all_congregations;not null;default:false"`

	ProfileCreatedAt time.Time `json:"profile_created_at" gorm:"column:profile_created_at;type:timestamptz;not null;default:now()"`
	ProfileUpdatedAt time.Time `json:"profile_updated_at" gorm:"column:profile_updated_at;type:timestamptz;not null;default:now()"`
}

func (ProfileModel) TableName() string { return "profiles" }

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	p.ProfileUpdatedAt = time.Now().UTC()
	return nil
}

func (p *ProfileModel) BeforeUpdate(tx *gorm.DB) error {
	p.ProfileUpdatedAt = time.Now().UTC()
	return nil
}

// ToCapabilities mirrors the profile flags into the per-session value object.
func (p *ProfileModel) ToCapabilities() helperAuth.Capabilities {
	return helperAuth.Capabilities{
		CanLaunchDizimo:   p.ProfileCanLaunchDizimo,
		CanLaunchOferta:   p.ProfileCanLaunchOferta,
		CanLaunchVoto:     p.ProfileCanLaunchVoto,
		CanLaunchEbd:      p.ProfileCanLaunchEbd,
		CanLaunchCampanha: p.ProfileCanLaunchCampanha,
		CanLaunchMissao:   p.ProfileCanLaunchMissao,
		CanLaunchCirculo:  p.ProfileCanLaunchCirculo,
		CanLaunchSaida:    p.ProfileCanLaunchSaida,
		CanLaunchCarne:    p.ProfileCanLaunchCarne,

		CanApproveDizimo:   p.ProfileCanApproveDizimo,
		CanApproveOferta:   p.ProfileCanApproveOferta,
		CanApproveVoto:     p.ProfileCanApproveVoto,
		CanApproveEbd:      p.ProfileCanApproveEbd,
		CanApproveCampanha: p.ProfileCanApproveCampanha,
		CanApproveMissao:   p.ProfileCanApproveMissao,
		CanApproveCirculo:  p.ProfileCanApproveCirculo,
		CanApproveSaida:    p.ProfileCanApproveSaida,
		CanApproveCarne:    p.ProfileCanApproveCarne,

		CanUnapproveLaunch: p.ProfileCanUnapproveLaunch,
		CanCancelLaunch:    p.ProfileCanCancelLaunch,
		CanEditLaunch:      p.ProfileCanEditLaunch,
		CanDeleteLaunch:    p.ProfileCanDeleteLaunch,
		CanImportLaunches:  p.ProfileCanImportLaunches,

		CanCreateSummary:            p.ProfileCanCreateSummary,
		CanApproveSummaryTreasury:   p.ProfileCanApproveSummaryTreasury,
		CanApproveSummaryAccountant: p.ProfileCanApproveSummaryAccountant,
		CanApproveSummaryDirector:   p.ProfileCanApproveSummaryDirector,
		CanViewSummaries:            p.ProfileCanViewSummaries,
		CanGenerateReports:          p.ProfileCanGenerateReports,
		CanExport:                   p.ProfileCanExport,

		CanManageUsers:           p.ProfileCanManageUsers,
		CanManageProfiles:        p.ProfileCanManageProfiles,
		CanManageCongregations:   p.ProfileCanManageCongregations,
		CanManageContributors:    p.ProfileCanManageContributors,
		CanManageSuppliers:       p.ProfileCanManageSuppliers,
		CanManageClassifications: p.ProfileCanManageClassifications,
		CanImportReferenceData:   p.ProfileCanImportReferenceData,
		CanViewAllCongregations:  p.ProfileCanViewAllCongregations,
	}
}

// ApplyCapabilities writes a capability bag back onto the flag columns.
func (p *ProfileModel) ApplyCapabilities(caps helperAuth.Capabilities) {
	p.ProfileCanLaunchDizimo = caps.CanLaunchDizimo
	p.ProfileCanLaunchOferta = caps.CanLaunchOferta
	p.ProfileCanLaunchVoto = caps.CanLaunchVoto
	p.ProfileCanLaunchEbd = caps.CanLaunchEbd
	p.ProfileCanLaunchCampanha = caps.CanLaunchCampanha
	p.ProfileCanLaunchMissao = caps.CanLaunchMissao
	p.ProfileCanLaunchCirculo = caps.CanLaunchCirculo
	p.ProfileCanLaunchSaida = caps.CanLaunchSaida
	p.ProfileCanLaunchCarne = caps.CanLaunchCarne

	p.ProfileCanApproveDizimo = caps.CanApproveDizimo
	p.ProfileCanApproveOferta = caps.CanApproveOferta
	p.ProfileCanApproveVoto = caps.CanApproveVoto
	p.ProfileCanApproveEbd = caps.CanApproveEbd
	p.ProfileCanApproveCampanha = caps.CanApproveCampanha
	p.ProfileCanApproveMissao = caps.CanApproveMissao
	p.ProfileCanApproveCirculo = caps.CanApproveCirculo
	p.ProfileCanApproveSaida = caps.CanApproveSaida
	p.ProfileCanApproveCarne = caps.CanApproveCarne

	p.ProfileCanUnapproveLaunch = caps.CanUnapproveLaunch
	p.ProfileCanCancelLaunch = caps.CanCancelLaunch
	p.ProfileCanEditLaunch = caps.CanEditLaunch
	p.ProfileCanDeleteLaunch = caps.CanDeleteLaunch
	p.ProfileCanImportLaunches = caps.CanImportLaunches

	p.ProfileCanCreateSummary = caps.CanCreateSummary
	p.ProfileCanApproveSummaryTreasury = caps.CanApproveSummaryTreasury
	p.ProfileCanApproveSummaryAccountant = caps.CanApproveSummaryAccountant
	p.ProfileCanApproveSummaryDirector = caps.CanApproveSummaryDirector
	p.ProfileCanViewSummaries = caps.CanViewSummaries
	p.ProfileCanGenerateReports = caps.CanGenerateReports
	p.ProfileCanExport = caps.CanExport

	p.ProfileCanManageUsers = caps.CanManageUsers
	p.ProfileCanManageProfiles = caps.CanManageProfiles
	p.ProfileCanManageCongregations = caps.CanManageCongregations
	p.ProfileCanManageContributors = caps.CanManageContributors
	p.ProfileCanManageSuppliers = caps.CanManageSuppliers
	p.ProfileCanManageClassifications = caps.CanManageClassifications
	p.ProfileCanImportReferenceData = caps.CanImportReferenceData
	p.ProfileCanViewAllCongregations = caps.CanViewAllCongregations
}

// Duplicate returns an unsaved copy with a new name (profiles are
// copy-on-write in the UI).
func (p ProfileModel) Duplicate(name string) ProfileModel {
	cp := p
	cp.ProfileID = uuid.Nil
	cp.ProfileName = name
	cp.ProfileCreatedAt = time.Time{}
	cp.ProfileUpdatedAt = time.Time{}
	return cp
}
