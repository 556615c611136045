package auth

import (
	"tesouraria_backend/internals/constants"
)

// Capabilities is the flat permission bag mirrored from the user's profile
// at login. It is built once per request by the auth middleware and passed
// explicitly into service calls — never read from globals.
type Capabilities struct {
	// launch entry, per type
	CanLaunchDizimo   bool `json:"can_launch_dizimo"`
	CanLaunchOferta   bool `json:"can_launch_oferta"`
	CanLaunchVoto     bool `json:"can_launch_voto"`
	CanLaunchEbd      bool `json:"can_launch_ebd"`
	CanLaunchCampanha bool `json:"can_launch_campanha"`
	CanLaunchMissao   bool `json:"can_launch_missao"`
	CanLaunchCirculo  bool `json:"can_launch_circulo"`
	CanLaunchSaida    bool `json:"can_launch_saida"`
	CanLaunchCarne    bool `json:"can_launch_carne"`

	// launch approval, per type
	CanApproveDizimo   bool `json:"can_approve_dizimo"`
	CanApproveOferta   bool `json:"can_approve_oferta"`
	CanApproveVoto     bool `json:"can_approve_voto"`
	CanApproveEbd      bool `json:"can_approve_ebd"`
	CanApproveCampanha bool `json:"can_approve_campanha"`
	CanApproveMissao   bool `json:"can_approve_missao"`
	CanApproveCirculo  bool `json:"can_approve_circulo"`
	CanApproveSaida    bool `json:"can_approve_saida"`
	CanApproveCarne    bool `json:"can_approve_carne"`

	// launch lifecycle
	CanUnapproveLaunch bool `json:"can_unapprove_launch"`
	CanCancelLaunch    bool `json:"can_cancel_launch"`
	CanEditLaunch      bool `json:"can_edit_launch"`
	CanDeleteLaunch    bool `json:"can_delete_launch"`
	CanImportLaunches  bool `json:"can_import_launches"`

	// summaries / reports / export
	CanCreateSummary            bool `json:"can_create_summary"`
	CanApproveSummaryTreasury   bool `json:"can_approve_summary_treasury"`
	CanApproveSummaryAccountant bool `json:"can_approve_summary_accountant"`
	CanApproveSummaryDirector   bool `json:"can_approve_summary_director"`
	CanViewSummaries            bool `json:"can_view_summaries"`
	CanGenerateReports          bool `json:"can_generate_reports"`
	CanExport                   bool `json:"can_export"`

	// administration
	CanManageUsers           bool `json:"can_manage_users"`
	CanManageProfiles        bool `json:"can_manage_profiles"`
	CanManageCongregations   bool `json:"can_manage_congregations"`
	CanManageContributors    bool `json:"can_manage_contributors"`
	CanManageSuppliers       bool `json:"can_manage_suppliers"`
	CanManageClassifications bool `json:"can_manage_classifications"`
	CanImportReferenceData   bool `json:"can_import_reference_data"`
	CanViewAllCongregations  bool `json:"can_view_all_congregations"`
}

// CanApprove maps a launch type to its approval capability. The mapping is
// total: every launch type has exactly one approval flag.
func (caps Capabilities) CanApprove(t constants.LaunchType) bool {
	switch t {
	case constants.LaunchTypeDizimo:
		return caps.CanApproveDizimo
	case constants.LaunchTypeOfertaCulto:
		return caps.CanApproveOferta
	case constants.LaunchTypeVoto:
		return caps.CanApproveVoto
	case constants.LaunchTypeEbd:
		return caps.CanApproveEbd
	case constants.LaunchTypeCampanha:
		return caps.CanApproveCampanha
	case constants.LaunchTypeMissao:
		return caps.CanApproveMissao
	case constants.LaunchTypeCirculo:
		return caps.CanApproveCirculo
	case constants.LaunchTypeSaida:
		return caps.CanApproveSaida
	case constants.LaunchTypeCarne:
		return caps.CanApproveCarne
	}
	return false
}

// CanLaunch maps a launch type to its entry capability (also total).
func (caps Capabilities) CanLaunch(t constants.LaunchType) bool {
	switch t {
	case constants.LaunchTypeDizimo:
		return caps.CanLaunchDizimo
	case constants.LaunchTypeOfertaCulto:
		return caps.CanLaunchOferta
	case constants.LaunchTypeVoto:
		return caps.CanLaunchVoto
	case constants.LaunchTypeEbd:
		return caps.CanLaunchEbd
	case constants.LaunchTypeCampanha:
		return caps.CanLaunchCampanha
	case constants.LaunchTypeMissao:
		return caps.CanLaunchMissao
	case constants.LaunchTypeCirculo:
		return caps.CanLaunchCirculo
	case constants.LaunchTypeSaida:
		return caps.CanLaunchSaida
	case constants.LaunchTypeCarne:
		return caps.CanLaunchCarne
	}
	return false
}
