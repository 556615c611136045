package model

import (
	"testing"

	"github.com/google/uuid"

	helperAuth "tesouraria_backend/internals/helpers/auth"
)

func TestCapabilitiesRoundTrip(t *testing.T) {
	caps := helperAuth.Capabilities{
		CanLaunchDizimo:           true,
		CanApproveSaida:           true,
		CanUnapproveLaunch:        true,
		CanCreateSummary:          true,
		CanApproveSummaryDirector: true,
		CanExport:                 true,
		CanManageUsers:            true,
		CanViewAllCongregations:   true,
	}

	var p ProfileModel
	p.ApplyCapabilities(caps)
	got := p.ToCapabilities()

	if got != caps {
		t.Fatalf("round trip lost flags:\n got  %+v\n want %+v", got, caps)
	}
}

func TestDuplicateCopiesFlagsNotIdentity(t *testing.T) {
	var p ProfileModel
	p.ProfileID = uuid.New()
	p.ProfileName = "Tesoureiro"
	p.ApplyCapabilities(helperAuth.Capabilities{CanLaunchDizimo: true, CanExport: true})

	cp := p.Duplicate("Tesoureiro Auxiliar")
	if cp.ProfileName != "Tesoureiro Auxiliar" {
		t.Fatalf("name = %q", cp.ProfileName)
	}
	if cp.ProfileID != uuid.Nil {
		t.Error("duplicate must start with a fresh id")
	}
	if cp.ToCapabilities() != p.ToCapabilities() {
		t.Error("duplicate must carry the same capability flags")
	}
}
