package auth

import (
	"testing"

	"tesouraria_backend/internals/constants"
)

// flip builds a Capabilities with exactly one per-type flag set, so the
// totality tests can prove one-to-one mapping.
func flipApprove(t constants.LaunchType) Capabilities {
	var caps Capabilities
	switch t {
	case constants.LaunchTypeDizimo:
		caps.CanApproveDizimo = true
	case constants.LaunchTypeOfertaCulto:
		caps.CanApproveOferta = true
	case constants.LaunchTypeVoto:
		caps.CanApproveVoto = true
	case constants.LaunchTypeEbd:
		caps.CanApproveEbd = true
	case constants.LaunchTypeCampanha:
		caps.CanApproveCampanha = true
	case constants.LaunchTypeMissao:
		caps.CanApproveMissao = true
	case constants.LaunchTypeCirculo:
		caps.CanApproveCirculo = true
	case constants.LaunchTypeSaida:
		caps.CanApproveSaida = true
	case constants.LaunchTypeCarne:
		caps.CanApproveCarne = true
	}
	return caps
}

func TestCanApproveIsTotalAndOneToOne(t *testing.T) {
	for _, typ := range constants.AllLaunchTypes {
		caps := flipApprove(typ)
		if !caps.CanApprove(typ) {
			t.Errorf("CanApprove(%s) false with its own flag set", typ)
		}
		for _, other := range constants.AllLaunchTypes {
			if other == typ {
				continue
			}
			if caps.CanApprove(other) {
				t.Errorf("flag for %s leaked into CanApprove(%s)", typ, other)
			}
		}
	}
}

func TestCanLaunchIsTotal(t *testing.T) {
	all := Capabilities{
		CanLaunchDizimo:   true,
		CanLaunchOferta:   true,
		CanLaunchVoto:     true,
		CanLaunchEbd:      true,
		CanLaunchCampanha: true,
		CanLaunchMissao:   true,
		CanLaunchCirculo:  true,
		CanLaunchSaida:    true,
		CanLaunchCarne:    true,
	}
	for _, typ := range constants.AllLaunchTypes {
		if !all.CanLaunch(typ) {
			t.Errorf("CanLaunch(%s) has no flag", typ)
		}
	}

	var none Capabilities
	for _, typ := range constants.AllLaunchTypes {
		if none.CanLaunch(typ) || none.CanApprove(typ) {
			t.Errorf("zero capabilities must deny %s", typ)
		}
	}
	if none.CanLaunch(constants.LaunchType("BOGUS")) {
		t.Error("unknown type must be denied")
	}
}
