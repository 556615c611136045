package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	"tesouraria_backend/internals/features/finance/launch/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

func normalLaunch(t constants.LaunchType) *model.LaunchModel {
	day, _ := timex.ParseCalendarDate("2025-03-05")
	m := &model.LaunchModel{
		LaunchID:             uuid.New(),
		LaunchCongregationID: uuid.New(),
		LaunchType:           t,
		LaunchStatus:         constants.LaunchStatusNormal,
		LaunchDate:           day,
		LaunchValue:          decimal.NewFromInt(100),
	}
	if t == constants.LaunchTypeDizimo || t == constants.LaunchTypeCarne {
		m.SetContributor(model.FreeTextSubject("Maria"))
	}
	if t == constants.LaunchTypeSaida {
		id := uuid.New()
		m.LaunchClassificationID = &id
	}
	return m
}

func allCaps() helperAuth.Capabilities {
	return helperAuth.Capabilities{
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
	}
}

var testNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func TestApproveStampsSlot(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeDizimo)
	if err := Transition(m, constants.LaunchStatusApproved, allCaps(), "joao", testNow); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if m.LaunchStatus != constants.LaunchStatusApproved {
		t.Fatalf("status = %s, want APPROVED", m.LaunchStatus)
	}
	if m.LaunchTreasuryApprovedBy == nil || *m.LaunchTreasuryApprovedBy != "joao" {
		t.Error("treasury slot actor not stamped")
	}
	if m.LaunchTreasuryApprovedAt == nil {
		t.Error("treasury slot timestamp not stamped")
	}
}

func TestApproveRequiresTypeCapability(t *testing.T) {
	caps := allCaps()
	caps.CanApproveSaida = false

	m := normalLaunch(constants.LaunchTypeSaida)
	err := Transition(m, constants.LaunchStatusApproved, caps, "joao", testNow)
	if !errors.Is(err, ErrNotApprover) {
		t.Fatalf("err = %v, want ErrNotApprover", err)
	}
	if m.LaunchStatus != constants.LaunchStatusNormal {
		t.Error("failed approval must not change status")
	}
}

func TestUnapproveClearsAllSlots(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeOfertaCulto)
	caps := allCaps()
	if err := Transition(m, constants.LaunchStatusApproved, caps, "joao", testNow); err != nil {
		t.Fatalf("approve: %v", err)
	}
	// a summary-driven approval may have filled the other two slots
	actor := "ana"
	at := testNow
	m.LaunchAccountantApprovedBy, m.LaunchAccountantApprovedAt = &actor, &at
	m.LaunchDirectorApprovedBy, m.LaunchDirectorApprovedAt = &actor, &at

	if err := Transition(m, constants.LaunchStatusNormal, caps, "joao", testNow); err != nil {
		t.Fatalf("unapprove: %v", err)
	}
	if m.LaunchStatus != constants.LaunchStatusNormal {
		t.Fatalf("status = %s, want NORMAL", m.LaunchStatus)
	}
	if m.LaunchTreasuryApprovedBy != nil || m.LaunchTreasuryApprovedAt != nil ||
		m.LaunchAccountantApprovedBy != nil || m.LaunchAccountantApprovedAt != nil ||
		m.LaunchDirectorApprovedBy != nil || m.LaunchDirectorApprovedAt != nil {
		t.Error("unapprove must clear every approval slot")
	}
}

func TestCancelIsTerminal(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeVoto)
	caps := allCaps()
	if err := Transition(m, constants.LaunchStatusCanceled, caps, "joao", testNow); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if m.LaunchCanceledBy == nil || m.LaunchCanceledAt == nil {
		t.Error("cancellation actor/timestamp not stamped")
	}

	err := Transition(m, constants.LaunchStatusNormal, caps, "joao", testNow)
	if !errors.Is(err, ErrCanceledIrreversible) {
		t.Fatalf("revert canceled: err = %v, want ErrCanceledIrreversible", err)
	}
	err = Transition(m, constants.LaunchStatusApproved, caps, "joao", testNow)
	if !errors.Is(err, ErrCanceledIrreversible) {
		t.Fatalf("approve canceled: err = %v, want ErrCanceledIrreversible", err)
	}
}

func TestExportedIsImmutable(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeEbd)
	if err := MarkExported(m); err != nil {
		t.Fatalf("MarkExported: %v", err)
	}

	caps := allCaps()
	for _, target := range []constants.LaunchStatus{
		constants.LaunchStatusNormal,
		constants.LaunchStatusApproved,
		constants.LaunchStatusCanceled,
	} {
		if err := Transition(m, target, caps, "joao", testNow); !errors.Is(err, ErrExportedImmutable) {
			t.Errorf("transition to %s on exported: err = %v, want ErrExportedImmutable", target, err)
		}
	}
	if err := EnsureEditable(m); !errors.Is(err, ErrExportedImmutable) {
		t.Errorf("edit exported: err = %v, want ErrExportedImmutable", err)
	}
	if err := MarkExported(m); !errors.Is(err, ErrExportedImmutable) {
		t.Errorf("re-export: err = %v, want ErrExportedImmutable", err)
	}
}

func TestExportedNotReachableThroughTransition(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeMissao)
	err := Transition(m, constants.LaunchStatusExported, allCaps(), "joao", testNow)
	if !errors.Is(err, ErrExportOnly) {
		t.Fatalf("err = %v, want ErrExportOnly", err)
	}
}

func TestMarkExportedFromApproved(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeCampanha)
	if err := Transition(m, constants.LaunchStatusApproved, allCaps(), "joao", testNow); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := MarkExported(m); err != nil {
		t.Fatalf("MarkExported from APPROVED: %v", err)
	}

	canceled := normalLaunch(constants.LaunchTypeCampanha)
	if err := Transition(canceled, constants.LaunchStatusCanceled, allCaps(), "joao", testNow); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := MarkExported(canceled); err == nil {
		t.Error("canceled launch must not export")
	}
}

func TestCancelBlockedBySummaryAttachment(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeDizimo)
	sid := uuid.New()
	m.LaunchSummaryID = &sid

	err := Transition(m, constants.LaunchStatusCanceled, allCaps(), "joao", testNow)
	if !errors.Is(err, ErrSummaryAttached) {
		t.Fatalf("err = %v, want ErrSummaryAttached", err)
	}
}

func TestEnsureEditable(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeCirculo)
	if err := EnsureEditable(m); err != nil {
		t.Fatalf("NORMAL unattached must be editable: %v", err)
	}

	sid := uuid.New()
	m.LaunchSummaryID = &sid
	if err := EnsureEditable(m); !errors.Is(err, ErrSummaryAttached) {
		t.Fatalf("err = %v, want ErrSummaryAttached", err)
	}

	m.LaunchSummaryID = nil
	m.LaunchStatus = constants.LaunchStatusApproved
	if err := EnsureEditable(m); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("err = %v, want ErrNotEditable", err)
	}
}

func TestValidateNew(t *testing.T) {
	now := testNow

	t.Run("value must be positive", func(t *testing.T) {
		m := normalLaunch(constants.LaunchTypeOfertaCulto)
		m.LaunchValue = decimal.Zero
		if err := ValidateNew(m, now); !errors.Is(err, ErrNonPositiveValue) {
			t.Fatalf("err = %v, want ErrNonPositiveValue", err)
		}
		m.LaunchValue = decimal.NewFromInt(-5)
		if err := ValidateNew(m, now); !errors.Is(err, ErrNonPositiveValue) {
			t.Fatalf("err = %v, want ErrNonPositiveValue", err)
		}
	})

	t.Run("future date rejected, same day allowed", func(t *testing.T) {
		m := normalLaunch(constants.LaunchTypeOfertaCulto)
		m.LaunchDate = timex.LocalMidnightUTC(now)
		if err := ValidateNew(m, now); err != nil {
			t.Fatalf("same day: %v", err)
		}
		m.LaunchDate = timex.NextLocalMidnight(now)
		if err := ValidateNew(m, now); !errors.Is(err, ErrFutureDate) {
			t.Fatalf("err = %v, want ErrFutureDate", err)
		}
	})

	t.Run("expense requires classification", func(t *testing.T) {
		m := normalLaunch(constants.LaunchTypeSaida)
		m.LaunchClassificationID = nil
		if err := ValidateNew(m, now); !errors.Is(err, ErrMissingClassifier) {
			t.Fatalf("err = %v, want ErrMissingClassifier", err)
		}
	})

	t.Run("tithe and carnet require contributor identity", func(t *testing.T) {
		for _, typ := range []constants.LaunchType{constants.LaunchTypeDizimo, constants.LaunchTypeCarne} {
			m := normalLaunch(typ)
			m.SetContributor(model.SubjectRef{})
			if err := ValidateNew(m, now); !errors.Is(err, ErrMissingContributor) {
				t.Fatalf("%s: err = %v, want ErrMissingContributor", typ, err)
			}
			m.SetContributor(model.RegisteredSubject(uuid.New()))
			if err := ValidateNew(m, now); err != nil {
				t.Fatalf("%s with registered contributor: %v", typ, err)
			}
		}
	})
}

func TestSubjectRefIsUnion(t *testing.T) {
	m := normalLaunch(constants.LaunchTypeDizimo)
	m.SetContributor(model.RegisteredSubject(uuid.New()))
	if m.LaunchContributorName != nil {
		t.Error("registered subject must clear the free-text name")
	}
	m.SetContributor(model.FreeTextSubject("Maria"))
	if m.LaunchContributorID != nil {
		t.Error("free-text subject must clear the registered id")
	}
}
