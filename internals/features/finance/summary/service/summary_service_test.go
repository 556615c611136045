package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
	"tesouraria_backend/internals/features/finance/summary/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func launch(t constants.LaunchType, value int64) launchModel.LaunchModel {
	return launchModel.LaunchModel{
		LaunchID:     uuid.New(),
		LaunchType:   t,
		LaunchStatus: constants.LaunchStatusNormal,
		LaunchValue:  decimal.NewFromInt(value),
	}
}

func TestAggregate(t *testing.T) {
	rows := []launchModel.LaunchModel{
		launch(constants.LaunchTypeDizimo, 100),
		launch(constants.LaunchTypeDizimo, 50),
		launch(constants.LaunchTypeOfertaCulto, 30),
		launch(constants.LaunchTypeCampanha, 20),
		launch(constants.LaunchTypeCarne, 10), // folds into campanha
		launch(constants.LaunchTypeSaida, 80),
	}

	breakdown, totals := Aggregate(rows)

	if got := breakdown[constants.AccountCategoryDizimo]; got.Count != 2 || !got.Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("dizimo = %+v, want count 2 total 150", got)
	}
	if got := breakdown[constants.AccountCategoryCampanha]; got.Count != 2 || !got.Total.Equal(decimal.NewFromInt(30)) {
		t.Errorf("campanha (incl. carnê) = %+v, want count 2 total 30", got)
	}
	if totals.EntryCount != 5 || !totals.EntryTotal.Equal(decimal.NewFromInt(210)) {
		t.Errorf("entries = %d/%s, want 5/210", totals.EntryCount, totals.EntryTotal)
	}
	if totals.ExitCount != 1 || !totals.ExitTotal.Equal(decimal.NewFromInt(80)) {
		t.Errorf("exits = %d/%s, want 1/80", totals.ExitCount, totals.ExitTotal)
	}
}

func TestAggregateSkipsCanceled(t *testing.T) {
	canceled := launch(constants.LaunchTypeDizimo, 999)
	canceled.LaunchStatus = constants.LaunchStatusCanceled

	breakdown, totals := Aggregate([]launchModel.LaunchModel{
		canceled,
		launch(constants.LaunchTypeDizimo, 100),
	})

	if got := breakdown[constants.AccountCategoryDizimo]; got.Count != 1 || !got.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("dizimo = %+v, canceled launch must not count", got)
	}
	if totals.EntryCount != 1 {
		t.Errorf("entry count = %d, want 1", totals.EntryCount)
	}
}

func TestFillRoundTripsBreakdown(t *testing.T) {
	breakdown, totals := Aggregate([]launchModel.LaunchModel{
		launch(constants.LaunchTypeEbd, 40),
	})

	var s model.SummaryModel
	if err := Fill(&s, breakdown, totals); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	got, err := s.GetBreakdown()
	if err != nil {
		t.Fatalf("GetBreakdown: %v", err)
	}
	if cell := got[constants.AccountCategoryEbd]; cell.Count != 1 || !cell.Total.Equal(decimal.NewFromInt(40)) {
		t.Errorf("round-tripped ebd = %+v", cell)
	}
	if s.SummaryEntryCount != 1 || !s.SummaryEntryTotal.Equal(decimal.NewFromInt(40)) {
		t.Errorf("headline totals = %d/%s", s.SummaryEntryCount, s.SummaryEntryTotal)
	}
}

func TestApproveSlotIndependence(t *testing.T) {
	caps := helperAuth.Capabilities{
		CanApproveSummaryTreasury:   true,
		CanApproveSummaryAccountant: true,
	}

	var s model.SummaryModel
	if err := ApproveSlot(&s, SlotTreasury, caps, "joao", testNow); err != nil {
		t.Fatalf("treasury: %v", err)
	}
	if !s.SummaryTreasuryApproved || s.SummaryTreasuryApprovedBy == nil || *s.SummaryTreasuryApprovedBy != "joao" {
		t.Error("treasury slot not stamped")
	}
	if s.SummaryAccountantApproved || s.SummaryDirectorApproved {
		t.Error("other slots must stay untouched")
	}

	if err := ApproveSlot(&s, SlotTreasury, caps, "ana", testNow); !errors.Is(err, ErrSlotAlreadyApproved) {
		t.Fatalf("re-approve: err = %v, want ErrSlotAlreadyApproved", err)
	}
	if *s.SummaryTreasuryApprovedBy != "joao" {
		t.Error("re-approval must not overwrite the original actor")
	}

	if err := ApproveSlot(&s, SlotDirector, caps, "joao", testNow); !errors.Is(err, ErrNotSummaryApprover) {
		t.Fatalf("director without cap: err = %v, want ErrNotSummaryApprover", err)
	}
	if err := ApproveSlot(&s, Slot("bogus"), caps, "joao", testNow); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("bogus slot: err = %v, want ErrUnknownSlot", err)
	}
}

func TestMirrorApproval(t *testing.T) {
	l := launch(constants.LaunchTypeDizimo, 100)
	MirrorApproval(&l, SlotAccountant, "ana", testNow)

	if l.LaunchAccountantApprovedBy == nil || *l.LaunchAccountantApprovedBy != "ana" {
		t.Error("accountant slot not mirrored")
	}
	if l.LaunchStatus != constants.LaunchStatusApproved {
		t.Errorf("status = %s, want APPROVED after first mirrored slot", l.LaunchStatus)
	}

	exported := launch(constants.LaunchTypeDizimo, 100)
	exported.LaunchStatus = constants.LaunchStatusExported
	MirrorApproval(&exported, SlotTreasury, "ana", testNow)
	if exported.LaunchTreasuryApprovedBy != nil {
		t.Error("exported launch must not be touched by summary approval")
	}
}

func TestAttach(t *testing.T) {
	s := model.SummaryModel{
		SummaryID:       uuid.New(),
		SummaryDateFrom: time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC),
		SummaryDateTo:   time.Date(2025, 3, 31, 3, 0, 0, 0, time.UTC),
	}

	l := launch(constants.LaunchTypeVoto, 10)
	l.LaunchDate = time.Date(2025, 3, 15, 3, 0, 0, 0, time.UTC)
	if err := Attach(&s, &l); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if l.LaunchSummaryID == nil || *l.LaunchSummaryID != s.SummaryID {
		t.Error("summary id not set on launch")
	}

	if err := Attach(&s, &l); !errors.Is(err, ErrLaunchAlreadyFrozen) {
		t.Fatalf("double attach: err = %v, want ErrLaunchAlreadyFrozen", err)
	}

	outside := launch(constants.LaunchTypeVoto, 10)
	outside.LaunchDate = time.Date(2025, 4, 2, 3, 0, 0, 0, time.UTC)
	if err := Attach(&s, &outside); !errors.Is(err, ErrLaunchOutsidePeriod) {
		t.Fatalf("outside period: err = %v, want ErrLaunchOutsidePeriod", err)
	}
}
