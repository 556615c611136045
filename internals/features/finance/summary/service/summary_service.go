// file: internals/features/finance/summary/service/summary_service.go
package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	launchModel "tesouraria_backend/internals/features/finance/launch/model"
	"tesouraria_backend/internals/features/finance/summary/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
)

var (
	ErrNotSummaryApprover   = errors.New("user cannot approve this summary slot")
	ErrSlotAlreadyApproved  = errors.New("summary slot already approved")
	ErrUnknownSlot          = errors.New("unknown approval slot")
	ErrEmptyPeriod          = errors.New("no launches in the requested period")
	ErrInvertedPeriod       = errors.New("period end precedes period start")
	ErrLaunchAlreadyFrozen  = errors.New("launch already attached to a summary")
	ErrLaunchOutsidePeriod  = errors.New("launch outside the summary period")
)

/* =========================
   Aggregation
   ========================= */

// Totals carries the headline numbers next to the per-category breakdown.
type Totals struct {
	EntryCount int
	EntryTotal decimal.Decimal
	ExitCount  int
	ExitTotal  decimal.Decimal
}

// Aggregate partitions launches by account category and sums both sides.
// Canceled launches never contribute; callers exclude them from the query,
// this keeps the math right even if one slips through.
func Aggregate(rows []launchModel.LaunchModel) (model.Breakdown, Totals) {
	breakdown := model.Breakdown{}
	totals := Totals{EntryTotal: decimal.Zero, ExitTotal: decimal.Zero}

	for i := range rows {
		l := &rows[i]
		if l.LaunchStatus == constants.LaunchStatusCanceled {
			continue
		}
		cat := constants.AccountCategoryFor(l.LaunchType)
		agg := breakdown[cat]
		agg.Count++
		agg.Total = agg.Total.Add(l.LaunchValue)
		breakdown[cat] = agg

		if l.LaunchType.IsEntry() {
			totals.EntryCount++
			totals.EntryTotal = totals.EntryTotal.Add(l.LaunchValue)
		} else {
			totals.ExitCount++
			totals.ExitTotal = totals.ExitTotal.Add(l.LaunchValue)
		}
	}
	return breakdown, totals
}

// Fill writes an aggregation result onto the summary row.
func Fill(s *model.SummaryModel, breakdown model.Breakdown, totals Totals) error {
	if err := s.SetBreakdown(breakdown); err != nil {
		return err
	}
	s.SummaryEntryCount = totals.EntryCount
	s.SummaryEntryTotal = totals.EntryTotal
	s.SummaryExitCount = totals.ExitCount
	s.SummaryExitTotal = totals.ExitTotal
	return nil
}

/* =========================
   Approval slots
   ========================= */

type Slot string

const (
	SlotTreasury   Slot = "treasury"
	SlotAccountant Slot = "accountant"
	SlotDirector   Slot = "director"
)

func (s Slot) Valid() bool {
	switch s {
	case SlotTreasury, SlotAccountant, SlotDirector:
		return true
	}
	return false
}

// ApproveSlot stamps one of the three independent slots. Slots never unset;
// reverting goes through the launch status endpoint instead.
func ApproveSlot(s *model.SummaryModel, slot Slot, caps helperAuth.Capabilities, actor string, now time.Time) error {
	at := now.UTC()
	switch slot {
	case SlotTreasury:
		if !caps.CanApproveSummaryTreasury {
			return ErrNotSummaryApprover
		}
		if s.SummaryTreasuryApproved {
			return ErrSlotAlreadyApproved
		}
		s.SummaryTreasuryApproved = true
		s.SummaryTreasuryApprovedBy = &actor
		s.SummaryTreasuryApprovedAt = &at
	case SlotAccountant:
		if !caps.CanApproveSummaryAccountant {
			return ErrNotSummaryApprover
		}
		if s.SummaryAccountantApproved {
			return ErrSlotAlreadyApproved
		}
		s.SummaryAccountantApproved = true
		s.SummaryAccountantApprovedBy = &actor
		s.SummaryAccountantApprovedAt = &at
	case SlotDirector:
		if !caps.CanApproveSummaryDirector {
			return ErrNotSummaryApprover
		}
		if s.SummaryDirectorApproved {
			return ErrSlotAlreadyApproved
		}
		s.SummaryDirectorApproved = true
		s.SummaryDirectorApprovedBy = &actor
		s.SummaryDirectorApprovedAt = &at
	default:
		return ErrUnknownSlot
	}
	return nil
}

// MirrorApproval copies a summary slot approval onto one attached launch.
// The first mirrored slot also moves a NORMAL launch to APPROVED; exported
// and canceled launches are left untouched.
func MirrorApproval(l *launchModel.LaunchModel, slot Slot, actor string, now time.Time) {
	switch l.LaunchStatus {
	case constants.LaunchStatusExported, constants.LaunchStatusCanceled:
		return
	}
	at := now.UTC()
	switch slot {
	case SlotTreasury:
		l.LaunchTreasuryApprovedBy = &actor
		l.LaunchTreasuryApprovedAt = &at
	case SlotAccountant:
		l.LaunchAccountantApprovedBy = &actor
		l.LaunchAccountantApprovedAt = &at
	case SlotDirector:
		l.LaunchDirectorApprovedBy = &actor
		l.LaunchDirectorApprovedAt = &at
	}
	if l.LaunchStatus == constants.LaunchStatusNormal {
		l.LaunchStatus = constants.LaunchStatusApproved
	}
}

/* =========================
   Attachment
   ========================= */

// Attach freezes a launch under the summary. Canceled launches are skipped
// by the caller's query; a second attachment is a domain error.
func Attach(s *model.SummaryModel, l *launchModel.LaunchModel) error {
	if l.LaunchSummaryID != nil {
		return ErrLaunchAlreadyFrozen
	}
	if l.LaunchDate.Before(s.SummaryDateFrom) || l.LaunchDate.After(s.SummaryDateTo) {
		return ErrLaunchOutsidePeriod
	}
	id := s.SummaryID
	l.LaunchSummaryID = &id
	return nil
}
