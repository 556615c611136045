// file: internals/features/finance/launch/service/launch_service.go
package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tesouraria_backend/internals/constants"
	"tesouraria_backend/internals/features/finance/launch/model"
	helperAuth "tesouraria_backend/internals/helpers/auth"
	"tesouraria_backend/internals/helpers/timex"
)

/* =========================
   Domain errors
   ========================= */

var (
	ErrExportedImmutable    = errors.New("exported launches cannot be modified")
	ErrCanceledIrreversible = errors.New("canceled launches cannot return to normal")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrExportOnly           = errors.New("EXPORTED can only be set by the export routine")
	ErrNotApprover          = errors.New("user cannot approve this launch type")
	ErrNotLauncher          = errors.New("user cannot create this launch type")
	ErrCannotUnapprove      = errors.New("user cannot revert approvals")
	ErrCannotCancel         = errors.New("user cannot cancel launches")
	ErrSummaryAttached      = errors.New("launch is attached to a summary")
	ErrNotEditable          = errors.New("only NORMAL launches can be edited")
	ErrNonPositiveValue     = errors.New("launch value must be greater than zero")
	ErrFutureDate           = errors.New("launch date cannot be in the future")
	ErrMissingClassifier    = errors.New("expense launches require a classification")
	ErrMissingContributor   = errors.New("tithe and carnet launches require a contributor identity")
)

/* =========================
   Validation
   ========================= */

// ValidateNew checks the domain rules that apply at creation and on every
// edit. Callers normalize LaunchDate through timex before reaching here.
func ValidateNew(m *model.LaunchModel, now time.Time) error {
	if !m.LaunchType.Valid() {
		return ErrInvalidTransition
	}
	if !m.LaunchValue.GreaterThan(decimal.Zero) {
		return ErrNonPositiveValue
	}
	if timex.IsFutureDay(m.LaunchDate, now) {
		return ErrFutureDate
	}
	if m.LaunchType == constants.LaunchTypeSaida && m.LaunchClassificationID == nil {
		return ErrMissingClassifier
	}
	if m.LaunchType == constants.LaunchTypeDizimo || m.LaunchType == constants.LaunchTypeCarne {
		if !m.HasContributorIdentity() {
			return ErrMissingContributor
		}
	}
	return nil
}

/* =========================
   State machine
   ========================= */

// Transition applies a status change requested through the admin surface.
// EXPORTED is never a legal target here; MarkExported is the only path.
func Transition(m *model.LaunchModel, target constants.LaunchStatus, caps helperAuth.Capabilities, actor string, now time.Time) error {
	if target == constants.LaunchStatusExported {
		return ErrExportOnly
	}
	if !target.Valid() {
		return ErrInvalidTransition
	}
	switch m.LaunchStatus {
	case constants.LaunchStatusExported:
		return ErrExportedImmutable
	case constants.LaunchStatusCanceled:
		return ErrCanceledIrreversible
	}

	switch target {
	case constants.LaunchStatusApproved:
		return approve(m, caps, actor, now)
	case constants.LaunchStatusNormal:
		return unapprove(m, caps)
	case constants.LaunchStatusCanceled:
		return cancel(m, caps, actor, now)
	}
	return ErrInvalidTransition
}

func approve(m *model.LaunchModel, caps helperAuth.Capabilities, actor string, now time.Time) error {
	if m.LaunchStatus != constants.LaunchStatusNormal {
		return ErrInvalidTransition
	}
	if !caps.CanApprove(m.LaunchType) {
		return ErrNotApprover
	}
	m.LaunchStatus = constants.LaunchStatusApproved
	m.LaunchTreasuryApprovedBy = &actor
	at := now.UTC()
	m.LaunchTreasuryApprovedAt = &at
	return nil
}

// unapprove returns an approved launch to NORMAL and clears every approval
// slot, including slots stamped later by summary approval.
func unapprove(m *model.LaunchModel, caps helperAuth.Capabilities) error {
	if m.LaunchStatus != constants.LaunchStatusApproved {
		return ErrInvalidTransition
	}
	if !caps.CanUnapproveLaunch {
		return ErrCannotUnapprove
	}
	m.LaunchStatus = constants.LaunchStatusNormal
	m.LaunchTreasuryApprovedBy, m.LaunchTreasuryApprovedAt = nil, nil
	m.LaunchAccountantApprovedBy, m.LaunchAccountantApprovedAt = nil, nil
	m.LaunchDirectorApprovedBy, m.LaunchDirectorApprovedAt = nil, nil
	return nil
}

func cancel(m *model.LaunchModel, caps helperAuth.Capabilities, actor string, now time.Time) error {
	if m.LaunchStatus != constants.LaunchStatusNormal {
		return ErrInvalidTransition
	}
	if !caps.CanCancelLaunch {
		return ErrCannotCancel
	}
	if m.LaunchSummaryID != nil {
		return ErrSummaryAttached
	}
	m.LaunchStatus = constants.LaunchStatusCanceled
	m.LaunchCanceledBy = &actor
	at := now.UTC()
	m.LaunchCanceledAt = &at
	return nil
}

// MarkExported is called exclusively by the export routine after the
// workbook has been written successfully.
func MarkExported(m *model.LaunchModel) error {
	switch m.LaunchStatus {
	case constants.LaunchStatusNormal, constants.LaunchStatusApproved:
		m.LaunchStatus = constants.LaunchStatusExported
		return nil
	case constants.LaunchStatusExported:
		return ErrExportedImmutable
	}
	return ErrInvalidTransition
}

/* =========================
   Edit / delete guards
   ========================= */

// EnsureEditable names the first blocking condition, so the caller can put
// it in the error response verbatim.
func EnsureEditable(m *model.LaunchModel) error {
	switch m.LaunchStatus {
	case constants.LaunchStatusExported:
		return ErrExportedImmutable
	case constants.LaunchStatusCanceled, constants.LaunchStatusApproved:
		return ErrNotEditable
	}
	if m.LaunchSummaryID != nil {
		return ErrSummaryAttached
	}
	return nil
}

// EnsureDeletable mirrors the edit guard; deletion shares its conditions.
func EnsureDeletable(m *model.LaunchModel) error {
	return EnsureEditable(m)
}
