// file: internals/features/church/congregation/service/congregation_service.go
package service

import "errors"

var ErrHasDependents = errors.New("congregation has contributors or launches attached")

// EnsureDeletable blocks removal while any contributor or launch still
// points at the congregation.
func EnsureDeletable(contributors, launches int64) error {
	if contributors > 0 || launches > 0 {
		return ErrHasDependents
	}
	return nil
}
