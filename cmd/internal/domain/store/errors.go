package store

import (
	"errors"
	"fmt"

	"salondesk/cmd/internal/domain/entity"
)

// ErrNotFound is returned by updates and deletes that target an id the
// collection does not hold. The collection is left untouched.
var ErrNotFound = errors.New("record not found")

// ErrSchedulingConflict is returned when an appointment would overlap a
// non-cancelled appointment of the same staff member on the same date.
var ErrSchedulingConflict = errors.New("scheduling conflict")

// ConflictError carries the appointments that blocked a booking. It matches
// ErrSchedulingConflict under errors.Is.
type ConflictError struct {
	Conflicts []entity.Appointment
}

func (e *ConflictError) Error() string {
	ids := make([]int, len(e.Conflicts))
	for i, c := range e.Conflicts {
		ids[i] = c.ID
	}
	return fmt.Sprintf("%s with appointments %v", ErrSchedulingConflict, ids)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSchedulingConflict
}
