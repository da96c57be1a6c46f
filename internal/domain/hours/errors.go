package hours

import "errors"

var (
	// ErrHoursNotFound means no business-hours file has ever been saved.
	// Callers treat it as the first-run state, not a failure.
	ErrHoursNotFound = errors.New("business hours not set")

	ErrCorruptHoursFile = errors.New("business hours file is corrupt")
)
