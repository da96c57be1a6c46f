package timecode

import "errors"

var (
	ErrBadTimeString = errors.New("unrecognized time string")
	ErrOutOfRange    = errors.New("time value outside the half-hour domain")
)
