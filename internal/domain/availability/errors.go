package availability

import "errors"

var ErrBadCode = errors.New("availability code must be 0, 1, or 2")
