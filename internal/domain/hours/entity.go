package hours

import "github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"

// NumDays indexes Monday=0 through Sunday=6.
const NumDays = 7

// BusinessHours is the open/close matrix for the seven weekdays. A day is
// either a real open/close pair of half-hour times, timecode.Closed, or
// timecode.AllDay. Nothing ties open < close; cross-midnight semantics are a
// display concern handled with timecode.EnumerateRange.
type BusinessHours struct {
	Open  [NumDays]timecode.Code
	Close [NumDays]timecode.Code
}

// OpenAt reports whether the business is open at time t on the given weekday.
// Real open/close pairs use a half-open interval: open at the opening time,
// closed again exactly at the closing time. The predicate assumes close is
// not before open within the same day.
func (b BusinessHours) OpenAt(t timecode.Code, day int) bool {
	if b.Open[day] == timecode.AllDay {
		return true
	}
	if b.Open[day] == timecode.Closed {
		return false
	}
	return t >= b.Open[day] && t < b.Close[day]
}
