package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a business time in 24-hour integer form (HH00 or HH30), or one of
// the two sentinels used by the business-hours matrix.
type Code int

const (
	// Closed marks a weekday the business does not open at all.
	Closed Code = -1
	// AllDay marks a weekday the business is open around the clock.
	AllDay Code = -2
)

const (
	displayClosed = "Closed"
	displayAllDay = "24 HR"
)

// Valid reports whether v is a sentinel or a real half-hour time.
func Valid(v int) bool {
	if v == int(Closed) || v == int(AllDay) {
		return true
	}
	h, m := v/100, v%100
	return h >= 0 && h <= 23 && (m == 0 || m == 30)
}

// Parse converts a persisted integer into a Code, rejecting anything outside
// the sentinel-or-half-hour domain.
func Parse(v int) (Code, error) {
	if !Valid(v) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return Code(v), nil
}

// Display renders a Code in 12-hour form: "Closed", "24 HR", or "H:MMAM|PM"
// with no leading zero on the hour. Midnight is 12:00AM, noon 12:00PM.
func (c Code) Display() string {
	if c == Closed {
		return displayClosed
	}
	if c == AllDay {
		return displayAllDay
	}

	h := int(c) / 100
	m := int(c) % 100

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d:%02d%s", h, m, suffix)
}

// FromDisplay is the inverse of Display. It accepts the two sentinel strings
// and 12-hour times with or without a space before the AM/PM marker.
func FromDisplay(s string) (Code, error) {
	switch s {
	case displayClosed:
		return Closed, nil
	case displayAllDay:
		return AllDay, nil
	}

	var pm bool
	var rest string
	switch {
	case strings.HasSuffix(s, "AM"):
		rest = strings.TrimSuffix(s, "AM")
	case strings.HasSuffix(s, "PM"):
		pm = true
		rest = strings.TrimSuffix(s, "PM")
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadTimeString, s)
	}
	rest = strings.TrimSuffix(rest, " ")

	hStr, mStr, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeString, s)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil || h < 1 || h > 12 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeString, s)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil || len(mStr) != 2 || (m != 0 && m != 30) {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeString, s)
	}

	if pm && h != 12 {
		h += 12
	}
	if !pm && h == 12 {
		h = 0
	}

	return Code(h*100 + m), nil
}

// EnumerateRange lists every half-hour mark from start to end inclusive in
// display form, stepping 30 minutes and wrapping 11:30PM back to 12:00AM, so
// a range of 2000..430 covers 8:00PM through 4:30AM. Both ends must be real
// half-hour marks; sentinels and unaligned values make the walk diverge.
func EnumerateRange(start, end Code) []string {
	times := []string{start.Display()}

	t := int(start)
	for {
		if t%100 == 0 {
			t += 30
		} else {
			t += 70
		}
		if t == 2400 {
			t = 0
		}

		times = append(times, Code(t).Display())
		if t == int(end) {
			return times
		}
	}
}
