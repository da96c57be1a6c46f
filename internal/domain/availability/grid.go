package availability

import (
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
)

// Code is an employee's willingness to work one half-hour slot on one weekday.
type Code byte

const (
	Unavailable Code = 0
	Alternate   Code = 1
	Preferred   Code = 2
)

const (
	// NumRows is the number of half-hour slots in a day: row 0 is 00:00,
	// row 47 is 23:30.
	NumRows = 48
	// NumDays indexes Monday=0 through Sunday=6.
	NumDays = 7
)

// Grid holds one employee's availability codes for a full week. The zero
// value is all-Unavailable, which is exactly the state of a brand-new
// employee. Being an array type, assignment copies the whole week, so a
// submission replaces all 336 cells at once and never part of them.
type Grid [NumRows][NumDays]Code

// NewGrid returns an all-Unavailable grid.
func NewGrid() Grid {
	return Grid{}
}

// At returns the code at the given slot. Out-of-bounds indices are a
// programming error and panic.
func (g *Grid) At(row, day int) Code {
	return g[row][day]
}

// Set writes the code at the given slot. An index outside the grid or a code
// outside the three known values is a programming error.
func (g *Grid) Set(row, day int, c Code) {
	if c > Preferred {
		panic(fmt.Sprintf("availability: invalid code %d", c))
	}
	g[row][day] = c
}

// ReplaceAll swaps in a whole new week of codes.
func (g *Grid) ReplaceAll(next Grid) {
	*g = next
}

// SlotTime converts a row index into its 24-hour time code: row 17 is 08:30,
// stored as 830.
func SlotTime(row int) timecode.Code {
	return timecode.Code(row/2*100 + row%2*30)
}

// ParseCode converts a persisted digit into a Code.
func ParseCode(v int) (Code, error) {
	if v < int(Unavailable) || v > int(Preferred) {
		return 0, fmt.Errorf("%w: %d", ErrBadCode, v)
	}
	return Code(v), nil
}
