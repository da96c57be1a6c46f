package employee

import (
	"fmt"
	"strings"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/availability"
)

// Employee is one staff member's record: identity, contact info, requested
// weekly hour bounds, submission audit fields, and the availability grid for
// the week. The roster service owns the canonical copies; everything handed
// outward is a value copy.
type Employee struct {
	// FileKey is the stable storage identifier, "First_Last". It is derived
	// from the full name and doubles as the record's file name.
	FileKey     string
	FullName    string
	DisplayName string

	Position string
	Phone    string

	MinHours int
	MaxHours int

	// LastSubmission is "Never" until the first availability submission,
	// then an MM/dd/yy date string.
	LastSubmission string
	Comment        string

	Avail availability.Grid
}

// New creates a brand-new employee. The full name must split into exactly a
// first and a last token; middle names and single-token names are rejected.
func New(fullName, position, phone string) (Employee, error) {
	first, last, err := splitFullName(fullName)
	if err != nil {
		return Employee{}, err
	}

	return Employee{
		FileKey:        first + "_" + last,
		FullName:       first + " " + last,
		DisplayName:    displayName(first, last),
		Position:       position,
		Phone:          phone,
		MinHours:       0,
		MaxHours:       0,
		LastSubmission: "Never",
		Comment:        "None",
		Avail:          availability.NewGrid(),
	}, nil
}

// FromKey reconstructs an employee loaded from storage. The file key carries
// the name: it is split on "_" to recover first and last.
func FromKey(fileKey, position, phone string, minHours, maxHours int, lastSubmission, comment string, grid availability.Grid) (Employee, error) {
	parts := strings.Split(fileKey, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Employee{}, fmt.Errorf("%w: %q", ErrInvalidFileKey, fileKey)
	}
	first, last := parts[0], parts[1]

	return Employee{
		FileKey:        fileKey,
		FullName:       first + " " + last,
		DisplayName:    displayName(first, last),
		Position:       position,
		Phone:          phone,
		MinHours:       minHours,
		MaxHours:       maxHours,
		LastSubmission: lastSubmission,
		Comment:        comment,
		Avail:          grid,
	}, nil
}

// EditIdentity updates position and phone. An empty argument means "leave
// that field as it is"; there is deliberately no way to clear a field here.
func (e *Employee) EditIdentity(position, phone string) {
	if position != "" {
		e.Position = position
	}
	if phone != "" {
		e.Phone = phone
	}
}

// EditAvailability replaces the hour bounds, comment, submission date, and
// the whole grid together. Partial updates are not supported.
func (e *Employee) EditAvailability(minHours, maxHours int, comment, submittedAt string, grid availability.Grid) {
	e.MinHours = minHours
	e.MaxHours = maxHours
	e.Comment = comment
	e.LastSubmission = submittedAt
	e.Avail = grid
}

func splitFullName(fullName string) (first, last string, err error) {
	tokens := strings.Fields(fullName)
	if len(tokens) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFullName, fullName)
	}
	return tokens[0], tokens[1], nil
}

func displayName(first, last string) string {
	return first[:1] + ". " + last
}
