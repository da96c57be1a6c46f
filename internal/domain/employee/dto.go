package employee

import (
	"strings"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/availability"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	} else if len(strings.Fields(r.FullName)) != 2 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must be exactly a first and a last name"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest edits identity fields. An empty field means "leave
// unchanged", so there is nothing to validate beyond shape.
type UpdateEmployeeRequest struct {
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

type SubmitAvailabilityRequest struct {
	MinHours int    `json:"min_hours"`
	MaxHours int    `json:"max_hours"`
	Comment  string `json:"comment"`
	// Grid is 48 rows (half-hour slots from 00:00) by 7 columns (Mon..Sun)
	// of codes 0=unavailable, 1=alternate, 2=preferred.
	Grid [][]int `json:"grid"`
}

func (r SubmitAvailabilityRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.MinHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "min_hours", Message: "must not be negative"})
	}
	if r.MaxHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_hours", Message: "must not be negative"})
	}
	if len(r.Grid) != availability.NumRows {
		errs = append(errs, validator.ValidationError{Field: "grid", Message: "must have exactly 48 rows"})
	} else {
	rows:
		for i, row := range r.Grid {
			if len(row) != availability.NumDays {
				errs = append(errs, validator.ValidationError{Field: "grid", Message: "every row must have exactly 7 columns"})
				break
			}
			for _, c := range row {
				if _, err := availability.ParseCode(c); err != nil {
					errs = append(errs, validator.ValidationError{Field: "grid", Message: "row " + validator.Itoa(i) + ": codes must be 0, 1, or 2"})
					break rows
				}
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToGrid converts the request grid into the domain type. Validate must have
// accepted the request first.
func (r SubmitAvailabilityRequest) ToGrid() availability.Grid {
	var g availability.Grid
	for row := range g {
		for day := range g[row] {
			g[row][day] = availability.Code(r.Grid[row][day])
		}
	}
	return g
}

type RemoveEmployeesRequest struct {
	FileKeys []string `json:"file_keys"`
}

func (r RemoveEmployeesRequest) Validate() error {
	if len(r.FileKeys) == 0 {
		return validator.ValidationErrors{{Field: "file_keys", Message: "at least one file key is required"}}
	}
	return nil
}

type EmployeeResponse struct {
	FileKey        string `json:"file_key"`
	FullName       string `json:"full_name"`
	DisplayName    string `json:"display_name"`
	Position       string `json:"position"`
	Phone          string `json:"phone"`
	MinHours       int    `json:"min_hours"`
	MaxHours       int    `json:"max_hours"`
	LastSubmission string `json:"last_submission"`
	Comment        string `json:"comment"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	// Positions preserves first-seen order across the roster; the report
	// groups by it.
	Positions []string `json:"positions"`
}

type AvailabilityResponse struct {
	FileKey string  `json:"file_key"`
	Grid    [][]int `json:"grid"`
	// Open mirrors the grid's shape and reports, per cell, whether the
	// business is open during that slot. Derived from business hours at
	// render time, never stored.
	Open [][]bool `json:"open"`
}
