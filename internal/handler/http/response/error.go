package response

import (
	"errors"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/hours"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "An employee with that name already exists")
	case errors.Is(err, employee.ErrInvalidFullName):
		BadRequest(w, "Full name must be exactly a first and a last name", nil)

	// Business hours domain errors
	case errors.Is(err, hours.ErrHoursNotFound):
		NotFound(w, "Business hours have not been set yet")

	// Time format errors
	case errors.Is(err, timecode.ErrBadTimeString):
		BadRequest(w, "Time must be Closed, 24 HR, or a half-hour time like 8:00AM", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
