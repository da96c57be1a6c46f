package hours

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

var dayNames = [NumDays]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type SaveBusinessHoursRequest struct {
	Days [NumDays]DayHours `json:"days"`
}

// Validate checks every one of the 14 display strings before anything is
// written, so a bad request never reaches storage.
func (r SaveBusinessHoursRequest) Validate() error {
	var errs validator.ValidationErrors
	for d, day := range r.Days {
		if _, err := timecode.FromDisplay(day.Open); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   dayNames[d] + ".open",
				Message: "must be Closed, 24 HR, or a half-hour time like 8:00AM",
			})
		}
		if _, err := timecode.FromDisplay(day.Close); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   dayNames[d] + ".close",
				Message: "must be Closed, 24 HR, or a half-hour time like 5:00PM",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BusinessHoursResponse struct {
	Days [NumDays]DayHours `json:"days"`
}

type TimeRangeResponse struct {
	Times []string `json:"times"`
}
