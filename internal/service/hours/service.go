package hours

import (
	"context"
	"errors"
	"sync"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/hours"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type HoursServiceImpl struct {
	mu   sync.RWMutex
	repo hours.Repository

	// current is nil until the first save; its absence is the first-run
	// flag the rest of the application gates on.
	current *hours.BusinessHours
}

// NewHoursService loads the saved hours up front. A missing file is the
// normal first-run state; anything else wrong with the file is fatal for the
// caller to decide on.
func NewHoursService(ctx context.Context, repo hours.Repository) (hours.Service, error) {
	s := &HoursServiceImpl{repo: repo}

	b, err := repo.Load(ctx)
	switch {
	case err == nil:
		s.current = &b
	case errors.Is(err, hours.ErrHoursNotFound):
		// first run
	default:
		return nil, err
	}

	return s, nil
}

// Get implements hours.Service.
func (s *HoursServiceImpl) Get(ctx context.Context) (hours.BusinessHoursResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return hours.BusinessHoursResponse{}, hours.ErrHoursNotFound
	}
	return mapToResponse(*s.current), nil
}

// Save implements hours.Service. All 14 display strings are converted before
// anything is written, then the file is read back so memory always matches
// disk.
func (s *HoursServiceImpl) Save(ctx context.Context, req hours.SaveBusinessHoursRequest) (hours.BusinessHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return hours.BusinessHoursResponse{}, err
	}

	var b hours.BusinessHours
	for day := 0; day < hours.NumDays; day++ {
		open, err := timecode.FromDisplay(req.Days[day].Open)
		if err != nil {
			return hours.BusinessHoursResponse{}, err
		}
		closing, err := timecode.FromDisplay(req.Days[day].Close)
		if err != nil {
			return hours.BusinessHoursResponse{}, err
		}
		b.Open[day] = open
		b.Close[day] = closing
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, b); err != nil {
		return hours.BusinessHoursResponse{}, err
	}

	reloaded, err := s.repo.Load(ctx)
	if err != nil {
		return hours.BusinessHoursResponse{}, err
	}
	s.current = &reloaded

	return mapToResponse(reloaded), nil
}

// Matrix implements hours.Service.
func (s *HoursServiceImpl) Matrix(ctx context.Context) (hours.BusinessHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return hours.BusinessHours{}, hours.ErrHoursNotFound
	}
	return *s.current, nil
}

// TimeRange implements hours.Service.
func (s *HoursServiceImpl) TimeRange(ctx context.Context, start, end string) (hours.TimeRangeResponse, error) {
	startCode, err := timecode.FromDisplay(start)
	if err != nil || startCode < 0 {
		return hours.TimeRangeResponse{}, validator.ValidationErrors{
			{Field: "start", Message: "must be a half-hour time like 8:00PM"},
		}
	}
	endCode, err := timecode.FromDisplay(end)
	if err != nil || endCode < 0 {
		return hours.TimeRangeResponse{}, validator.ValidationErrors{
			{Field: "end", Message: "must be a half-hour time like 4:30AM"},
		}
	}

	return hours.TimeRangeResponse{Times: timecode.EnumerateRange(startCode, endCode)}, nil
}

func mapToResponse(b hours.BusinessHours) hours.BusinessHoursResponse {
	var resp hours.BusinessHoursResponse
	for day := 0; day < hours.NumDays; day++ {
		resp.Days[day] = hours.DayHours{
			Open:  b.Open[day].Display(),
			Close: b.Close[day].Display(),
		}
	}
	return resp
}
