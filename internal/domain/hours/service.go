package hours

import "context"

type Service interface {
	// Get returns the saved hours, or ErrHoursNotFound on first run.
	Get(ctx context.Context) (BusinessHoursResponse, error)

	// Save persists the full 2x7 matrix and reloads it from storage so the
	// in-memory state always matches disk. A failed write leaves the on-disk
	// state indeterminate; callers should prompt for a retry.
	Save(ctx context.Context, req SaveBusinessHoursRequest) (BusinessHoursResponse, error)

	// Matrix exposes the raw codes for collaborators that derive slot
	// openness (availability rendering, reports).
	Matrix(ctx context.Context) (BusinessHours, error)

	// TimeRange lists selectable half-hour marks from start to end
	// inclusive, wrapping past midnight when end precedes start.
	TimeRange(ctx context.Context, start, end string) (TimeRangeResponse, error)
}
