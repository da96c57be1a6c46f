package flatfile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/hours"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/storage"
)

const hoursFile = "hours.dat"

// The hours file is 14 whitespace-separated integers: open then close for
// Monday, open then close for Tuesday, and so on through Sunday.
type hoursRepositoryImpl struct {
	fs storage.FileStorage
}

func NewHoursRepository(fs storage.FileStorage) hours.Repository {
	return &hoursRepositoryImpl{fs: fs}
}

func (r *hoursRepositoryImpl) Load(ctx context.Context) (hours.BusinessHours, error) {
	exists, err := r.fs.Exists(ctx, hoursFile)
	if err != nil {
		return hours.BusinessHours{}, fmt.Errorf("failed to check hours file: %w", err)
	}
	if !exists {
		return hours.BusinessHours{}, hours.ErrHoursNotFound
	}

	data, err := r.fs.Read(ctx, hoursFile)
	if err != nil {
		return hours.BusinessHours{}, fmt.Errorf("failed to read hours file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) != 2*hours.NumDays {
		return hours.BusinessHours{}, fmt.Errorf("%w: expected %d values, got %d",
			hours.ErrCorruptHoursFile, 2*hours.NumDays, len(fields))
	}

	var b hours.BusinessHours
	for day := 0; day < hours.NumDays; day++ {
		open, err := parseTimeField(fields[2*day])
		if err != nil {
			return hours.BusinessHours{}, err
		}
		closing, err := parseTimeField(fields[2*day+1])
		if err != nil {
			return hours.BusinessHours{}, err
		}
		b.Open[day] = open
		b.Close[day] = closing
	}

	return b, nil
}

func (r *hoursRepositoryImpl) Save(ctx context.Context, b hours.BusinessHours) error {
	var sb strings.Builder
	for day := 0; day < hours.NumDays; day++ {
		sb.WriteString(strconv.Itoa(int(b.Open[day])) + "\n")
		sb.WriteString(strconv.Itoa(int(b.Close[day])) + "\n")
	}

	if err := r.fs.Write(ctx, hoursFile, []byte(sb.String())); err != nil {
		return fmt.Errorf("failed to write hours file: %w", err)
	}
	return nil
}

func parseTimeField(field string) (timecode.Code, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", hours.ErrCorruptHoursFile, field)
	}
	code, err := timecode.Parse(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", hours.ErrCorruptHoursFile, err)
	}
	return code, nil
}
