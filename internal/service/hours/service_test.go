package hours

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/hours"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/storage"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/flatfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (hours.Service, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	svc, err := NewHoursService(context.Background(), flatfile.NewHoursRepository(fs))
	require.NoError(t, err)
	return svc, dir
}

func weekdayRequest() hours.SaveBusinessHoursRequest {
	var req hours.SaveBusinessHoursRequest
	for d := range req.Days {
		req.Days[d] = hours.DayHours{Open: "8:00AM", Close: "5:00PM"}
	}
	return req
}

func TestHoursService_Get_FirstRun(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, hours.ErrHoursNotFound)

	_, err = svc.Matrix(context.Background())
	assert.ErrorIs(t, err, hours.ErrHoursNotFound)
}

func TestHoursService_SaveRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	req := weekdayRequest()
	req.Days[5] = hours.DayHours{Open: "24 HR", Close: "24 HR"}
	req.Days[6] = hours.DayHours{Open: "Closed", Close: "Closed"}

	resp, err := svc.Save(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, hours.DayHours{Open: "8:00AM", Close: "5:00PM"}, resp.Days[0])
	assert.Equal(t, hours.DayHours{Open: "24 HR", Close: "24 HR"}, resp.Days[5])
	assert.Equal(t, hours.DayHours{Open: "Closed", Close: "Closed"}, resp.Days[6])

	matrix, err := svc.Matrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, timecode.Code(800), matrix.Open[0])
	assert.Equal(t, timecode.Code(1700), matrix.Close[0])
	assert.Equal(t, timecode.AllDay, matrix.Open[5])
	assert.Equal(t, timecode.Closed, matrix.Open[6])
}

func TestHoursService_Save_InvalidWritesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, dir := newTestService(t)

	req := weekdayRequest()
	req.Days[2].Open = "whenever"

	_, err := svc.Save(ctx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	_, statErr := os.Stat(filepath.Join(dir, "hours.dat"))
	assert.True(t, os.IsNotExist(statErr), "a rejected save must not touch disk")

	_, err = svc.Get(ctx)
	assert.ErrorIs(t, err, hours.ErrHoursNotFound)
}

func TestHoursService_PersistsAcrossRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	fs, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	repo := flatfile.NewHoursRepository(fs)

	svc, err := NewHoursService(ctx, repo)
	require.NoError(t, err)
	_, err = svc.Save(ctx, weekdayRequest())
	require.NoError(t, err)

	restarted, err := NewHoursService(ctx, repo)
	require.NoError(t, err)

	resp, err := restarted.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, hours.DayHours{Open: "8:00AM", Close: "5:00PM"}, resp.Days[3])
}

func TestHoursService_TimeRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	resp, err := svc.TimeRange(ctx, "8:00PM", "4:30AM")
	require.NoError(t, err)
	require.Len(t, resp.Times, 18)
	assert.Equal(t, "8:00PM", resp.Times[0])
	assert.Equal(t, "4:30AM", resp.Times[17])
}

func TestHoursService_TimeRange_RejectsSentinelsAndGarbage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, pair := range [][2]string{
		{"Closed", "4:30AM"},
		{"8:00PM", "24 HR"},
		{"noon", "4:30AM"},
	} {
		_, err := svc.TimeRange(ctx, pair[0], pair[1])
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "TimeRange(%q, %q)", pair[0], pair[1])
	}
}
