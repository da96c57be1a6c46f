package hours

import (
	"testing"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/timecode"
	"github.com/stretchr/testify/assert"
)

func TestOpenAt_HalfOpenInterval(t *testing.T) {
	t.Parallel()

	var b BusinessHours
	b.Open[0] = 900
	b.Close[0] = 1700

	assert.False(t, b.OpenAt(830, 0), "8:30 is before opening")
	assert.True(t, b.OpenAt(900, 0), "open exactly at opening time")
	assert.True(t, b.OpenAt(1630, 0), "4:30 is the last open slot")
	assert.False(t, b.OpenAt(1700, 0), "closed exactly at closing time")
	assert.False(t, b.OpenAt(2330, 0))
}

func TestOpenAt_Sentinels(t *testing.T) {
	t.Parallel()

	var b BusinessHours
	b.Open[2] = timecode.AllDay
	b.Close[2] = timecode.AllDay
	b.Open[3] = timecode.Closed
	b.Close[3] = timecode.Closed

	for _, tm := range []timecode.Code{0, 300, 1200, 2330} {
		assert.True(t, b.OpenAt(tm, 2), "24 HR day is always open")
		assert.False(t, b.OpenAt(tm, 3), "Closed day is never open")
	}
}

func TestSaveBusinessHoursRequest_Validate(t *testing.T) {
	t.Parallel()

	var req SaveBusinessHoursRequest
	for d := range req.Days {
		req.Days[d] = DayHours{Open: "9:00AM", Close: "5:00PM"}
	}
	assert.NoError(t, req.Validate())

	req.Days[1] = DayHours{Open: "Closed", Close: "Closed"}
	req.Days[2] = DayHours{Open: "24 HR", Close: "24 HR"}
	assert.NoError(t, req.Validate())

	req.Days[4].Close = "5 o'clock"
	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "friday.close")
}
