package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want string
	}{
		{Closed, "Closed"},
		{AllDay, "24 HR"},
		{0, "12:00AM"},
		{30, "12:30AM"},
		{100, "1:00AM"},
		{930, "9:30AM"},
		{1130, "11:30AM"},
		{1200, "12:00PM"},
		{1230, "12:30PM"},
		{1300, "1:00PM"},
		{1700, "5:00PM"},
		{2330, "11:30PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.Display(), "Display(%d)", tt.code)
	}
}

func TestFromDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Code
	}{
		{"Closed", Closed},
		{"24 HR", AllDay},
		{"12:00AM", 0},
		{"12:30AM", 30},
		{"8:00AM", 800},
		{"11:30AM", 1130},
		{"12:00PM", 1200},
		{"5:00PM", 1700},
		{"11:30PM", 2330},
		// A space before the marker also parses.
		{"8:00 AM", 800},
		{"11:30 PM", 2330},
	}

	for _, tt := range tests {
		got, err := FromDisplay(tt.in)
		require.NoError(t, err, "FromDisplay(%q)", tt.in)
		assert.Equal(t, tt.want, got, "FromDisplay(%q)", tt.in)
	}
}

func TestFromDisplay_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"", "closed", "24HR", "8AM", "8:15AM", "13:00PM", "0:30AM",
		"8:00", "8:0AM", "banana", "12:00 am",
	}

	for _, in := range invalid {
		_, err := FromDisplay(in)
		assert.ErrorIs(t, err, ErrBadTimeString, "FromDisplay(%q)", in)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 30} {
			code := Code(h*100 + m)
			got, err := FromDisplay(code.Display())
			require.NoError(t, err)
			assert.Equal(t, code, got)
		}
	}

	// Sentinels round-trip through their fixed strings.
	for _, code := range []Code{Closed, AllDay} {
		got, err := FromDisplay(code.Display())
		require.NoError(t, err)
		assert.Equal(t, code, got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-1, -2, 0, 30, 800, 1230, 2330} {
		code, err := Parse(v)
		require.NoError(t, err)
		assert.Equal(t, Code(v), code)
	}

	for _, v := range []int{-3, 15, 845, 2400, 2430, 960, 1299} {
		_, err := Parse(v)
		assert.ErrorIs(t, err, ErrOutOfRange, "Parse(%d)", v)
	}
}

func TestEnumerateRange(t *testing.T) {
	t.Parallel()

	got := EnumerateRange(900, 1100)
	assert.Equal(t, []string{"9:00AM", "9:30AM", "10:00AM", "10:30AM", "11:00AM"}, got)
}

func TestEnumerateRange_WrapsPastMidnight(t *testing.T) {
	t.Parallel()

	got := EnumerateRange(2000, 430)
	// 8:00PM..11:30PM is 8 marks, 12:00AM..4:30AM is 10 more.
	require.Len(t, got, 18)
	assert.Equal(t, "8:00PM", got[0])
	assert.Equal(t, "11:30PM", got[7])
	assert.Equal(t, "12:00AM", got[8])
	assert.Equal(t, "4:30AM", got[17])
}

func TestEnumerateRange_SingleStep(t *testing.T) {
	t.Parallel()

	got := EnumerateRange(2330, 0)
	assert.Equal(t, []string{"11:30PM", "12:00AM"}, got)
}
