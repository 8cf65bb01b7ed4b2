package berlinclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewTime_Bounds checks the inclusive hour bound and the exclusive minute and second bounds.
func TestNewTime_Bounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                 string
		hour, minute, second int
		wantErr              bool
	}{
		{name: "midnight", hour: 0, minute: 0, second: 0},
		{name: "end of day", hour: 24, minute: 0, second: 0},
		{name: "hour 24 with minutes is permitted", hour: 24, minute: 59, second: 59},
		{name: "last second", hour: 23, minute: 59, second: 59},
		{name: "hour above 24", hour: 25, wantErr: true},
		{name: "negative hour", hour: -1, wantErr: true},
		{name: "minute 60", minute: 60, wantErr: true},
		{name: "negative minute", minute: -1, wantErr: true},
		{name: "second 60", second: 60, wantErr: true},
		{name: "negative second", second: -1, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewTime(tc.hour, tc.minute, tc.second)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				require.Equal(t, Time{}, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.hour, got.Hour())
			require.Equal(t, tc.minute, got.Minute())
			require.Equal(t, tc.second, got.Second())
		})
	}
}

// TestNewTime_ErrorNamesField ensures the error mentions the offending field and its bound.
func TestNewTime_ErrorNamesField(t *testing.T) {
	t.Parallel()

	_, err := NewTime(25, 0, 0)
	require.ErrorContains(t, err, "hour")
	require.ErrorContains(t, err, "24")

	_, err = NewTime(0, 60, 0)
	require.ErrorContains(t, err, "minute")
	require.ErrorContains(t, err, "60")

	_, err = NewTime(0, 0, 61)
	require.ErrorContains(t, err, "second")
}

// TestParseTime_Errors verifies the error kinds reported for bad input.
func TestParseTime_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"":           ErrInvalidArgument,
		"25:00:00":   ErrInvalidArgument,
		"12:60:00":   ErrInvalidArgument,
		"12:00:60":   ErrInvalidArgument,
		"1:2:3":      ErrInvalidFormat,
		" 12:00:00":  ErrInvalidFormat,
		"12:00:00 ":  ErrInvalidFormat,
		"12:00:00\n": ErrInvalidFormat,
		"12-00-00":   ErrInvalidFormat,
		"12:00":      ErrInvalidFormat,
		"ab:cd:ef":   ErrInvalidFormat,
		"+1:00:00":   ErrInvalidFormat,
		"١٢:٠٠:٠٠":   ErrInvalidFormat,
	}

	for text, want := range cases {
		_, err := ParseTime(text)
		require.ErrorIs(t, err, want, "input %q", text)
	}
}

// TestParseTime_RoundTrip parses the formatted form of every valid time.
func TestParseTime_RoundTrip(t *testing.T) {
	t.Parallel()

	for hour := 0; hour <= MaxHour; hour++ {
		for minute := range MinutesPerHour {
			for second := range SecondsPerMinute {
				want, err := NewTime(hour, minute, second)
				require.NoError(t, err)

				got, err := ParseTime(want.String())
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}
	}
}

// TestTime_String checks zero padding.
func TestTime_String(t *testing.T) {
	t.Parallel()

	tm, err := NewTime(7, 5, 3)
	require.NoError(t, err)
	require.Equal(t, "07:05:03", tm.String())
	require.Equal(t, "00:00:00", Time{}.String())
}

// TestTimeOf takes the wall-clock fields of an instant.
func TestTimeOf(t *testing.T) {
	t.Parallel()

	got := TimeOf(time.Date(2025, 12, 15, 17, 4, 30, 123456789, time.UTC))
	require.Equal(t, "17:04:30", got.String())
}
