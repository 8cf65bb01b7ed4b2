package berlinclock

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// mustState builds a ClockState for a valid time or fails the test.
func mustState(t *testing.T, hour, minute, second int) ClockState {
	t.Helper()

	tm, err := NewTime(hour, minute, second)
	require.NoError(t, err)

	state, err := NewClockState(tm)
	require.NoError(t, err)

	return state
}

// TestNewClockState_Examples compares full renderings with known clock faces.
func TestNewClockState_Examples(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                 string
		hour, minute, second int
		want                 []string
	}{
		{
			name: "midnight",
			want: []string{"Y", "OOOO", "OOOO", "OOOOOOOOOOO", "OOOO"},
		},
		{
			name: "odd second",
			hour: 13, minute: 17, second: 1,
			want: []string{"O", "RROO", "RRRO", "YYROOOOOOOO", "YYOO"},
		},
		{
			name: "before midnight",
			hour: 23, minute: 59, second: 59,
			want: []string{"O", "RRRR", "RRRO", "YYRYYRYYRYY", "YYYY"},
		},
		{
			name: "end of day",
			hour: 24,
			want: []string{"Y", "RRRR", "RRRR", "OOOOOOOOOOO", "OOOO"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			state := mustState(t, tc.hour, tc.minute, tc.second)

			got := make([]string, 0, len(tc.want))
			for _, row := range state.Rows() {
				got = append(got, row.String())
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}

			require.Equal(t, strings.Join(tc.want, LineSeparator), state.String())
		})
	}
}

// TestNewClockState_SecondsParity lights the seconds lamp on even seconds only.
func TestNewClockState_SecondsParity(t *testing.T) {
	t.Parallel()

	for second := range SecondsPerMinute {
		row := mustState(t, 0, 0, second).Seconds()

		require.Len(t, row, SecondsRowLength)

		want := SecondOff
		if second%2 == 0 {
			want = SecondOn
		}

		require.Equal(t, want, row[0], "second %d", second)
	}
}

// TestNewClockState_Hours decomposes every hour into the two red rows.
func TestNewClockState_Hours(t *testing.T) {
	t.Parallel()

	for hour := 0; hour <= MaxHour; hour++ {
		state := mustState(t, hour, 0, 0)
		tens, units := state.HoursTens(), state.HoursUnits()

		require.Len(t, tens, HoursTensRowLength)
		require.Len(t, units, HoursUnitsRowLength)
		require.Equal(t, hour/5, tens.Lit())
		require.Equal(t, hour%5, units.Lit())
		require.Equal(t, hour, 5*tens.Lit()+units.Lit())

		requireLeftPacked(t, tens, LampRed)
		requireLeftPacked(t, units, LampRed)
	}
}

// TestNewClockState_Minutes decomposes every minute and checks quarter markers.
func TestNewClockState_Minutes(t *testing.T) {
	t.Parallel()

	for minute := range MinutesPerHour {
		state := mustState(t, 0, minute, 0)
		tens, units := state.MinutesTens(), state.MinutesUnits()

		require.Len(t, tens, MinutesTensRowLength)
		require.Len(t, units, MinutesUnitsRowLength)
		require.Equal(t, minute/5, tens.Lit())
		require.Equal(t, minute%5, units.Lit())
		require.Equal(t, minute, 5*tens.Lit()+units.Lit())

		requireLeftPacked(t, units, LampYellow)

		for i, lamp := range tens {
			switch {
			case i >= minute/5:
				require.Equal(t, LampOff, lamp, "minute %d position %d", minute, i)
			case i == 2 || i == 5 || i == 8:
				require.Equal(t, LampRed, lamp, "minute %d position %d", minute, i)
			default:
				require.Equal(t, LampYellow, lamp, "minute %d position %d", minute, i)
			}
		}
	}
}

// TestClockState_RowsAreCopies guards the state against mutation through accessors.
func TestClockState_RowsAreCopies(t *testing.T) {
	t.Parallel()

	state := mustState(t, 13, 17, 1)
	before := state.String()

	rows := state.Rows()
	rows[1][3] = LampRed

	tens := state.MinutesTens()
	tens[10] = LampYellow

	require.Equal(t, before, state.String())
	require.Equal(t, "13:17:01", state.Time().String())
}

// TestClockState_Join uses the provided separator.
func TestClockState_Join(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Y/OOOO/OOOO/OOOOOOOOOOO/OOOO", mustState(t, 0, 0, 0).Join("/"))
}

// TestFillRow covers the left-packed fill and its bounds check.
func TestFillRow(t *testing.T) {
	t.Parallel()

	row, err := fillRow(LampRed, 0, 4)
	require.NoError(t, err)
	require.Equal(t, "OOOO", row.String())

	row, err = fillRow(LampYellow, 4, 4)
	require.NoError(t, err)
	require.Equal(t, "YYYY", row.String())

	row, err = fillRow(LampRed, 5, 4)
	require.ErrorIs(t, err, ErrInvariantViolation)
	require.Nil(t, row)

	_, err = fillRow(LampRed, -1, 4)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

// TestLamp_Symbol maps every lamp to its character.
func TestLamp_Symbol(t *testing.T) {
	t.Parallel()

	require.Equal(t, "O", LampOff.String())
	require.Equal(t, "Y", LampYellow.String())
	require.Equal(t, "R", LampRed.String())
	require.False(t, LampOff.IsLit())
	require.True(t, LampRed.IsLit())
}

// requireLeftPacked asserts that all lit lamps precede all unlit ones and share a color.
func requireLeftPacked(t *testing.T, row Row, lit Lamp) {
	t.Helper()

	n := row.Lit()
	for i, lamp := range row {
		if i < n {
			require.Equal(t, lit, lamp, "position %d of %s", i, row)
		} else {
			require.Equal(t, LampOff, lamp, "position %d of %s", i, row)
		}
	}
}
