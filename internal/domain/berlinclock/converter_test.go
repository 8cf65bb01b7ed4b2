package berlinclock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConvert checks end-to-end renderings and error propagation.
func TestConvert(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "00:00:00", want: "Y\nOOOO\nOOOO\nOOOOOOOOOOO\nOOOO"},
		{input: "13:17:01", want: "O\nRROO\nRRRO\nYYROOOOOOOO\nYYOO"},
		{input: "23:59:59", want: "O\nRRRR\nRRRO\nYYRYYRYYRYY\nYYYY"},
		{input: "24:00:00", want: "Y\nRRRR\nRRRR\nOOOOOOOOOOO\nOOOO"},
		{input: "", wantErr: ErrInvalidArgument},
		{input: "25:00:00", wantErr: ErrInvalidArgument},
		{input: "1:2:3", wantErr: ErrInvalidFormat},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := Convert(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestBerlinClock_ConvertTime verifies the Converter implementation delegates to Convert.
func TestBerlinClock_ConvertTime(t *testing.T) {
	t.Parallel()

	var converter Converter = BerlinClock{}

	got, err := converter.ConvertTime("12:56:01")
	require.NoError(t, err)
	require.Equal(t, "O\nRROO\nRROO\nYYRYYRYYRYY\nYOOO", got)
}
