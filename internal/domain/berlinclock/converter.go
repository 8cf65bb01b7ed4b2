package berlinclock

// Converter turns a textual time into its Berlin Clock rendering.
type Converter interface {
	ConvertTime(text string) (string, error)
}

// BerlinClock is the default Converter.
type BerlinClock struct{}

// ConvertTime implements Converter.
func (BerlinClock) ConvertTime(text string) (string, error) {
	return Convert(text)
}

// Show computes the clock state of an already validated time.
func Show(t Time) (ClockState, error) {
	return NewClockState(t)
}

// Convert parses text as HH:MM:SS and returns the five lamp rows joined by LineSeparator.
// Errors from parsing and row computation are returned unchanged.
func Convert(text string) (string, error) {
	t, err := ParseTime(text)
	if err != nil {
		return "", err
	}

	state, err := Show(t)
	if err != nil {
		return "", err
	}

	return state.String(), nil
}
