package berlinclock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxHour is the inclusive upper bound of the hour field. 24 is allowed to express "24:00:00".
	MaxHour = 24
	// MinutesPerHour is the exclusive upper bound of the minute field.
	MinutesPerHour = 60
	// SecondsPerMinute is the exclusive upper bound of the second field.
	SecondsPerMinute = 60

	// timeSeparator splits the hour, minute and second parts of a time string.
	timeSeparator = ":"
)

// timePattern matches exactly two digits, colon, two digits, colon, two digits.
var timePattern = regexp.MustCompile(`^\d\d:\d\d:\d\d$`)

// Time is an immutable hour, minute and second of a day.
// The zero value is midnight (00:00:00).
type Time struct {
	// hour is in [0, 24].
	hour int
	// minute is in [0, 60).
	minute int
	// second is in [0, 60).
	second int
}

// NewTime validates the fields and builds a Time.
func NewTime(hour, minute, second int) (Time, error) {
	if hour < 0 || hour > MaxHour {
		return Time{}, fmt.Errorf("%w: hour must be in range [0, %d], got %d", ErrInvalidArgument, MaxHour, hour)
	}

	if minute < 0 || minute >= MinutesPerHour {
		return Time{}, fmt.Errorf(
			"%w: minute must be in range [0, %d), got %d", ErrInvalidArgument, MinutesPerHour, minute)
	}

	if second < 0 || second >= SecondsPerMinute {
		return Time{}, fmt.Errorf(
			"%w: second must be in range [0, %d), got %d", ErrInvalidArgument, SecondsPerMinute, second)
	}

	return Time{
		hour:   hour,
		minute: minute,
		second: second,
	}, nil
}

// ParseTime parses a string in HH:MM:SS format.
// Out-of-range values are reported as ErrInvalidArgument, malformed text as ErrInvalidFormat.
func ParseTime(text string) (Time, error) {
	if text == "" {
		return Time{}, fmt.Errorf("%w: time text must not be empty", ErrInvalidArgument)
	}

	if !timePattern.MatchString(text) {
		return Time{}, fmt.Errorf("%w: %q does not match HH:MM:SS", ErrInvalidFormat, text)
	}

	parts := strings.Split(text, timeSeparator)

	// The pattern guarantees three two-digit parts, so conversion cannot fail.
	values := make([]int, len(parts))
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, text, err)
		}

		values[i] = value
	}

	return NewTime(values[0], values[1], values[2])
}

// TimeOf returns the time of day of the provided instant in its own location.
func TimeOf(t time.Time) Time {
	return Time{
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
	}
}

// Hour returns the hour in [0, 24].
func (t Time) Hour() int {
	return t.hour
}

// Minute returns the minute in [0, 59].
func (t Time) Minute() int {
	return t.minute
}

// Second returns the second in [0, 59].
func (t Time) Second() int {
	return t.second
}

// String renders the time as zero-padded HH:MM:SS.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}
