package slot

import (
	"agenda-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClock = errors.New("invalid time of day")
	ErrInvalidDate  = errors.New("invalid calendar date")
)

// ParseClock reads "HH:MM" or "HH:MM:SS".
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		if !isTwoDigits(part) {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
		values[i] = value
	}

	c := Clock{Hour: values[0], Minute: values[1], Second: values[2]}
	if c.Hour > 23 || c.Minute > 59 || c.Second > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return c, nil
}

func isTwoDigits(part string) bool {
	return len(part) == 2 &&
		part[0] >= '0' && part[0] <= '9' &&
		part[1] >= '0' && part[1] <= '9'
}

// ParseDate reads a "YYYY-MM-DD" civil date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(constvars.DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return date, nil
}

func timeOfDayKey(t time.Time) string {
	return t.UTC().Format(constvars.TimeOfDayLayout)
}
