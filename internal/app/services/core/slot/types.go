package slot

import (
	"fmt"
	"time"
)

// DefaultGranularity is used when a caller passes a non-positive step.
const DefaultGranularity = 30 * time.Minute

// Clock holds a wall time of day.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Short drops the seconds, "HH:MM".
func (c Clock) Short() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Window is a recurring availability range. Weekdays are 0 (Sunday) to 6
// and FromWeekDay <= ToWeekDay; ranges never wrap around the week.
// FromTime and ToTime are UTC times of day, "HH:MM:SS".
type Window struct {
	FromWeekDay int
	ToWeekDay   int
	FromTime    string
	ToTime      string
}

func (w Window) Contains(weekday time.Weekday) bool {
	return w.FromWeekDay <= int(weekday) && int(weekday) <= w.ToWeekDay
}

// Bounds is a concrete [From, To) range on one date, both in UTC.
type Bounds struct {
	From time.Time
	To   time.Time
}

// Slot is a candidate appointment start.
type Slot struct {
	Time      time.Time
	Available bool
}
