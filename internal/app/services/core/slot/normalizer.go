package slot

import (
	"agenda-service/internal/pkg/constvars"
	"time"
)

// Normalizer converts times of day between the clinic's location and UTC.
// Weekday-relative conversions are anchored on a reference date so the
// offset in effect on that date is the one applied.
type Normalizer struct {
	location *time.Location
}

func NewNormalizer(location *time.Location) *Normalizer {
	if location == nil {
		location = time.UTC
	}
	return &Normalizer{location: location}
}

func (n *Normalizer) Location() *time.Location {
	return n.location
}

// Combine places c on the civil day of date, in the normalizer's location.
func (n *Normalizer) Combine(date time.Time, c Clock) time.Time {
	year, month, day := date.In(n.location).Date()
	return time.Date(year, month, day, c.Hour, c.Minute, c.Second, 0, n.location)
}

// ToUTC converts a local time of day into the "HH:MM:SS" UTC form kept in storage.
func (n *Normalizer) ToUTC(localTime string, referenceDate time.Time) (string, error) {
	c, err := ParseClock(localTime)
	if err != nil {
		return "", err
	}
	return n.Combine(referenceDate, c).UTC().Format(constvars.TimeOfDayLayout), nil
}

// ToLocal moves the civil date of referenceDate (read in the location) to
// weekday within its Sunday-started week, sets the stored UTC time of day
// on it and reads the wall clock in the location.
func (n *Normalizer) ToLocal(utcTime string, weekday time.Weekday, referenceDate time.Time) (Clock, error) {
	c, err := ParseClock(utcTime)
	if err != nil {
		return Clock{}, err
	}

	reference := referenceDate.In(n.location)
	year, month, day := reference.Date()
	anchor := time.Date(year, month, day, c.Hour, c.Minute, c.Second, 0, time.UTC).
		AddDate(0, 0, int(weekday)-int(reference.Weekday()))

	local := anchor.In(n.location)
	return Clock{Hour: local.Hour(), Minute: local.Minute(), Second: local.Second()}, nil
}

// LocalLabel formats an instant as the clinic's "HH:MM".
func (n *Normalizer) LocalLabel(t time.Time) string {
	return t.In(n.location).Format(constvars.ShortTimeLayout)
}

// LocalDate formats an instant as the clinic's "YYYY-MM-DD".
func (n *Normalizer) LocalDate(t time.Time) string {
	return t.In(n.location).Format(constvars.DateLayout)
}

// DayRange returns [start of date, start of next day) in the location, as UTC instants.
func (n *Normalizer) DayRange(date time.Time) (time.Time, time.Time) {
	start := n.Combine(date, Clock{})
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
