package slot

import "time"

// FilterAvailability flags slots whose UTC time of day matches a booking.
// Booked slots stay in the result, marked unavailable.
func FilterAvailability(slots []time.Time, booked []time.Time) []Slot {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[timeOfDayKey(b)] = struct{}{}
	}

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		_, isTaken := taken[timeOfDayKey(s)]
		result = append(result, Slot{Time: s, Available: !isTaken})
	}
	return result
}
