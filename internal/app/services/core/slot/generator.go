package slot

import "time"

// GenerateSlots steps through [From, To); To itself is never a slot.
func GenerateSlots(bounds Bounds, granularity time.Duration) []time.Time {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}

	slots := []time.Time{}
	if !bounds.From.Before(bounds.To) {
		return slots
	}

	for t := bounds.From; t.Before(bounds.To); t = t.Add(granularity) {
		slots = append(slots, t)
	}
	return slots
}
