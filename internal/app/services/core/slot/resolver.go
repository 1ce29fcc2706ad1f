package slot

import "time"

type Resolver struct {
	normalizer *Normalizer
}

func NewResolver(normalizer *Normalizer) *Resolver {
	return &Resolver{normalizer: normalizer}
}

// Resolve returns one Bounds per window whose weekday range holds date.
// Windows are not merged; an empty result means the doctor is off that day.
func (r *Resolver) Resolve(primary Window, additional []Window, date time.Time) ([]Bounds, error) {
	local := date.In(r.normalizer.Location())
	weekday := local.Weekday()

	windows := make([]Window, 0, len(additional)+1)
	windows = append(windows, primary)
	windows = append(windows, additional...)

	bounds := make([]Bounds, 0, len(windows))
	for _, window := range windows {
		if !window.Contains(weekday) {
			continue
		}

		from, err := r.normalizer.ToLocal(window.FromTime, weekday, local)
		if err != nil {
			return nil, err
		}
		to, err := r.normalizer.ToLocal(window.ToTime, weekday, local)
		if err != nil {
			return nil, err
		}

		bounds = append(bounds, Bounds{
			From: r.normalizer.Combine(local, from).UTC(),
			To:   r.normalizer.Combine(local, to).UTC(),
		})
	}
	return bounds, nil
}

// Schedule resolves date, expands every window into slots and marks the
// booked ones. Slots of overlapping windows are kept as-is.
func (r *Resolver) Schedule(primary Window, additional []Window, date time.Time, granularity time.Duration, booked []time.Time) ([]Slot, error) {
	bounds, err := r.Resolve(primary, additional, date)
	if err != nil {
		return nil, err
	}

	var candidates []time.Time
	for _, b := range bounds {
		candidates = append(candidates, GenerateSlots(b, granularity)...)
	}
	return FilterAvailability(candidates, booked), nil
}
