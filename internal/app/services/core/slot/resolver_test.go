package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(normalizer *Normalizer, slots []Slot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, normalizer.LocalLabel(s.Time))
	}
	return result
}

func TestResolver_Schedule(t *testing.T) {
	normalizer := NewNormalizer(time.UTC)
	resolver := NewResolver(normalizer)
	weekdays := Window{FromWeekDay: 1, ToWeekDay: 5, FromTime: "08:00:00", ToTime: "12:00:00"}
	wednesday := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)

	t.Run("Weekday inside the primary window", func(t *testing.T) {
		slots, err := resolver.Schedule(weekdays, nil, wednesday, 30*time.Minute, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, labels(normalizer, slots))
		for _, s := range slots {
			assert.True(t, s.Available)
		}
	})

	t.Run("Booked slot is unavailable", func(t *testing.T) {
		booked := []time.Time{time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC)}
		slots, err := resolver.Schedule(weekdays, nil, wednesday, 30*time.Minute, booked)
		require.NoError(t, err)

		for _, s := range slots {
			assert.Equal(t, normalizer.LocalLabel(s.Time) != "09:00", s.Available)
		}
	})

	t.Run("Saturday outside every window", func(t *testing.T) {
		saturday := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
		slots, err := resolver.Schedule(weekdays, nil, saturday, 30*time.Minute, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("Additional window adds its own slots", func(t *testing.T) {
		afternoons := Window{FromWeekDay: 2, ToWeekDay: 4, FromTime: "13:00:00", ToTime: "14:00:00"}
		slots, err := resolver.Schedule(weekdays, []Window{afternoons}, wednesday, 30*time.Minute, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "13:00", "13:30"}, labels(normalizer, slots))
	})
}

func TestResolver_Resolve(t *testing.T) {
	weekdays := Window{FromWeekDay: 1, ToWeekDay: 5, FromTime: "08:00:00", ToTime: "12:00:00"}

	t.Run("One bound pair per applicable window, no merge", func(t *testing.T) {
		overlapping := Window{FromWeekDay: 3, ToWeekDay: 3, FromTime: "10:00:00", ToTime: "13:00:00"}
		bounds, err := NewResolver(NewNormalizer(time.UTC)).Resolve(weekdays, []Window{overlapping}, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Len(t, bounds, 2)
	})

	t.Run("Bounds are localized to the clinic date", func(t *testing.T) {
		stored := Window{FromWeekDay: 1, ToWeekDay: 5, FromTime: "11:00:00", ToTime: "15:00:00"}
		normalizer := NewNormalizer(saoPaulo)
		bounds, err := NewResolver(normalizer).Resolve(stored, nil, time.Date(2024, time.March, 6, 0, 0, 0, 0, saoPaulo))
		require.NoError(t, err)
		require.Len(t, bounds, 1)

		assert.Equal(t, time.Date(2024, time.March, 6, 11, 0, 0, 0, time.UTC), bounds[0].From)
		assert.Equal(t, time.Date(2024, time.March, 6, 15, 0, 0, 0, time.UTC), bounds[0].To)
		assert.Equal(t, "08:00", normalizer.LocalLabel(bounds[0].From))
	})

	t.Run("Sunday east of UTC keeps the stored UTC times", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)

		sundays := Window{FromWeekDay: 0, ToWeekDay: 0, FromTime: "08:00:00", ToTime: "09:00:00"}
		bounds, err := NewResolver(NewNormalizer(berlin)).Resolve(sundays, nil, time.Date(2024, time.March, 31, 0, 0, 0, 0, berlin))
		require.NoError(t, err)
		require.Len(t, bounds, 1)

		assert.Equal(t, time.Date(2024, time.March, 31, 8, 0, 0, 0, time.UTC), bounds[0].From)
		assert.Equal(t, time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC), bounds[0].To)
	})

	t.Run("Weekday bounds are inclusive", func(t *testing.T) {
		resolver := NewResolver(NewNormalizer(time.UTC))
		monday, err := resolver.Resolve(weekdays, nil, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		friday, err := resolver.Resolve(weekdays, nil, time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		sunday, err := resolver.Resolve(weekdays, nil, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Len(t, monday, 1)
		assert.Len(t, friday, 1)
		assert.Empty(t, sunday)
	})

	t.Run("Corrupt stored time surfaces an error", func(t *testing.T) {
		broken := Window{FromWeekDay: 0, ToWeekDay: 6, FromTime: "8h", ToTime: "12:00:00"}
		_, err := NewResolver(NewNormalizer(time.UTC)).Resolve(broken, nil, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrInvalidClock)
	})
}
