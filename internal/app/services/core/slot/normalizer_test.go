package slot

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saoPaulo = time.FixedZone("BRT", -3*60*60)
	tokyo    = time.FixedZone("JST", 9*60*60)
)

func TestParseClock(t *testing.T) {
	t.Run("Accepts HH:MM and HH:MM:SS", func(t *testing.T) {
		c, err := ParseClock("09:30")
		require.NoError(t, err)
		assert.Equal(t, Clock{Hour: 9, Minute: 30}, c)

		c, err = ParseClock("23:59:59")
		require.NoError(t, err)
		assert.Equal(t, Clock{Hour: 23, Minute: 59, Second: 59}, c)
	})

	t.Run("Rejects malformed values", func(t *testing.T) {
		for _, value := range []string{"", "9", "24:00", "12:60", "12:00:60", "ab:cd", "12:00:00:00", "123:00", "-1:30", "+9:30", "9:05", "09:5", "09:30:5", " 9:30", "0x:10"} {
			_, err := ParseClock(value)
			assert.ErrorIs(t, err, ErrInvalidClock, "value %q should be rejected", value)
		}
	})
}

func TestNormalizer_ToUTC(t *testing.T) {
	reference := time.Date(2024, time.March, 6, 0, 0, 0, 0, saoPaulo)

	t.Run("Shifts by the location offset", func(t *testing.T) {
		utc, err := NewNormalizer(saoPaulo).ToUTC("09:00", reference)
		require.NoError(t, err)
		assert.Equal(t, "12:00:00", utc)
	})

	t.Run("UTC location keeps the value", func(t *testing.T) {
		utc, err := NewNormalizer(time.UTC).ToUTC("08:15", reference)
		require.NoError(t, err)
		assert.Equal(t, "08:15:00", utc)
	})

	t.Run("Crosses midnight backwards", func(t *testing.T) {
		utc, err := NewNormalizer(tokyo).ToUTC("08:00", time.Date(2024, time.March, 6, 0, 0, 0, 0, tokyo))
		require.NoError(t, err)
		assert.Equal(t, "23:00:00", utc)
	})

	t.Run("Malformed input", func(t *testing.T) {
		_, err := NewNormalizer(saoPaulo).ToUTC("25:00", reference)
		assert.ErrorIs(t, err, ErrInvalidClock)
	})
}

func TestNormalizer_ToLocal(t *testing.T) {
	reference := time.Date(2024, time.March, 6, 0, 0, 0, 0, saoPaulo)

	c, err := NewNormalizer(saoPaulo).ToLocal("12:00:00", time.Wednesday, reference)
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 9}, c)

	c, err = NewNormalizer(tokyo).ToLocal("23:00:00", time.Monday, reference)
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 8}, c)

	_, err = NewNormalizer(saoPaulo).ToLocal("noon", time.Monday, reference)
	assert.ErrorIs(t, err, ErrInvalidClock)
}

func TestNormalizer_ToLocal_EastOfUTC(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	normalizer := NewNormalizer(berlin)

	sunday := time.Date(2024, time.March, 31, 0, 0, 0, 0, berlin)
	monday := time.Date(2024, time.April, 1, 0, 0, 0, 0, berlin)

	t.Run("Local Sunday stays in its own week", func(t *testing.T) {
		c, err := normalizer.ToLocal("08:00:00", time.Sunday, sunday)
		require.NoError(t, err)
		assert.Equal(t, Clock{Hour: 10}, c)
	})

	t.Run("Same offset as the following Monday", func(t *testing.T) {
		c, err := normalizer.ToLocal("08:00:00", time.Monday, monday)
		require.NoError(t, err)
		assert.Equal(t, Clock{Hour: 10}, c)
	})

	t.Run("Sunday before the switch keeps winter time", func(t *testing.T) {
		c, err := normalizer.ToLocal("08:00:00", time.Sunday, time.Date(2024, time.March, 24, 0, 0, 0, 0, berlin))
		require.NoError(t, err)
		assert.Equal(t, Clock{Hour: 9}, c)
	})
}

func TestNormalizer_RoundTrip(t *testing.T) {
	for _, location := range []*time.Location{time.UTC, saoPaulo, tokyo} {
		normalizer := NewNormalizer(location)
		reference := time.Date(2024, time.March, 6, 0, 0, 0, 0, location)

		for hour := 0; hour < 24; hour++ {
			for _, minute := range []int{0, 15, 30, 45} {
				local := Clock{Hour: hour, Minute: minute}

				utc, err := normalizer.ToUTC(local.Short(), reference)
				require.NoError(t, err)

				back, err := normalizer.ToLocal(utc, reference.Weekday(), reference)
				require.NoError(t, err)
				assert.Equal(t, local, back, "round trip of %s in %s", local.Short(), location)
			}
		}
	}
}

func TestNormalizer_DayRange(t *testing.T) {
	start, end := NewNormalizer(saoPaulo).DayRange(time.Date(2024, time.March, 6, 0, 0, 0, 0, saoPaulo))

	assert.Equal(t, time.Date(2024, time.March, 6, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 7, 3, 0, 0, 0, time.UTC), end)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-06", saoPaulo)
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, date.Weekday())
	assert.Equal(t, saoPaulo, date.Location())

	_, err = ParseDate("2024-02-30", saoPaulo)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("06/03/2024", saoPaulo)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
