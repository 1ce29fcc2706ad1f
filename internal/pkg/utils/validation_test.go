package utils

import (
	"agenda-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekday(d int) *int {
	return &d
}

type windowCase struct {
	name             string
	fromDay, toDay   int
	fromTime, toTime string
	wantField        string
	wantTag          string
}

var windowCases = []windowCase{
	{name: "valid weekdays", fromDay: 1, toDay: 5, fromTime: "08:00", toTime: "12:00"},
	{name: "sunday only", fromDay: 0, toDay: 0, fromTime: "08:00", toTime: "12:00"},
	{name: "wrap around the week", fromDay: 5, toDay: 1, fromTime: "08:00", toTime: "12:00", wantField: "ToWeekDay", wantTag: "weekday_range"},
	{name: "equal times", fromDay: 1, toDay: 5, fromTime: "09:00", toTime: "09:00", wantField: "ToTime", wantTag: "after_from_time"},
	{name: "inverted times", fromDay: 1, toDay: 5, fromTime: "18:00", toTime: "08:00:00", wantField: "ToTime", wantTag: "after_from_time"},
}

func assertWindowError(t *testing.T, err error, jsonField, tag string) {
	t.Helper()
	if tag == "" {
		assert.NoError(t, err)
		return
	}

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, jsonField, validationErrors[0].Field())
	assert.Equal(t, tag, validationErrors[0].Tag())
}

func TestValidateStruct_UpsertDoctorWindow(t *testing.T) {
	jsonFields := map[string]string{"ToWeekDay": "availableToWeekDay", "ToTime": "availableToTime"}

	for _, tc := range windowCases {
		t.Run(tc.name, func(t *testing.T) {
			request := &requests.UpsertDoctor{
				Name:                    "Dr. Paulo",
				Specialty:               "Cardiologia",
				Sex:                     "male",
				AppointmentPriceInCents: 15000,
				AvailableFromWeekDay:    weekday(tc.fromDay),
				AvailableToWeekDay:      weekday(tc.toDay),
				AvailableFromTime:       tc.fromTime,
				AvailableToTime:         tc.toTime,
			}

			assertWindowError(t, ValidateStruct(request), jsonFields[tc.wantField], tc.wantTag)
		})
	}
}

func TestValidateStruct_UpsertDoctorAvailabilityWindow(t *testing.T) {
	jsonFields := map[string]string{"ToWeekDay": "toWeekDay", "ToTime": "toTime"}

	for _, tc := range windowCases {
		t.Run(tc.name, func(t *testing.T) {
			request := &requests.UpsertDoctorAvailability{
				DoctorID:    "6a1e7f3b-2c4d-4e5f-9a8b-7c6d5e4f3a21",
				FromWeekDay: weekday(tc.fromDay),
				ToWeekDay:   weekday(tc.toDay),
				FromTime:    tc.fromTime,
				ToTime:      tc.toTime,
			}

			assertWindowError(t, ValidateStruct(request), jsonFields[tc.wantField], tc.wantTag)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	for _, value := range []string{"08:00", "23:59:59"} {
		_, ok := ParseTimeOfDay(value)
		assert.True(t, ok, "value %q should parse", value)
	}
	for _, value := range []string{"8:00", "+9:30", "24:00", "12:60", "noon"} {
		_, ok := ParseTimeOfDay(value)
		assert.False(t, ok, "value %q should be rejected", value)
	}
}
