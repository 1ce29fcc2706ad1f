package utils

import (
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	dateRegex        = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	timeHHMMRegex    = regexp.MustCompile(constvars.RegexTimeHHMM)
	timeHHMMSSRegex  = regexp.MustCompile(constvars.RegexTimeHHMMSS)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
	validate.RegisterStructValidation(validateWeeklyWindow, requests.UpsertDoctor{}, requests.UpsertDoctorAvailability{})
	validate.RegisterStructValidation(validateDashboardPeriod, requests.DashboardPeriod{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS".
func ParseTimeOfDay(value string) (time.Time, bool) {
	switch {
	case timeHHMMRegex.MatchString(value):
		parsed, err := time.Parse(constvars.ShortTimeLayout, value)
		return parsed, err == nil
	case timeHHMMSSRegex.MatchString(value):
		parsed, err := time.Parse(constvars.TimeOfDayLayout, value)
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 && specialCharRegex.MatchString(password) && uppercaseRegex.MatchString(password)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(fl.Field().String())
	return phoneNumberRegex.MatchString(phoneNumber)
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, ok := ParseTimeOfDay(fl.Field().String())
	return ok
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateLayout, value)
	return err == nil
}

func validateWeeklyWindow(sl validator.StructLevel) {
	var (
		fromWeekDay, toWeekDay        *int
		fromTime, toTime              string
		toWeekDayField, toTimeField   string
		toWeekDayStruct, toTimeStruct string
	)

	switch request := sl.Current().Interface().(type) {
	case requests.UpsertDoctor:
		fromWeekDay, toWeekDay = request.AvailableFromWeekDay, request.AvailableToWeekDay
		fromTime, toTime = request.AvailableFromTime, request.AvailableToTime
		toWeekDayField, toWeekDayStruct = "availableToWeekDay", "AvailableToWeekDay"
		toTimeField, toTimeStruct = "availableToTime", "AvailableToTime"
	case requests.UpsertDoctorAvailability:
		fromWeekDay, toWeekDay = request.FromWeekDay, request.ToWeekDay
		fromTime, toTime = request.FromTime, request.ToTime
		toWeekDayField, toWeekDayStruct = "toWeekDay", "ToWeekDay"
		toTimeField, toTimeStruct = "toTime", "ToTime"
	default:
		return
	}

	if fromWeekDay != nil && toWeekDay != nil && *fromWeekDay > *toWeekDay {
		sl.ReportError(*toWeekDay, toWeekDayField, toWeekDayStruct, "weekday_range", "")
	}

	from, fromOK := ParseTimeOfDay(fromTime)
	to, toOK := ParseTimeOfDay(toTime)
	if fromOK && toOK && !from.Before(to) {
		sl.ReportError(toTime, toTimeField, toTimeStruct, "after_from_time", "")
	}
}

func validateDashboardPeriod(sl validator.StructLevel) {
	request := sl.Current().Interface().(requests.DashboardPeriod)
	if request.From == "" || request.To == "" {
		return
	}

	from, errFrom := time.Parse(constvars.DateLayout, request.From)
	to, errTo := time.Parse(constvars.DateLayout, request.To)
	if errFrom == nil && errTo == nil && to.Before(from) {
		sl.ReportError(request.To, "to", "To", "date_range_order", "")
	}
}
