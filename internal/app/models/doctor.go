package models

// Doctor stores its primary availability window as UTC times of day.
type Doctor struct {
	ID                      string  `json:"id" db:"id"`
	ClinicID                string  `json:"clinicId" db:"clinic_id"`
	Name                    string  `json:"name" db:"name"`
	Specialty               string  `json:"specialty" db:"specialty"`
	Sex                     string  `json:"sex" db:"sex"`
	AvatarImageURL          *string `json:"avatarImageUrl" db:"avatar_image_url"`
	AppointmentPriceInCents int64   `json:"appointmentPriceInCents" db:"appointment_price_in_cents"`
	AvailableFromWeekDay    int     `json:"availableFromWeekDay" db:"available_from_week_day"`
	AvailableToWeekDay      int     `json:"availableToWeekDay" db:"available_to_week_day"`
	AvailableFromTime       string  `json:"availableFromTime" db:"available_from_time"`
	AvailableToTime         string  `json:"availableToTime" db:"available_to_time"`
	TimeModel
}

// DoctorAvailability is an additional weekly window, UTC times of day.
type DoctorAvailability struct {
	ID          string `json:"id" db:"id"`
	DoctorID    string `json:"doctorId" db:"doctor_id"`
	FromWeekDay int    `json:"fromWeekDay" db:"from_week_day"`
	ToWeekDay   int    `json:"toWeekDay" db:"to_week_day"`
	FromTime    string `json:"fromTime" db:"from_time"`
	ToTime      string `json:"toTime" db:"to_time"`
	TimeModel
}
