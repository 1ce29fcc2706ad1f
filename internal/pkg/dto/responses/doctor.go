package responses

type Doctor struct {
	ID                      string  `json:"id"`
	ClinicID                string  `json:"clinicId"`
	Name                    string  `json:"name"`
	Specialty               string  `json:"specialty"`
	Sex                     string  `json:"sex"`
	AvatarImageURL          *string `json:"avatarImageUrl"`
	AppointmentPriceInCents int64   `json:"appointmentPriceInCents"`
	AvailableFromWeekDay    int     `json:"availableFromWeekDay"`
	AvailableToWeekDay      int     `json:"availableToWeekDay"`
	AvailableFromTime       string  `json:"availableFromTime"`
	AvailableToTime         string  `json:"availableToTime"`
}

// DoctorAvailability is an additional window shown in local time.
type DoctorAvailability struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	FromWeekDay int    `json:"fromWeekDay"`
	ToWeekDay   int    `json:"toWeekDay"`
	FromTime    string `json:"fromTime"`
	ToTime      string `json:"toTime"`
}

type AvailableTime struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}
