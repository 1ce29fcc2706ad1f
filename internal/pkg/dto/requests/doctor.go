package requests

import "io"

// UpsertDoctor carries the primary availability window in the clinic's local time.
type UpsertDoctor struct {
	ID                      string `json:"id" validate:"omitempty,uuid"`
	Name                    string `json:"name" validate:"required,min=3,max=255"`
	Specialty               string `json:"specialty" validate:"required,max=255"`
	Sex                     string `json:"sex" validate:"required,oneof=male female"`
	AvatarImageURL          string `json:"avatarImageUrl" validate:"omitempty,url"`
	AppointmentPriceInCents int64  `json:"appointmentPriceInCents" validate:"gt=0"`
	AvailableFromWeekDay    *int   `json:"availableFromWeekDay" validate:"required,gte=0,lte=6"`
	AvailableToWeekDay      *int   `json:"availableToWeekDay" validate:"required,gte=0,lte=6"`
	AvailableFromTime       string `json:"availableFromTime" validate:"required,time_of_day"`
	AvailableToTime         string `json:"availableToTime" validate:"required,time_of_day"`
}

type UpsertDoctorAvailability struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	DoctorID    string `json:"doctorId" validate:"required,uuid"`
	FromWeekDay *int   `json:"fromWeekDay" validate:"required,gte=0,lte=6"`
	ToWeekDay   *int   `json:"toWeekDay" validate:"required,gte=0,lte=6"`
	FromTime    string `json:"fromTime" validate:"required,time_of_day"`
	ToTime      string `json:"toTime" validate:"required,time_of_day"`
}

type FindDoctors struct {
	Name string `json:"name" validate:"omitempty,max=255"`
}

type FindAvailableTimes struct {
	DoctorID string `json:"doctorId" validate:"required,uuid"`
	Date     string `json:"date" validate:"required,calendar_date"`
}

type UploadDoctorAvatar struct {
	DoctorID      string    `validate:"required,uuid"`
	FileName      string    `validate:"required"`
	ContentType   string    `validate:"required,oneof=image/jpeg image/png image/webp"`
	FileSize      int64     `validate:"gt=0"`
	FileExtension string    `validate:"required,oneof=.jpg .jpeg .png .webp"`
	File          io.Reader `validate:"-"`
}
