package models

import "time"

type DashboardTotals struct {
	TotalRevenue      int64
	TotalAppointments int64
	TotalPatients     int64
	TotalDoctors      int64
}

type DoctorAppointmentCount struct {
	ID                string
	Name              string
	Specialty         string
	AvatarImageURL    *string
	TotalAppointments int64
}

type SpecialtyAppointmentCount struct {
	Specialty         string
	TotalAppointments int64
}

type DailyAppointmentCount struct {
	Date         time.Time
	Appointments int64
	Revenue      int64
}
