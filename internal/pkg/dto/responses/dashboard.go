package responses

type Dashboard struct {
	From              string                `json:"from"`
	To                string                `json:"to"`
	TotalRevenue      int64                 `json:"totalRevenue"`
	TotalAppointments int64                 `json:"totalAppointments"`
	TotalPatients     int64                 `json:"totalPatients"`
	TotalDoctors      int64                 `json:"totalDoctors"`
	TopDoctors        []DashboardDoctor     `json:"topDoctors"`
	TopSpecialties    []DashboardSpecialty  `json:"topSpecialties"`
	TodayAppointments []Appointment         `json:"todayAppointments"`
	DailyAppointments []DashboardDailyPoint `json:"dailyAppointmentsData"`
}

type DashboardDoctor struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Specialty         string  `json:"specialty"`
	AvatarImageURL    *string `json:"avatarImageUrl"`
	TotalAppointments int64   `json:"appointments"`
}

type DashboardSpecialty struct {
	Specialty         string `json:"specialty"`
	TotalAppointments int64  `json:"appointments"`
}

type DashboardDailyPoint struct {
	Date         string `json:"date"`
	Appointments int64  `json:"appointments"`
	Revenue      int64  `json:"revenue"`
}
