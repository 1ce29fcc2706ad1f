package constvars

const (
	URLParamDoctorID      = "doctor_id"
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamName = "name"
	URLQueryParamDate = "date"
	URLQueryParamFrom = "from"
	URLQueryParamTo   = "to"
)

const (
	FormFileAvatar = "avatar"
)
