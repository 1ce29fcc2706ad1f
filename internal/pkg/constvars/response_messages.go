package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	SignUpSuccessMessage = "account created successfully"
	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	// Clinic messages
	CreateClinicSuccessMessage = "clinic created successfully"
	GetClinicSuccessMessage    = "get clinic successfully"

	// Doctor messages
	UpsertDoctorSuccessMessage             = "doctor saved successfully"
	GetDoctorsSuccessMessage               = "get doctors successfully"
	DeleteDoctorSuccessMessage             = "doctor deleted successfully"
	UploadDoctorAvatarSuccessMessage       = "doctor avatar uploaded successfully"
	UpsertDoctorAvailabilitySuccessMessage = "doctor availability saved successfully"
	GetDoctorAvailabilitiesSuccessMessage  = "get doctor availabilities successfully"
	GetAvailableTimesSuccessMessage        = "get available times successfully"

	// Patient messages
	UpsertPatientSuccessMessage     = "patient saved successfully"
	GetPatientsSuccessMessage       = "get patients successfully"
	DeletePatientSuccessMessage     = "patient deleted successfully"
	GetPatientHistorySuccessMessage = "get patient history successfully"

	// Appointment messages
	UpsertAppointmentSuccessMessage = "appointment saved successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"

	// Dashboard messages
	GetDashboardSuccessMessage = "get dashboard successfully"
)
