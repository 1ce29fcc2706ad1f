package constvars

type ContextKey string

const (
	ResourceAuth         = "auth"
	ResourceClinics      = "clinics"
	ResourceDoctors      = "doctors"
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
	ResourceDashboard    = "dashboard"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "AGENDA_SVC_"
)

const (
	RedisKeySessionFormat         = "session:%s"
	RedisKeyAppointmentLockFormat = "appointment_lock:%s:%s"
	RedisKeyAttemptLimiterFormat  = "%s:%s:%d"
)

const (
	PostgresUniqueViolationCode = "23505"
)

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	DEFAULT_SLOT_GRANULARITY_IN_MINUTES = 30
	DEFAULT_REQUEST_TIMEOUT_IN_SECONDS  = 10
	DASHBOARD_TOP_DOCTORS_LIMIT         = 10
	DASHBOARD_DAILY_SERIES_RANGE_IN_DAY = 10
	APPOINTMENT_LOCK_TTL_IN_SECONDS     = 10
	LOCK_RELEASE_TIMEOUT_IN_SECONDS     = 2
	AVATAR_MAX_UPLOAD_SIZE_IN_MB        = 2
	LOGIN_ATTEMPT_WINDOW_IN_SECONDS     = 300
	LOGIN_MAX_ATTEMPTS_PER_WINDOW       = 10
)

const (
	LimiterGroupLogin = "login"
)

const (
	EventAppointmentUpserted = "appointment.upserted"
	EventAppointmentDeleted  = "appointment.deleted"
)

const (
	DateLayout             = "2006-01-02"
	TimeOfDayLayout        = "15:04:05"
	ShortTimeLayout        = "15:04"
	AvatarObjectNameFormat = "doctors/%s/avatar%s"
)
