package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingIsClientIDKey     = "is_client_request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingUserIDKey         = "user_id"
	LoggingClinicIDKey       = "clinic_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingResponseLengthKey = "response_length"
	LoggingDateKey           = "date"
	LoggingTimestampKey      = "timestamp"
	LoggingSlotCountKey      = "slot_count"
	LoggingObjectNameKey     = "object_name"
	LoggingEventKey          = "event"
	LoggingPeriodFromKey     = "period_from"
	LoggingPeriodToKey       = "period_to"
	LoggingTotalKey          = "total"

	LoggingRedisKey              = "redis_key"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingPanicKey      = "panic"
)
