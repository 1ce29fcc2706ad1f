package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"uuid":             "must be a valid UUID",
	"url":              "must be a valid URL",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number":     "must be a valid phone number",
	"time_of_day":      "must be a valid time in HH:MM or HH:MM:SS format",
	"calendar_date":    "must be a valid date in YYYY-MM-DD format",
	"after_from_time":  "must be later than the start time",
	"weekday_range":    "must not be earlier than the starting weekday",
	"date_range_order": "must not be earlier than the starting date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientClinicRequired                = "you need to register a clinic first"
	ErrClientPlanRequired                  = "your clinic needs an active plan to access this feature"
	ErrClientClinicAlreadyRegistered       = "you already belong to a clinic"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientClinicNotFound                = "clinic not found"
	ErrClientSlotAlreadyBooked             = "the selected time is already booked for this doctor"
	ErrClientSlotBeingBooked               = "the selected time is being booked by someone else, please try again"
	ErrClientInvalidTimeFormat             = "time must be in HH:MM format"
	ErrClientInvalidDateFormat             = "date must be in YYYY-MM-DD format"
	ErrClientInvalidPeriod                 = "'from' must not be after 'to'"
	ErrClientInvalidImageFormat            = "avatar must be a JPEG, PNG or WEBP image"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevURLParamIDValidationFailed = "url param '%s' is not a valid UUID"
	ErrDevInvalidFormat              = "invalid %s format"
	ErrDevInvalidPeriod              = "period start is after period end"
	ErrDevImageValidationFailed      = "uploaded file is not an accepted image"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSessionData         = "session data missing from context"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthClinicMissing         = "session has no clinic"
	ErrDevAuthPlanMissing           = "session user has no plan"
	ErrDevClinicAlreadyLinked       = "user already linked to a clinic"

	// Domain messages
	ErrDevDoctorNotFound      = "doctor not found in clinic"
	ErrDevPatientNotFound     = "patient not found in clinic"
	ErrDevAppointmentNotFound = "appointment not found in clinic"
	ErrDevClinicNotFound      = "clinic not found"
	ErrDevSlotAlreadyBooked   = "unique constraint violated on appointments(doctor_id, date)"
	ErrDevSlotLockNotAcquired = "appointment lock held by another request"
	ErrDevRateLimited         = "client exceeded rate limit"

	// Postgres messages
	ErrDevDBFailedToFindData       = "failed to find data"
	ErrDevDBFailedToInsertData     = "failed to insert data"
	ErrDevDBFailedToUpdateData     = "failed to update data"
	ErrDevDBFailedToDeleteData     = "failed to delete data"
	ErrDevDBFailedToIterateDataset = "failed to iterate dataset"
	ErrDevDBFailedToBeginTx        = "failed to begin transaction"
	ErrDevDBFailedToCommitTx       = "failed to commit transaction"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)
