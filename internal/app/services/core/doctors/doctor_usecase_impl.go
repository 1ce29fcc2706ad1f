package doctors

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/slot"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	Storage               contracts.Storage
	Normalizer            *slot.Normalizer
	Resolver              *slot.Resolver
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	storage contracts.Storage,
	normalizer *slot.Normalizer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:      doctorRepository,
		AppointmentRepository: appointmentRepository,
		Storage:               storage,
		Normalizer:            normalizer,
		Resolver:              slot.NewResolver(normalizer),
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *doctorUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindDoctors) ([]responses.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx, session.Clinic(), request.Name)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error calling DoctorRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		doctor, err := uc.toDoctorResponse(&doctors[i])
		if err != nil {
			return nil, err
		}
		response = append(response, *doctor)
	}

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

// Upsert stores the primary window in UTC. Weekdays are kept as given.
func (uc *doctorUsecase) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertDoctor) (*responses.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
	)

	reference := uc.now()
	fromTime, err := uc.Normalizer.ToUTC(request.AvailableFromTime, reference)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, "availableFromTime")
	}
	toTime, err := uc.Normalizer.ToUTC(request.AvailableToTime, reference)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, "availableToTime")
	}

	doctor := &models.Doctor{
		ID:                      request.ID,
		ClinicID:                session.Clinic(),
		Name:                    request.Name,
		Specialty:               request.Specialty,
		Sex:                     request.Sex,
		AppointmentPriceInCents: request.AppointmentPriceInCents,
		AvailableFromWeekDay:    *request.AvailableFromWeekDay,
		AvailableToWeekDay:      *request.AvailableToWeekDay,
		AvailableFromTime:       fromTime,
		AvailableToTime:         toTime,
	}
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}
	if request.AvatarImageURL != "" {
		doctor.AvatarImageURL = &request.AvatarImageURL
	}

	saved, err := uc.DoctorRepository.Upsert(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.Upsert error calling DoctorRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if saved == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	uc.Log.Info("doctorUsecase.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, saved.ID),
	)
	return uc.toDoctorResponse(saved)
}

func (uc *doctorUsecase) Delete(ctx context.Context, session *models.Session, doctorID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	deleted, err := uc.DoctorRepository.Delete(ctx, session.Clinic(), doctorID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}

func (uc *doctorUsecase) FindAvailabilities(ctx context.Context, session *models.Session, doctorID string) ([]responses.DoctorAvailability, error) {
	_, err := uc.findDoctor(ctx, session, doctorID)
	if err != nil {
		return nil, err
	}

	availabilities, err := uc.DoctorRepository.FindAvailabilities(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.DoctorAvailability, 0, len(availabilities))
	for i := range availabilities {
		availability, err := uc.toAvailabilityResponse(&availabilities[i])
		if err != nil {
			return nil, err
		}
		response = append(response, *availability)
	}
	return response, nil
}

func (uc *doctorUsecase) UpsertAvailability(ctx context.Context, session *models.Session, request *requests.UpsertDoctorAvailability) (*responses.DoctorAvailability, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.UpsertAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	_, err := uc.findDoctor(ctx, session, request.DoctorID)
	if err != nil {
		return nil, err
	}

	reference := uc.now()
	fromTime, err := uc.Normalizer.ToUTC(request.FromTime, reference)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, "fromTime")
	}
	toTime, err := uc.Normalizer.ToUTC(request.ToTime, reference)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, "toTime")
	}

	availability := &models.DoctorAvailability{
		ID:          request.ID,
		DoctorID:    request.DoctorID,
		FromWeekDay: *request.FromWeekDay,
		ToWeekDay:   *request.ToWeekDay,
		FromTime:    fromTime,
		ToTime:      toTime,
	}
	if availability.ID == "" {
		availability.ID = uuid.NewString()
	}

	saved, err := uc.DoctorRepository.UpsertAvailability(ctx, availability)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpsertAvailability error calling DoctorRepository.UpsertAvailability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if saved == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return uc.toAvailabilityResponse(saved)
}

func (uc *doctorUsecase) UploadAvatar(ctx context.Context, session *models.Session, request *requests.UploadDoctorAvatar) (*responses.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	_, err := uc.findDoctor(ctx, session, request.DoctorID)
	if err != nil {
		return nil, err
	}

	objectName := utils.GenerateAvatarObjectName(request.DoctorID, request.FileExtension)
	uc.Log.Info("doctorUsecase.UploadAvatar uploading object",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	avatarURL, err := uc.Storage.UploadObject(ctx, uc.InternalConfig.Minio.AvatarBucketName, objectName, request.ContentType, request.File, request.FileSize)
	if err != nil {
		uc.Log.Error("doctorUsecase.UploadAvatar error calling Storage.UploadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	doctor, err := uc.DoctorRepository.UpdateAvatar(ctx, session.Clinic(), request.DoctorID, avatarURL)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return uc.toDoctorResponse(doctor)
}

// FindAvailableTimes lists the doctor's slots on a local calendar date, booked ones included.
func (uc *doctorUsecase) FindAvailableTimes(ctx context.Context, session *models.Session, request *requests.FindAvailableTimes) ([]responses.AvailableTime, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("doctorUsecase.FindAvailableTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	date, err := slot.ParseDate(request.Date, uc.Normalizer.Location())
	if err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err, "date")
	}

	doctor, err := uc.findDoctor(ctx, session, request.DoctorID)
	if err != nil {
		return nil, err
	}

	availabilities, err := uc.DoctorRepository.FindAvailabilities(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := uc.Normalizer.DayRange(date)
	booked, err := uc.AppointmentRepository.FindBookedTimes(ctx, doctor.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	additional := make([]slot.Window, 0, len(availabilities))
	for _, availability := range availabilities {
		additional = append(additional, availabilityWindow(availability))
	}

	slots, err := uc.Resolver.Schedule(doctorWindow(doctor), additional, date, uc.granularity(), booked)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAvailableTimes stored availability is corrupt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return nil, exceptions.ErrServerProcess(err)
	}

	response := make([]responses.AvailableTime, 0, len(slots))
	for _, s := range slots {
		label := uc.Normalizer.LocalLabel(s.Time)
		response = append(response, responses.AvailableTime{
			Value:     label,
			Label:     label,
			Available: s.Available,
		})
	}

	uc.Log.Info("doctorUsecase.FindAvailableTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) findDoctor(ctx context.Context, session *models.Session, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, session.Clinic(), doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) granularity() time.Duration {
	minutes := uc.InternalConfig.App.SlotGranularityInMinutes
	if minutes <= 0 {
		return slot.DefaultGranularity
	}
	return time.Duration(minutes) * time.Minute
}

func doctorWindow(doctor *models.Doctor) slot.Window {
	return slot.Window{
		FromWeekDay: doctor.AvailableFromWeekDay,
		ToWeekDay:   doctor.AvailableToWeekDay,
		FromTime:    doctor.AvailableFromTime,
		ToTime:      doctor.AvailableToTime,
	}
}

func availabilityWindow(availability models.DoctorAvailability) slot.Window {
	return slot.Window{
		FromWeekDay: availability.FromWeekDay,
		ToWeekDay:   availability.ToWeekDay,
		FromTime:    availability.FromTime,
		ToTime:      availability.ToTime,
	}
}

func (uc *doctorUsecase) toDoctorResponse(doctor *models.Doctor) (*responses.Doctor, error) {
	reference := uc.now()
	fromTime, err := uc.Normalizer.ToLocal(doctor.AvailableFromTime, time.Weekday(doctor.AvailableFromWeekDay), reference)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	toTime, err := uc.Normalizer.ToLocal(doctor.AvailableToTime, time.Weekday(doctor.AvailableToWeekDay), reference)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	return &responses.Doctor{
		ID:                      doctor.ID,
		ClinicID:                doctor.ClinicID,
		Name:                    doctor.Name,
		Specialty:               doctor.Specialty,
		Sex:                     doctor.Sex,
		AvatarImageURL:          doctor.AvatarImageURL,
		AppointmentPriceInCents: doctor.AppointmentPriceInCents,
		AvailableFromWeekDay:    doctor.AvailableFromWeekDay,
		AvailableToWeekDay:      doctor.AvailableToWeekDay,
		AvailableFromTime:       fromTime.String(),
		AvailableToTime:         toTime.String(),
	}, nil
}

func (uc *doctorUsecase) toAvailabilityResponse(availability *models.DoctorAvailability) (*responses.DoctorAvailability, error) {
	reference := uc.now()
	fromTime, err := uc.Normalizer.ToLocal(availability.FromTime, time.Weekday(availability.FromWeekDay), reference)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	toTime, err := uc.Normalizer.ToLocal(availability.ToTime, time.Weekday(availability.ToWeekDay), reference)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	return &responses.DoctorAvailability{
		ID:          availability.ID,
		DoctorID:    availability.DoctorID,
		FromWeekDay: availability.FromWeekDay,
		ToWeekDay:   availability.ToWeekDay,
		FromTime:    fromTime.String(),
		ToTime:      toTime.String(),
	}, nil
}
