package appointments

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/slot"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	LockerService         contracts.LockerService
	Publisher             contracts.AppointmentPublisher
	Normalizer            *slot.Normalizer
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	lockerService contracts.LockerService,
	publisher contracts.AppointmentPublisher,
	normalizer *slot.Normalizer,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
		LockerService:         lockerService,
		Publisher:             publisher,
		Normalizer:            normalizer,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
	)

	details, err := uc.AppointmentRepository.FindAll(ctx, session.Clinic())
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error calling AppointmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.BuildAppointmentResponses(details, uc.Normalizer.Location()), nil
}

// Upsert books the local date and time as one UTC instant. Writers of the
// same doctor and instant are serialized by a short lock; the unique index
// on (doctor_id, date) rejects whatever slips through.
func (uc *appointmentUsecase) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertAppointment) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	date, err := slot.ParseDate(request.Date, uc.Normalizer.Location())
	if err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err, "date")
	}
	clock, err := slot.ParseClock(request.Time)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err, "time")
	}
	instant := uc.Normalizer.Combine(date, clock).UTC()

	patient, err := uc.PatientRepository.FindByID(ctx, session.Clinic(), request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.Clinic(), request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyAppointmentLockFormat, doctor.ID, instant.Format(time.RFC3339))
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.APPOINTMENT_LOCK_TTL_IN_SECONDS*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("appointmentUsecase.Upsert slot is being booked by another request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrSlotBeingBooked(nil)
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second*constvars.LOCK_RELEASE_TIMEOUT_IN_SECONDS)
		defer cancel()
		if unlockErr := uc.LockerService.Unlock(unlockCtx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.Upsert error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	appointment := &models.Appointment{
		ID:                      request.ID,
		ClinicID:                session.Clinic(),
		PatientID:               patient.ID,
		DoctorID:                doctor.ID,
		Date:                    instant,
		AppointmentPriceInCents: request.AppointmentPriceInCents,
	}
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	saved, err := uc.AppointmentRepository.Upsert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Upsert error calling AppointmentRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if saved == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	uc.publish(ctx, constvars.EventAppointmentUpserted, saved)

	uc.Log.Info("appointmentUsecase.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, saved.ID),
		zap.Time(constvars.LoggingTimestampKey, saved.Date),
	)
	response := utils.BuildAppointmentResponse(models.AppointmentDetail{
		Appointment: *saved,
		Patient:     *patient,
		Doctor:      *doctor,
	}, uc.Normalizer.Location())
	return &response, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, session.Clinic(), appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	deleted, err := uc.AppointmentRepository.Delete(ctx, session.Clinic(), appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	uc.publish(ctx, constvars.EventAppointmentDeleted, appointment)
	return nil
}

// publish logs failures and returns nothing.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment) {
	err := uc.Publisher.PublishAppointmentEvent(ctx, &requests.AppointmentEvent{
		Event:                   event,
		AppointmentID:           appointment.ID,
		ClinicID:                appointment.ClinicID,
		DoctorID:                appointment.DoctorID,
		PatientID:               appointment.PatientID,
		Date:                    appointment.Date,
		AppointmentPriceInCents: appointment.AppointmentPriceInCents,
		OccurredAt:              uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
