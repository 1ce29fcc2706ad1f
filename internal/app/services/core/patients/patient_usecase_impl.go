package patients

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
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

type patientUsecase struct {
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	Location              *time.Location
	Log                   *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	location *time.Location,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:     patientRepository,
		AppointmentRepository: appointmentRepository,
		Location:              location,
		Log:                   logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindPatients) ([]responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
	)

	patients, err := uc.PatientRepository.FindAll(ctx, session.Clinic(), request.Name)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error calling PatientRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		response = append(response, utils.BuildPatientResponse(&patients[i]))
	}
	return response, nil
}

func (uc *patientUsecase) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*responses.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
	)

	patient := &models.Patient{
		ID:          request.ID,
		ClinicID:    session.Clinic(),
		Name:        request.Name,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Sex:         request.Sex,
	}
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}

	saved, err := uc.PatientRepository.Upsert(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Upsert error calling PatientRepository.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if saved == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	uc.Log.Info("patientUsecase.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, saved.ID),
	)
	response := utils.BuildPatientResponse(saved)
	return &response, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, session *models.Session, patientID string) error {
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	deleted, err := uc.PatientRepository.Delete(ctx, session.Clinic(), patientID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}

// FindHistory lists the patient's appointments, newest first.
func (uc *patientUsecase) FindHistory(ctx context.Context, session *models.Session, patientID string) ([]responses.Appointment, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, session.Clinic(), patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	details, err := uc.AppointmentRepository.FindByPatientID(ctx, session.Clinic(), patientID)
	if err != nil {
		return nil, err
	}
	return utils.BuildAppointmentResponses(details, uc.Location), nil
}
