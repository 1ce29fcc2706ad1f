package mocks

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct{ mock.Mock }

func (m *AuthUsecase) SignUp(ctx context.Context, request *requests.SignUp) (*responses.SignUp, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.SignUp)
	return response, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

type ClinicUsecase struct{ mock.Mock }

func (m *ClinicUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateClinic) (*responses.Clinic, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Clinic)
	return response, args.Error(1)
}

func (m *ClinicUsecase) FindMine(ctx context.Context, session *models.Session) (*responses.Clinic, error) {
	args := m.Called(ctx, session)
	response, _ := args.Get(0).(*responses.Clinic)
	return response, args.Error(1)
}

type DoctorUsecase struct{ mock.Mock }

func (m *DoctorUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindDoctors) ([]responses.Doctor, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).([]responses.Doctor)
	return response, args.Error(1)
}

func (m *DoctorUsecase) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Doctor)
	return response, args.Error(1)
}

func (m *DoctorUsecase) Delete(ctx context.Context, session *models.Session, doctorID string) error {
	return m.Called(ctx, session, doctorID).Error(0)
}

func (m *DoctorUsecase) FindAvailabilities(ctx context.Context, session *models.Session, doctorID string) ([]responses.DoctorAvailability, error) {
	args := m.Called(ctx, session, doctorID)
	response, _ := args.Get(0).([]responses.DoctorAvailability)
	return response, args.Error(1)
}

func (m *DoctorUsecase) UpsertAvailability(ctx context.Context, session *models.Session, request *requests.UpsertDoctorAvailability) (*responses.DoctorAvailability, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.DoctorAvailability)
	return response, args.Error(1)
}

func (m *DoctorUsecase) UploadAvatar(ctx context.Context, session *models.Session, request *requests.UploadDoctorAvatar) (*responses.Doctor, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Doctor)
	return response, args.Error(1)
}

func (m *DoctorUsecase) FindAvailableTimes(ctx context.Context, session *models.Session, request *requests.FindAvailableTimes) ([]responses.AvailableTime, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).([]responses.AvailableTime)
	return response, args.Error(1)
}

type PatientUsecase struct{ mock.Mock }

func (m *PatientUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.FindPatients) ([]responses.Patient, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).([]responses.Patient)
	return response, args.Error(1)
}

func (m *PatientUsecase) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*responses.Patient, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Patient)
	return response, args.Error(1)
}

func (m *PatientUsecase) Delete(ctx context.Context, session *models.Session, patientID string) error {
	return m.Called(ctx, session, patientID).Error(0)
}

func (m *PatientUsecase) FindHistory(ctx context.Context, session *models.Session, patientID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, session, patientID)
	response, _ := args.Get(0).([]responses.Appointment)
	return response, args.Error(1)
}

type AppointmentUsecase struct{ mock.Mock }

func (m *AppointmentUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	args := m.Called(ctx, session)
	response, _ := args.Get(0).([]responses.Appointment)
	return response, args.Error(1)
}

func (m *AppointmentUsecase) Upsert(ctx context.Context, session *models.Session, request *requests.UpsertAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Appointment)
	return response, args.Error(1)
}

func (m *AppointmentUsecase) Delete(ctx context.Context, session *models.Session, appointmentID string) error {
	return m.Called(ctx, session, appointmentID).Error(0)
}

type DashboardUsecase struct{ mock.Mock }

func (m *DashboardUsecase) Find(ctx context.Context, session *models.Session, request *requests.DashboardPeriod) (*responses.Dashboard, error) {
	args := m.Called(ctx, session, request)
	response, _ := args.Get(0).(*responses.Dashboard)
	return response, args.Error(1)
}
