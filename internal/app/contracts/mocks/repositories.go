// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"agenda-service/internal/app/models"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*models.User)
	return created, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type ClinicRepository struct{ mock.Mock }

func (m *ClinicRepository) CreateWithOwner(ctx context.Context, clinic *models.Clinic, userID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinic, userID)
	created, _ := args.Get(0).(*models.Clinic)
	return created, args.Error(1)
}

func (m *ClinicRepository) FindByUserID(ctx context.Context, userID string) (*models.Clinic, error) {
	args := m.Called(ctx, userID)
	clinic, _ := args.Get(0).(*models.Clinic)
	return clinic, args.Error(1)
}

func (m *ClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	clinic, _ := args.Get(0).(*models.Clinic)
	return clinic, args.Error(1)
}

type DoctorRepository struct{ mock.Mock }

func (m *DoctorRepository) FindAll(ctx context.Context, clinicID, name string) ([]models.Doctor, error) {
	args := m.Called(ctx, clinicID, name)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *DoctorRepository) FindByID(ctx context.Context, clinicID, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, clinicID, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorRepository) Upsert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	saved, _ := args.Get(0).(*models.Doctor)
	return saved, args.Error(1)
}

func (m *DoctorRepository) Delete(ctx context.Context, clinicID, doctorID string) (bool, error) {
	args := m.Called(ctx, clinicID, doctorID)
	return args.Bool(0), args.Error(1)
}

func (m *DoctorRepository) UpdateAvatar(ctx context.Context, clinicID, doctorID, avatarImageURL string) (*models.Doctor, error) {
	args := m.Called(ctx, clinicID, doctorID, avatarImageURL)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorRepository) FindAvailabilities(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	args := m.Called(ctx, doctorID)
	availabilities, _ := args.Get(0).([]models.DoctorAvailability)
	return availabilities, args.Error(1)
}

func (m *DoctorRepository) UpsertAvailability(ctx context.Context, availability *models.DoctorAvailability) (*models.DoctorAvailability, error) {
	args := m.Called(ctx, availability)
	saved, _ := args.Get(0).(*models.DoctorAvailability)
	return saved, args.Error(1)
}

type PatientRepository struct{ mock.Mock }

func (m *PatientRepository) FindAll(ctx context.Context, clinicID, name string) ([]models.Patient, error) {
	args := m.Called(ctx, clinicID, name)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *PatientRepository) FindByID(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, clinicID, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) Upsert(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	saved, _ := args.Get(0).(*models.Patient)
	return saved, args.Error(1)
}

func (m *PatientRepository) Delete(ctx context.Context, clinicID, patientID string) (bool, error) {
	args := m.Called(ctx, clinicID, patientID)
	return args.Bool(0), args.Error(1)
}

type AppointmentRepository struct{ mock.Mock }

func (m *AppointmentRepository) FindAll(ctx context.Context, clinicID string) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, clinicID)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

func (m *AppointmentRepository) FindByID(ctx context.Context, clinicID, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, clinicID, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentRepository) FindByPatientID(ctx context.Context, clinicID, patientID string) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, clinicID, patientID)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

func (m *AppointmentRepository) FindBetween(ctx context.Context, clinicID string, from, to time.Time) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, clinicID, from, to)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

func (m *AppointmentRepository) FindBookedTimes(ctx context.Context, doctorID string, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, doctorID, from, to)
	booked, _ := args.Get(0).([]time.Time)
	return booked, args.Error(1)
}

func (m *AppointmentRepository) Upsert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	saved, _ := args.Get(0).(*models.Appointment)
	return saved, args.Error(1)
}

func (m *AppointmentRepository) Delete(ctx context.Context, clinicID, appointmentID string) (bool, error) {
	args := m.Called(ctx, clinicID, appointmentID)
	return args.Bool(0), args.Error(1)
}

type DashboardRepository struct{ mock.Mock }

func (m *DashboardRepository) FindTotals(ctx context.Context, clinicID string, from, to time.Time) (*models.DashboardTotals, error) {
	args := m.Called(ctx, clinicID, from, to)
	totals, _ := args.Get(0).(*models.DashboardTotals)
	return totals, args.Error(1)
}

func (m *DashboardRepository) FindTopDoctors(ctx context.Context, clinicID string, from, to time.Time, limit int) ([]models.DoctorAppointmentCount, error) {
	args := m.Called(ctx, clinicID, from, to, limit)
	doctors, _ := args.Get(0).([]models.DoctorAppointmentCount)
	return doctors, args.Error(1)
}

func (m *DashboardRepository) FindTopSpecialties(ctx context.Context, clinicID string, from, to time.Time) ([]models.SpecialtyAppointmentCount, error) {
	args := m.Called(ctx, clinicID, from, to)
	specialties, _ := args.Get(0).([]models.SpecialtyAppointmentCount)
	return specialties, args.Error(1)
}

func (m *DashboardRepository) FindDailyAppointments(ctx context.Context, clinicID string, from, to time.Time, location *time.Location) ([]models.DailyAppointmentCount, error) {
	args := m.Called(ctx, clinicID, from, to, location)
	points, _ := args.Get(0).([]models.DailyAppointmentCount)
	return points, args.Error(1)
}
