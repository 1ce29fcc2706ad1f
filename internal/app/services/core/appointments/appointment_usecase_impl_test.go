package appointments

import (
	"agenda-service/internal/app/contracts/mocks"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/slot"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testClinicID  = "0b9f8f4e-5d7a-4c59-8a57-1f0d7b0f2c11"
	testDoctorID  = "6a1e7f3b-2c4d-4e5f-9a8b-7c6d5e4f3a21"
	testPatientID = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"
)

type appointmentFixture struct {
	appointments *mocks.AppointmentRepository
	patients     *mocks.PatientRepository
	doctors      *mocks.DoctorRepository
	locker       *mocks.LockerService
	publisher    *mocks.AppointmentPublisher
	usecase      *appointmentUsecase
	session      *models.Session
}

func newAppointmentFixture() *appointmentFixture {
	f := &appointmentFixture{
		appointments: new(mocks.AppointmentRepository),
		patients:     new(mocks.PatientRepository),
		doctors:      new(mocks.DoctorRepository),
		locker:       new(mocks.LockerService),
		publisher:    new(mocks.AppointmentPublisher),
	}
	normalizer := slot.NewNormalizer(time.FixedZone("BRT", -3*60*60))
	f.usecase = NewAppointmentUsecase(f.appointments, f.patients, f.doctors, f.locker, f.publisher, normalizer, zap.NewNop()).(*appointmentUsecase)
	f.usecase.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	clinicID := testClinicID
	f.session = &models.Session{UserID: "user-1", ClinicID: &clinicID}
	return f
}

func (f *appointmentFixture) expectMembers(ctx context.Context) {
	f.patients.On("FindByID", ctx, testClinicID, testPatientID).
		Return(&models.Patient{ID: testPatientID, ClinicID: testClinicID, Name: "Maria"}, nil)
	f.doctors.On("FindByID", ctx, testClinicID, testDoctorID).
		Return(&models.Doctor{ID: testDoctorID, ClinicID: testClinicID, Name: "Dr. Paulo", Specialty: "Cardiologia"}, nil)
}

func upsertRequest() *requests.UpsertAppointment {
	return &requests.UpsertAppointment{
		PatientID:               testPatientID,
		DoctorID:                testDoctorID,
		Date:                    "2024-03-06",
		Time:                    "09:00",
		AppointmentPriceInCents: 15000,
	}
}

func TestAppointmentUsecase_Upsert(t *testing.T) {
	ctx := context.Background()
	instant := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	lockKey := "appointment_lock:" + testDoctorID + ":2024-03-06T12:00:00Z"
	lockTTL := constvars.APPOINTMENT_LOCK_TTL_IN_SECONDS * time.Second

	t.Run("books the local time as a UTC instant", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectMembers(ctx)
		f.locker.On("TryLock", ctx, lockKey, lockTTL).Return(true, "owner-1", nil)
		f.locker.On("Unlock", mock.Anything, lockKey, "owner-1").Return(nil)
		f.appointments.On("Upsert", ctx, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.ID != "" && a.ClinicID == testClinicID && a.Date.Equal(instant)
		})).Return(&models.Appointment{
			ID: "appt-1", ClinicID: testClinicID, PatientID: testPatientID, DoctorID: testDoctorID,
			Date: instant, AppointmentPriceInCents: 15000,
		}, nil)
		f.publisher.On("PublishAppointmentEvent", ctx, mock.MatchedBy(func(e *requests.AppointmentEvent) bool {
			return e.Event == constvars.EventAppointmentUpserted && e.AppointmentID == "appt-1" && e.Date.Equal(instant)
		})).Return(nil)

		response, err := f.usecase.Upsert(ctx, f.session, upsertRequest())
		require.NoError(t, err)
		assert.Equal(t, "appt-1", response.ID)
		assert.True(t, response.Date.Equal(instant))
		assert.Equal(t, "2024-03-06", response.LocalDate)
		assert.Equal(t, "09:00", response.LocalTime)
		assert.Equal(t, "Maria", response.Patient.Name)
		f.locker.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("same id twice updates one record", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectMembers(ctx)
		f.locker.On("TryLock", ctx, mock.Anything, lockTTL).Return(true, "owner-1", nil)
		f.locker.On("Unlock", mock.Anything, mock.Anything, "owner-1").Return(nil)
		f.publisher.On("PublishAppointmentEvent", ctx, mock.Anything).Return(nil)

		request := upsertRequest()
		request.ID = "7f6e5d4c-3b2a-4190-8f7e-6d5c4b3a2910"
		rescheduled := time.Date(2024, 3, 6, 13, 30, 0, 0, time.UTC)

		var ids []string
		capture := func(args mock.Arguments) { ids = append(ids, args.Get(1).(*models.Appointment).ID) }
		f.appointments.On("Upsert", ctx, mock.AnythingOfType("*models.Appointment")).Run(capture).
			Return(&models.Appointment{ID: request.ID, Date: instant, AppointmentPriceInCents: 15000}, nil).Once()
		f.appointments.On("Upsert", ctx, mock.AnythingOfType("*models.Appointment")).Run(capture).
			Return(&models.Appointment{ID: request.ID, Date: rescheduled, AppointmentPriceInCents: 20000}, nil).Once()

		_, err := f.usecase.Upsert(ctx, f.session, request)
		require.NoError(t, err)

		request.Time = "10:30"
		request.AppointmentPriceInCents = 20000
		response, err := f.usecase.Upsert(ctx, f.session, request)
		require.NoError(t, err)

		assert.Equal(t, []string{request.ID, request.ID}, ids)
		assert.Equal(t, "10:30", response.LocalTime)
		assert.Equal(t, int64(20000), response.AppointmentPriceInCents)
		f.locker.AssertNumberOfCalls(t, "TryLock", 2)
	})

	t.Run("patient outside the clinic", func(t *testing.T) {
		f := newAppointmentFixture()
		f.patients.On("FindByID", ctx, testClinicID, testPatientID).Return(nil, nil)

		_, err := f.usecase.Upsert(ctx, f.session, upsertRequest())
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
		f.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("doctor outside the clinic", func(t *testing.T) {
		f := newAppointmentFixture()
		f.patients.On("FindByID", ctx, testClinicID, testPatientID).Return(&models.Patient{ID: testPatientID}, nil)
		f.doctors.On("FindByID", ctx, testClinicID, testDoctorID).Return(nil, nil)

		_, err := f.usecase.Upsert(ctx, f.session, upsertRequest())
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("slot held by another writer", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectMembers(ctx)
		f.locker.On("TryLock", ctx, lockKey, lockTTL).Return(false, "", nil)

		_, err := f.usecase.Upsert(ctx, f.session, upsertRequest())
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.appointments.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("unique index violation", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectMembers(ctx)
		f.locker.On("TryLock", ctx, lockKey, lockTTL).Return(true, "owner-1", nil)
		f.locker.On("Unlock", mock.Anything, lockKey, "owner-1").Return(nil)
		f.appointments.On("Upsert", ctx, mock.Anything).Return(nil, exceptions.ErrSlotAlreadyBooked(errors.New("duplicate key")))

		_, err := f.usecase.Upsert(ctx, f.session, upsertRequest())
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.locker.AssertCalled(t, "Unlock", mock.Anything, lockKey, "owner-1")
		f.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("lock is released after the request is cancelled", func(t *testing.T) {
		f := newAppointmentFixture()
		requestCtx, cancel := context.WithCancel(ctx)
		f.expectMembers(requestCtx)
		f.locker.On("TryLock", requestCtx, lockKey, lockTTL).Return(true, "owner-1", nil)
		f.appointments.On("Upsert", requestCtx, mock.Anything).Run(func(mock.Arguments) {
			cancel()
		}).Return(nil, context.Canceled)
		f.locker.On("Unlock", mock.MatchedBy(func(c context.Context) bool {
			_, hasDeadline := c.Deadline()
			return c.Err() == nil && hasDeadline
		}), lockKey, "owner-1").Return(nil)

		_, err := f.usecase.Upsert(requestCtx, f.session, upsertRequest())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Error(t, requestCtx.Err())
		f.locker.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectMembers(ctx)
		f.locker.On("TryLock", ctx, lockKey, lockTTL).Return(true, "owner-1", nil)
		f.locker.On("Unlock", mock.Anything, lockKey, "owner-1").Return(nil)
		f.appointments.On("Upsert", ctx, mock.Anything).Return(&models.Appointment{ID: "appt-1", Date: instant}, nil)
		f.publisher.On("PublishAppointmentEvent", ctx, mock.Anything).Return(errors.New("broker down"))

		response, err := f.usecase.Upsert(ctx, f.session, upsertRequest())
		require.NoError(t, err)
		assert.Equal(t, "appt-1", response.ID)
	})

	t.Run("malformed time", func(t *testing.T) {
		f := newAppointmentFixture()
		request := upsertRequest()
		request.Time = "24:00"

		_, err := f.usecase.Upsert(ctx, f.session, request)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestAppointmentUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and publishes", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment := &models.Appointment{ID: "appt-1", ClinicID: testClinicID}
		f.appointments.On("FindByID", ctx, testClinicID, "appt-1").Return(appointment, nil)
		f.appointments.On("Delete", ctx, testClinicID, "appt-1").Return(true, nil)
		f.publisher.On("PublishAppointmentEvent", ctx, mock.MatchedBy(func(e *requests.AppointmentEvent) bool {
			return e.Event == constvars.EventAppointmentDeleted
		})).Return(nil)

		require.NoError(t, f.usecase.Delete(ctx, f.session, "appt-1"))
		f.publisher.AssertExpectations(t)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointments.On("FindByID", ctx, testClinicID, "appt-9").Return(nil, nil)

		err := f.usecase.Delete(ctx, f.session, "appt-9")
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestAppointmentUsecase_FindAll(t *testing.T) {
	ctx := context.Background()
	f := newAppointmentFixture()
	f.appointments.On("FindAll", ctx, testClinicID).Return([]models.AppointmentDetail{
		{Appointment: models.Appointment{ID: "appt-1", Date: time.Date(2024, 3, 6, 2, 30, 0, 0, time.UTC)}},
	}, nil)

	response, err := f.usecase.FindAll(ctx, f.session)
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, "2024-03-05", response[0].LocalDate)
	assert.Equal(t, "23:30", response[0].LocalTime)
}
