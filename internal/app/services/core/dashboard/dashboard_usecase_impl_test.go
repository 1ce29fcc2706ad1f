package dashboard

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

const testClinicID = "0b9f8f4e-5d7a-4c59-8a57-1f0d7b0f2c11"

var brt = time.FixedZone("BRT", -3*60*60)

func newDashboardUsecaseForTest() (*mocks.DashboardRepository, *mocks.AppointmentRepository, *dashboardUsecase, *models.Session) {
	dashboardRepo := new(mocks.DashboardRepository)
	appointmentRepo := new(mocks.AppointmentRepository)
	uc := NewDashboardUsecase(dashboardRepo, appointmentRepo, slot.NewNormalizer(brt), zap.NewNop()).(*dashboardUsecase)
	// 2024-03-06 01:00 UTC is still 2024-03-05 in the clinic.
	uc.now = func() time.Time { return time.Date(2024, 3, 6, 1, 0, 0, 0, time.UTC) }
	clinicID := testClinicID
	return dashboardRepo, appointmentRepo, uc, &models.Session{UserID: "user-1", ClinicID: &clinicID}
}

func TestDashboardUsecase_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates the requested period", func(t *testing.T) {
		dashboardRepo, appointmentRepo, uc, session := newDashboardUsecaseForTest()
		from := time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 11, 3, 0, 0, 0, time.UTC)

		dashboardRepo.On("FindTotals", mock.Anything, testClinicID, from, to).Return(&models.DashboardTotals{
			TotalRevenue: 45000, TotalAppointments: 3, TotalPatients: 2, TotalDoctors: 1,
		}, nil)
		dashboardRepo.On("FindTopDoctors", mock.Anything, testClinicID, from, to, constvars.DASHBOARD_TOP_DOCTORS_LIMIT).
			Return([]models.DoctorAppointmentCount{{ID: "d-1", Name: "Dr. Paulo", Specialty: "Cardiologia", TotalAppointments: 3}}, nil)
		dashboardRepo.On("FindTopSpecialties", mock.Anything, testClinicID, from, to).
			Return([]models.SpecialtyAppointmentCount{{Specialty: "Cardiologia", TotalAppointments: 3}}, nil)
		appointmentRepo.On("FindBetween", mock.Anything, testClinicID,
			time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC), time.Date(2024, 3, 6, 3, 0, 0, 0, time.UTC)).
			Return([]models.AppointmentDetail{
				{Appointment: models.Appointment{ID: "a-1", Date: time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC)}},
			}, nil)
		dashboardRepo.On("FindDailyAppointments", mock.Anything, testClinicID,
			time.Date(2024, 2, 24, 3, 0, 0, 0, time.UTC), time.Date(2024, 3, 16, 3, 0, 0, 0, time.UTC), brt).
			Return([]models.DailyAppointmentCount{
				{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Appointments: 2, Revenue: 30000},
			}, nil)

		response, err := uc.Find(ctx, session, &requests.DashboardPeriod{From: "2024-03-01", To: "2024-03-10"})
		require.NoError(t, err)

		assert.Equal(t, "2024-03-01", response.From)
		assert.Equal(t, "2024-03-10", response.To)
		assert.Equal(t, int64(45000), response.TotalRevenue)
		assert.Equal(t, int64(3), response.TotalAppointments)
		require.Len(t, response.TopDoctors, 1)
		assert.Equal(t, "Dr. Paulo", response.TopDoctors[0].Name)
		require.Len(t, response.TopSpecialties, 1)
		require.Len(t, response.TodayAppointments, 1)
		assert.Equal(t, "14:00", response.TodayAppointments[0].LocalTime)

		require.Len(t, response.DailyAppointments, 2*constvars.DASHBOARD_DAILY_SERIES_RANGE_IN_DAY+1)
		assert.Equal(t, "2024-02-24", response.DailyAppointments[0].Date)
		assert.Equal(t, "2024-03-15", response.DailyAppointments[len(response.DailyAppointments)-1].Date)
		today := response.DailyAppointments[constvars.DASHBOARD_DAILY_SERIES_RANGE_IN_DAY]
		assert.Equal(t, "2024-03-05", today.Date)
		assert.Equal(t, int64(2), today.Appointments)
		assert.Equal(t, int64(30000), today.Revenue)
		assert.Zero(t, response.DailyAppointments[0].Appointments)
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		dashboardRepo, appointmentRepo, uc, session := newDashboardUsecaseForTest()
		from := time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC)
		to := time.Date(2024, 4, 1, 3, 0, 0, 0, time.UTC)

		dashboardRepo.On("FindTotals", mock.Anything, testClinicID, from, to).Return(&models.DashboardTotals{}, nil)
		dashboardRepo.On("FindTopDoctors", mock.Anything, testClinicID, from, to, mock.Anything).Return(nil, nil)
		dashboardRepo.On("FindTopSpecialties", mock.Anything, testClinicID, from, to).Return(nil, nil)
		appointmentRepo.On("FindBetween", mock.Anything, testClinicID, mock.Anything, mock.Anything).Return(nil, nil)
		dashboardRepo.On("FindDailyAppointments", mock.Anything, testClinicID, mock.Anything, mock.Anything, brt).Return(nil, nil)

		response, err := uc.Find(ctx, session, &requests.DashboardPeriod{})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", response.From)
		assert.Equal(t, "2024-03-31", response.To)
		assert.Empty(t, response.TopDoctors)
		assert.NotNil(t, response.TodayAppointments)
	})

	t.Run("from after to", func(t *testing.T) {
		_, _, uc, session := newDashboardUsecaseForTest()
		_, err := uc.Find(ctx, session, &requests.DashboardPeriod{From: "2024-03-10", To: "2024-03-01"})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("one failing aggregate fails the request", func(t *testing.T) {
		dashboardRepo, appointmentRepo, uc, session := newDashboardUsecaseForTest()
		dashboardRepo.On("FindTotals", mock.Anything, testClinicID, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrPostgresDBFindData(errors.New("connection reset")))
		dashboardRepo.On("FindTopDoctors", mock.Anything, testClinicID, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		dashboardRepo.On("FindTopSpecialties", mock.Anything, testClinicID, mock.Anything, mock.Anything).Return(nil, nil)
		appointmentRepo.On("FindBetween", mock.Anything, testClinicID, mock.Anything, mock.Anything).Return(nil, nil)
		dashboardRepo.On("FindDailyAppointments", mock.Anything, testClinicID, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		_, err := uc.Find(ctx, session, &requests.DashboardPeriod{})
		assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
	})
}
