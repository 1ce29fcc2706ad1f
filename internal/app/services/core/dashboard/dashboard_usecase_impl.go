package dashboard

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
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	DashboardRepository   contracts.DashboardRepository
	AppointmentRepository contracts.AppointmentRepository
	Normalizer            *slot.Normalizer
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewDashboardUsecase(
	dashboardRepository contracts.DashboardRepository,
	appointmentRepository contracts.AppointmentRepository,
	normalizer *slot.Normalizer,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		DashboardRepository:   dashboardRepository,
		AppointmentRepository: appointmentRepository,
		Normalizer:            normalizer,
		Log:                   logger,
		now:                   time.Now,
	}
}

// Find reports on the inclusive local period [from, to]. Both ends default to
// the current month. Today's agenda and the daily series are always anchored
// on today, not on the requested period.
func (uc *dashboardUsecase) Find(ctx context.Context, session *models.Session, request *requests.DashboardPeriod) (*responses.Dashboard, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("dashboardUsecase.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, session.Clinic()),
		zap.String(constvars.LoggingPeriodFromKey, request.From),
		zap.String(constvars.LoggingPeriodToKey, request.To),
	)

	location := uc.Normalizer.Location()
	today, err := slot.ParseDate(uc.now().In(location).Format(constvars.DateLayout), location)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	fromDate, toDate, err := uc.parsePeriod(request, today)
	if err != nil {
		return nil, err
	}
	from, _ := uc.Normalizer.DayRange(fromDate)
	_, to := uc.Normalizer.DayRange(toDate)

	todayStart, todayEnd := uc.Normalizer.DayRange(today)
	seriesFirstDay := today.AddDate(0, 0, -constvars.DASHBOARD_DAILY_SERIES_RANGE_IN_DAY)
	seriesLastDay := today.AddDate(0, 0, constvars.DASHBOARD_DAILY_SERIES_RANGE_IN_DAY)
	seriesStart, _ := uc.Normalizer.DayRange(seriesFirstDay)
	_, seriesEnd := uc.Normalizer.DayRange(seriesLastDay)

	clinicID := session.Clinic()
	var (
		totals         *models.DashboardTotals
		topDoctors     []models.DoctorAppointmentCount
		topSpecialties []models.SpecialtyAppointmentCount
		todays         []models.AppointmentDetail
		daily          []models.DailyAppointmentCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = uc.DashboardRepository.FindTotals(gctx, clinicID, from, to)
		return err
	})
	g.Go(func() (err error) {
		topDoctors, err = uc.DashboardRepository.FindTopDoctors(gctx, clinicID, from, to, constvars.DASHBOARD_TOP_DOCTORS_LIMIT)
		return err
	})
	g.Go(func() (err error) {
		topSpecialties, err = uc.DashboardRepository.FindTopSpecialties(gctx, clinicID, from, to)
		return err
	})
	g.Go(func() (err error) {
		todays, err = uc.AppointmentRepository.FindBetween(gctx, clinicID, todayStart, todayEnd)
		return err
	})
	g.Go(func() (err error) {
		daily, err = uc.DashboardRepository.FindDailyAppointments(gctx, clinicID, seriesStart, seriesEnd, location)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.Log.Error("dashboardUsecase.Find error loading aggregates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.Dashboard{
		From:              fromDate.Format(constvars.DateLayout),
		To:                toDate.Format(constvars.DateLayout),
		TotalRevenue:      totals.TotalRevenue,
		TotalAppointments: totals.TotalAppointments,
		TotalPatients:     totals.TotalPatients,
		TotalDoctors:      totals.TotalDoctors,
		TopDoctors:        make([]responses.DashboardDoctor, 0, len(topDoctors)),
		TopSpecialties:    make([]responses.DashboardSpecialty, 0, len(topSpecialties)),
		TodayAppointments: utils.BuildAppointmentResponses(todays, location),
		DailyAppointments: fillDailySeries(daily, seriesFirstDay, seriesLastDay),
	}
	for _, doctor := range topDoctors {
		response.TopDoctors = append(response.TopDoctors, responses.DashboardDoctor{
			ID:                doctor.ID,
			Name:              doctor.Name,
			Specialty:         doctor.Specialty,
			AvatarImageURL:    doctor.AvatarImageURL,
			TotalAppointments: doctor.TotalAppointments,
		})
	}
	for _, specialty := range topSpecialties {
		response.TopSpecialties = append(response.TopSpecialties, responses.DashboardSpecialty{
			Specialty:         specialty.Specialty,
			TotalAppointments: specialty.TotalAppointments,
		})
	}

	uc.Log.Info("dashboardUsecase.Find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, response.TotalAppointments),
	)
	return response, nil
}

func (uc *dashboardUsecase) parsePeriod(request *requests.DashboardPeriod, today time.Time) (time.Time, time.Time, error) {
	location := uc.Normalizer.Location()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, location)
	to := from.AddDate(0, 1, -1)

	var err error
	if request.From != "" {
		if from, err = slot.ParseDate(request.From, location); err != nil {
			return time.Time{}, time.Time{}, exceptions.ErrInvalidDateFormat(err, "from")
		}
	}
	if request.To != "" {
		if to, err = slot.ParseDate(request.To, location); err != nil {
			return time.Time{}, time.Time{}, exceptions.ErrInvalidDateFormat(err, "to")
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, exceptions.ErrInvalidPeriod(nil)
	}
	return from, to, nil
}

// fillDailySeries emits one point per local day in [first, last], zero where
// nothing was booked.
func fillDailySeries(counts []models.DailyAppointmentCount, first, last time.Time) []responses.DashboardDailyPoint {
	byDay := make(map[string]models.DailyAppointmentCount, len(counts))
	for _, count := range counts {
		byDay[count.Date.Format(constvars.DateLayout)] = count
	}

	var series []responses.DashboardDailyPoint
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(constvars.DateLayout)
		point := responses.DashboardDailyPoint{Date: key}
		if count, ok := byDay[key]; ok {
			point.Appointments = count.Appointments
			point.Revenue = count.Revenue
		}
		series = append(series, point)
	}
	return series
}
