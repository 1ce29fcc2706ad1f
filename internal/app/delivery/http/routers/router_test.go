package routers

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts/mocks"
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret   = "router-test-secret"
	testClinicID = "0b9f8f4e-5d7a-4c59-8a57-1f0d7b0f2c11"
	testDoctorID = "6a1e7f3b-2c4d-4e5f-9a8b-7c6d5e4f3a21"
)

type testServer struct {
	router       *chi.Mux
	sessions     *mocks.SessionService
	auth         *mocks.AuthUsecase
	doctors      *mocks.DoctorUsecase
	appointments *mocks.AppointmentUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:           "api",
			Version:                  "v1",
			MaxRequests:              1000,
			AuthMaxRequestsPerMinute: 100,
			AuthBlockTimeInMinutes:   1,
		},
		JWT: config.JWT{Secret: testSecret},
	}

	s := &testServer{
		router:       chi.NewRouter(),
		sessions:     new(mocks.SessionService),
		auth:         new(mocks.AuthUsecase),
		doctors:      new(mocks.DoctorUsecase),
		appointments: new(mocks.AppointmentUsecase),
	}
	SetupRoutes(
		s.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, s.sessions, internalConfig),
		controllers.NewAuthController(logger, s.auth),
		controllers.NewClinicController(logger, new(mocks.ClinicUsecase)),
		controllers.NewDoctorController(logger, s.doctors),
		controllers.NewPatientController(logger, new(mocks.PatientUsecase)),
		controllers.NewAppointmentController(logger, s.appointments),
		controllers.NewDashboardController(logger, new(mocks.DashboardUsecase)),
	)
	return s
}

// login stores session under a fresh token and returns the bearer header value.
func (s *testServer) login(t *testing.T, session *models.Session) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(session.SessionID, testSecret, time.Hour)
	require.NoError(t, err)
	s.sessions.On("Get", mock.Anything, session.SessionID).Return(session, nil)
	return constvars.AuthorizationBearerPrefix + token
}

func (s *testServer) do(method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(constvars.HeaderAuthorization, bearer)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func fullSession() *models.Session {
	clinicID := testClinicID
	plan := "essential"
	return &models.Session{SessionID: "session-1", UserID: "user-1", ClinicID: &clinicID, Plan: &plan}
}

func TestAuthRoutes(t *testing.T) {
	t.Run("sign up", func(t *testing.T) {
		s := newTestServer(t)
		s.auth.On("SignUp", mock.Anything, &requests.SignUp{Name: "Ana", Email: "ana@example.com", Password: "Secret123!"}).
			Return(&responses.SignUp{UserID: "user-1", Name: "Ana", Email: "ana@example.com"}, nil)

		rr := s.do(http.MethodPost, "/api/v1/auth/sign-up", "", map[string]string{
			"name": "Ana", "email": " ANA@example.com ", "password": "Secret123!",
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		s.auth.AssertExpectations(t)
	})

	t.Run("login with a malformed email", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "nope", "password": "x"})

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotEmpty(t, body.Errors)
		assert.Equal(t, "email", body.Errors[0].Field)
		s.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("logout needs a token", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.do(http.MethodPost, "/api/v1/auth/logout", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDoctorRoutes_AvailableTimes(t *testing.T) {
	path := "/api/v1/doctors/" + testDoctorID + "/available-times?date=2024-03-06"

	t.Run("lists slots", func(t *testing.T) {
		s := newTestServer(t)
		session := fullSession()
		bearer := s.login(t, session)
		s.doctors.On("FindAvailableTimes", mock.Anything, session, &requests.FindAvailableTimes{DoctorID: testDoctorID, Date: "2024-03-06"}).
			Return([]responses.AvailableTime{
				{Value: "09:00", Label: "09:00", Available: true},
				{Value: "09:30", Label: "09:30", Available: false},
			}, nil)

		rr := s.do(http.MethodGet, path, bearer, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Success bool                      `json:"success"`
			Data    []responses.AvailableTime `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.Len(t, body.Data, 2)
		assert.False(t, body.Data[1].Available)
	})

	t.Run("rejects a bad date", func(t *testing.T) {
		s := newTestServer(t)
		bearer := s.login(t, fullSession())

		rr := s.do(http.MethodGet, "/api/v1/doctors/"+testDoctorID+"/available-times?date=06/03/2024", bearer, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("requires a plan", func(t *testing.T) {
		s := newTestServer(t)
		session := fullSession()
		session.Plan = nil
		bearer := s.login(t, session)

		rr := s.do(http.MethodGet, path, bearer, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("requires a clinic", func(t *testing.T) {
		s := newTestServer(t)
		session := fullSession()
		session.ClinicID = nil
		bearer := s.login(t, session)

		rr := s.do(http.MethodGet, path, bearer, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDoctorRoutes_UpsertAvailability(t *testing.T) {
	path := "/api/v1/doctors/" + testDoctorID + "/availabilities"

	t.Run("saves a window", func(t *testing.T) {
		s := newTestServer(t)
		bearer := s.login(t, fullSession())
		s.doctors.On("UpsertAvailability", mock.Anything, mock.Anything, mock.MatchedBy(func(r *requests.UpsertDoctorAvailability) bool {
			return r.DoctorID == testDoctorID && *r.FromWeekDay == 0 && *r.ToWeekDay == 0
		})).Return(&responses.DoctorAvailability{ID: "a-1", DoctorID: testDoctorID, FromTime: "08:00:00", ToTime: "12:00:00"}, nil)

		rr := s.do(http.MethodPost, path, bearer, map[string]interface{}{
			"fromWeekDay": 0, "toWeekDay": 0, "fromTime": "08:00", "toTime": "12:00",
		})

		assert.Equal(t, http.StatusOK, rr.Code)
		s.doctors.AssertExpectations(t)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		s := newTestServer(t)
		bearer := s.login(t, fullSession())

		rr := s.do(http.MethodPost, path, bearer, map[string]interface{}{
			"fromWeekDay": 5, "toWeekDay": 1, "fromTime": "18:00", "toTime": "08:00",
		})

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

		fields := make([]string, 0, len(body.Errors))
		for _, fieldErr := range body.Errors {
			fields = append(fields, fieldErr.Field)
		}
		assert.ElementsMatch(t, []string{"toWeekDay", "toTime"}, fields)
		s.doctors.AssertNotCalled(t, "UpsertAvailability", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAppointmentRoutes_Upsert(t *testing.T) {
	request := map[string]interface{}{
		"patientId":               "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a",
		"doctorId":                testDoctorID,
		"date":                    "2024-03-06",
		"time":                    "09:00",
		"appointmentPriceInCents": 15000,
	}

	t.Run("booked", func(t *testing.T) {
		s := newTestServer(t)
		bearer := s.login(t, fullSession())
		s.appointments.On("Upsert", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.UpsertAppointment")).
			Return(&responses.Appointment{ID: "appt-1", LocalDate: "2024-03-06", LocalTime: "09:00"}, nil)

		rr := s.do(http.MethodPost, "/api/v1/appointments", bearer, request)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("slot taken", func(t *testing.T) {
		s := newTestServer(t)
		bearer := s.login(t, fullSession())
		s.appointments.On("Upsert", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrSlotAlreadyBooked(errors.New("duplicate key")))

		rr := s.do(http.MethodPost, "/api/v1/appointments", bearer, request)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("bad appointment id", func(t *testing.T) {
		s := newTestServer(t)
		bearer := s.login(t, fullSession())

		rr := s.do(http.MethodDelete, "/api/v1/appointments/not-a-uuid", bearer, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		s.appointments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
