package middlewares

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts/mocks"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestMiddlewares(sessions *mocks.SessionService) *Middlewares {
	return NewMiddlewares(zap.NewNop(), sessions, &config.InternalConfig{
		App: config.App{MaxRequests: 100},
		JWT: config.JWT{Secret: testSecret},
	})
}

func okHandler(t *testing.T, check func(r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func withSession(r *http.Request, session *models.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session))
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()

		m.RequestIDMiddleware(okHandler(t, func(r *http.Request) {
			assert.Equal(t, "client-id", utils.RequestIDFromContext(r.Context()))
		})).ServeHTTP(rr, req)

		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		m.RequestIDMiddleware(okHandler(t, nil)).ServeHTTP(rr, req)

		assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
	})
}

func TestAuthenticate(t *testing.T) {
	token, err := utils.GenerateSessionJWT("session-1", testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		m := newTestMiddlewares(new(mocks.SessionService))
		rr := httptest.NewRecorder()
		m.Authenticate(okHandler(t, nil)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		m := newTestMiddlewares(new(mocks.SessionService))
		forged, err := utils.GenerateSessionJWT("session-1", "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+forged)
		rr := httptest.NewRecorder()
		m.Authenticate(okHandler(t, nil)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		sessions := new(mocks.SessionService)
		sessions.On("Get", mock.Anything, "session-1").Return(nil, exceptions.ErrTokenInvalidOrExpired(nil))
		m := newTestMiddlewares(sessions)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()
		m.Authenticate(okHandler(t, nil)).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stores the session", func(t *testing.T) {
		sessions := new(mocks.SessionService)
		sessions.On("Get", mock.Anything, "session-1").Return(&models.Session{SessionID: "session-1", UserID: "user-1"}, nil)
		m := newTestMiddlewares(sessions)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()
		m.Authenticate(okHandler(t, func(r *http.Request) {
			session, ok := utils.SessionFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, "user-1", session.UserID)
		})).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRequireClinicAndPlan(t *testing.T) {
	m := newTestMiddlewares(nil)
	clinicID := "clinic-1"
	plan := "essential"

	tests := []struct {
		name       string
		session    *models.Session
		middleware func(http.Handler) http.Handler
		wantCode   int
	}{
		{"clinic without session", nil, m.RequireClinic, http.StatusUnauthorized},
		{"clinic missing", &models.Session{UserID: "u"}, m.RequireClinic, http.StatusForbidden},
		{"clinic present", &models.Session{UserID: "u", ClinicID: &clinicID}, m.RequireClinic, http.StatusOK},
		{"plan missing", &models.Session{UserID: "u"}, m.RequirePlan, http.StatusForbidden},
		{"plan present", &models.Session{UserID: "u", Plan: &plan}, m.RequirePlan, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = withSession(req, tt.session)
			}
			rr := httptest.NewRecorder()
			tt.middleware(okHandler(t, nil)).ServeHTTP(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, time.Minute)
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(okHandler(t, nil))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares(nil)
	rr := httptest.NewRecorder()
	m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
