package auth

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts/mocks"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	users    *mocks.UserRepository
	clinics  *mocks.ClinicRepository
	sessions *mocks.SessionService
	limiter  *mocks.AttemptLimiter
	usecase  *authUsecase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    new(mocks.UserRepository),
		clinics:  new(mocks.ClinicRepository),
		sessions: new(mocks.SessionService),
		limiter:  new(mocks.AttemptLimiter),
	}
	internalConfig := &config.InternalConfig{
		App: config.App{DefaultPlan: "essential", SessionExpTimeInHour: 2},
		JWT: config.JWT{Secret: "test-secret"},
	}
	f.usecase = NewAuthUsecase(f.users, f.clinics, f.sessions, f.limiter, internalConfig, zap.NewNop()).(*authUsecase)
	return f
}

func TestAuthUsecase_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password and default plan", func(t *testing.T) {
		f := newAuthFixture()
		request := &requests.SignUp{Name: "Ana Souza", Email: "ana@clinic.com", Password: "Secret#123"}

		f.users.On("FindByEmail", ctx, request.Email).Return(nil, nil)
		f.users.On("CreateUser", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.ID != "" &&
				user.Password != request.Password &&
				utils.CheckPasswordHash(request.Password, user.Password) &&
				user.Plan != nil && *user.Plan == "essential"
		})).Return(&models.User{ID: "user-1", Name: request.Name, Email: request.Email}, nil)

		response, err := f.usecase.SignUp(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "user-1", response.UserID)
		assert.Equal(t, request.Email, response.Email)
		f.users.AssertExpectations(t)
	})

	t.Run("rejects registered email", func(t *testing.T) {
		f := newAuthFixture()
		request := &requests.SignUp{Name: "Ana Souza", Email: "ana@clinic.com", Password: "Secret#123"}
		f.users.On("FindByEmail", ctx, request.Email).Return(&models.User{ID: "user-1"}, nil)

		response, err := f.usecase.SignUp(ctx, request)
		assert.Nil(t, response)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("Secret#123")
	require.NoError(t, err)
	plan := "essential"
	user := &models.User{ID: "user-1", Name: "Ana", Email: "ana@clinic.com", Password: hashed, Plan: &plan}

	t.Run("issues token bound to a stored session", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Allow", ctx, user.Email).Return(true, nil)
		f.users.On("FindByEmail", ctx, user.Email).Return(user, nil)
		f.clinics.On("FindByUserID", ctx, user.ID).Return(&models.Clinic{ID: "clinic-1"}, nil)

		var stored *models.Session
		f.sessions.On("Create", ctx, mock.AnythingOfType("*models.Session"), 2*time.Hour).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Session) }).
			Return(nil)

		response, err := f.usecase.Login(ctx, &requests.Login{Email: user.Email, Password: "Secret#123"})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "clinic-1", *response.ClinicID)
		assert.Equal(t, "essential", *response.Plan)

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, stored.SessionID, sessionID)
		assert.Equal(t, user.ID, stored.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Allow", ctx, user.Email).Return(true, nil)
		f.users.On("FindByEmail", ctx, user.Email).Return(user, nil)

		_, err := f.usecase.Login(ctx, &requests.Login{Email: user.Email, Password: "wrong"})
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
		f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Allow", ctx, "ghost@clinic.com").Return(true, nil)
		f.users.On("FindByEmail", ctx, "ghost@clinic.com").Return(nil, nil)

		_, err := f.usecase.Login(ctx, &requests.Login{Email: "ghost@clinic.com", Password: "Secret#123"})
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
	})

	t.Run("too many attempts", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Allow", ctx, user.Email).Return(false, nil)

		_, err := f.usecase.Login(ctx, &requests.Login{Email: user.Email, Password: "Secret#123"})
		assert.Equal(t, constvars.StatusTooManyRequests, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	f.sessions.On("Delete", ctx, "session-1").Return(nil)

	err := f.usecase.Logout(ctx, &models.Session{SessionID: "session-1"})
	assert.NoError(t, err)
	f.sessions.AssertExpectations(t)
}
