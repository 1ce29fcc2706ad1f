package clinics

import (
	"agenda-service/internal/app/contracts/mocks"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClinicUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates clinic and refreshes session", func(t *testing.T) {
		repo := new(mocks.ClinicRepository)
		sessions := new(mocks.SessionService)
		uc := NewClinicUsecase(repo, sessions, zap.NewNop())
		session := &models.Session{SessionID: "session-1", UserID: "user-1"}

		repo.On("FindByUserID", ctx, "user-1").Return(nil, nil)
		repo.On("CreateWithOwner", ctx, mock.MatchedBy(func(c *models.Clinic) bool {
			return c.ID != "" && c.Name == "Clínica Vida"
		}), "user-1").Return(&models.Clinic{ID: "clinic-1", Name: "Clínica Vida"}, nil)
		sessions.On("Update", ctx, mock.MatchedBy(func(s *models.Session) bool {
			return s.Clinic() == "clinic-1"
		})).Return(nil)

		response, err := uc.Create(ctx, session, &requests.CreateClinic{Name: "Clínica Vida"})
		require.NoError(t, err)
		assert.Equal(t, "clinic-1", response.ID)
		assert.True(t, session.HasClinic())
		sessions.AssertExpectations(t)
	})

	t.Run("user already has a clinic", func(t *testing.T) {
		repo := new(mocks.ClinicRepository)
		uc := NewClinicUsecase(repo, new(mocks.SessionService), zap.NewNop())
		clinicID := "clinic-1"

		_, err := uc.Create(ctx, &models.Session{UserID: "user-1", ClinicID: &clinicID}, &requests.CreateClinic{Name: "Outra"})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		repo.AssertNotCalled(t, "CreateWithOwner", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClinicUsecase_FindMine(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.ClinicRepository)
	uc := NewClinicUsecase(repo, new(mocks.SessionService), zap.NewNop())

	_, err := uc.FindMine(ctx, &models.Session{UserID: "user-1"})
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))

	clinicID := "clinic-1"
	repo.On("FindByID", ctx, clinicID).Return(&models.Clinic{ID: clinicID, Name: "Vida"}, nil)
	response, err := uc.FindMine(ctx, &models.Session{UserID: "user-1", ClinicID: &clinicID})
	require.NoError(t, err)
	assert.Equal(t, "Vida", response.Name)
}
