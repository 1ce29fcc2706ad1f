package locker

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

var errLockNotOwned = errors.New("lock is held by another owner")

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = newLockService(repo, logger)
	})
	return lockerServiceInstance
}

func newLockService(repo contracts.RedisRepository, logger *zap.Logger) *lockService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

// TryLock returns the owner token when the lock is acquired.
func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.RequestIDFromContext(ctx)

	owner := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, owner, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	s.Log.Debug("lockService.TryLock finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Bool(constvars.LoggingSuccessKey, acquired),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)
	if !acquired {
		return false, "", nil
	}
	return true, owner, nil
}

// Unlock releases the lock only when owner still holds it. An expired lock is not an error.
func (s *lockService) Unlock(ctx context.Context, key, owner string) error {
	requestID := utils.RequestIDFromContext(ctx)

	result, err := s.redisRepo.CompareAndDelete(ctx, key, owner)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.CompareAndDelete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	if result == contracts.CompareAndDeleteMismatch {
		s.Log.Warn("lockService.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.String(constvars.LoggingLockExpectedValueKey, owner),
		)
		return exceptions.ErrRedisUnlock(errLockNotOwned)
	}

	s.Log.Debug("lockService.Unlock finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Bool(constvars.LoggingSuccessKey, result == contracts.CompareAndDeleteDeleted),
	)
	return nil
}
