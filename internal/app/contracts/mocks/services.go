package mocks

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type SessionService struct{ mock.Mock }

func (m *SessionService) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) Update(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionService) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type RedisRepository struct{ mock.Mock }

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *RedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	ttl, _ := args.Get(0).(time.Duration)
	return ttl, args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (int, error) {
	args := m.Called(ctx, key, value)
	return args.Int(0), args.Error(1)
}

type LockerService struct{ mock.Mock }

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type Storage struct{ mock.Mock }

func (m *Storage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, file, size)
	return args.String(0), args.Error(1)
}

func (m *Storage) ObjectURL(bucketName, objectName string) string {
	return m.Called(bucketName, objectName).String(0)
}

type AppointmentPublisher struct{ mock.Mock }

func (m *AppointmentPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	return m.Called(ctx, event).Error(0)
}

type AttemptLimiter struct{ mock.Mock }

func (m *AttemptLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	args := m.Called(ctx, subject)
	return args.Bool(0), args.Error(1)
}
