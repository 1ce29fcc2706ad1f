package ratelimiter

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptLimiter is a fixed-window counter kept in Redis.
type AttemptLimiter struct {
	redis  contracts.RedisRepository
	log    *zap.Logger
	group  string
	window time.Duration
	quota  int
	now    func() time.Time
}

func NewAttemptLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, window time.Duration, quota int) *AttemptLimiter {
	return &AttemptLimiter{
		redis:  redis,
		log:    log,
		group:  strings.ToUpper(strings.TrimSpace(group)),
		window: window,
		quota:  quota,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Allow counts one attempt for subject and reports whether it fits the quota.
func (l *AttemptLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	if l.quota <= 0 {
		return true, nil
	}

	windowSec := int64(l.window / time.Second)
	if windowSec <= 0 {
		windowSec = 60
	}

	windowID := l.now().Unix() / windowSec
	key := fmt.Sprintf(constvars.RedisKeyAttemptLimiterFormat, l.group, strings.ToLower(strings.TrimSpace(subject)), windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, time.Duration(windowSec)*time.Second+time.Second)
	if err != nil {
		l.log.Error("AttemptLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, err
	}

	return count <= l.quota, nil
}
