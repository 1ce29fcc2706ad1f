package contracts

import "context"

type AttemptLimiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
}
