// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type LimiterInterface interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisClientInterface is the subset of the redis client the limiter uses.
type RedisClientInterface interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}
