// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
)

const keyPrefix = "studio:ratelimit:"

// RedisLimiter is a fixed window counter keyed per caller supplied key.
type RedisLimiter struct {
	client RedisClientInterface
	limit  int64
	window time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Allow counts one hit against key and reports whether it is within the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ctx, span := l.tracer.Start(ctx, "ratelimit.RedisLimiter.Allow")
	defer span.End()

	k := keyPrefix + key

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		// NX only sets a TTL on a key without one, so the window is not
		// extended by later hits and a key left without a TTL gets one back
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		l.setAvailability(0)
		return false, fmt.Errorf("failed to count rate limit hit: %w", err)
	}

	l.setAvailability(1)

	return incr.Val() <= l.limit, nil
}

func (l *RedisLimiter) setAvailability(v float64) {
	if err := l.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, v); err != nil {
		l.logger.Debugf("failed to record redis availability: %s", err)
	}
}

func NewRedisLimiter(client RedisClientInterface, limit int, window time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisLimiter {
	l := new(RedisLimiter)

	l.client = client
	l.limit = int64(limit)
	l.window = window

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}

// NoopLimiter allows everything.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}

func NewNoopLimiter() *NoopLimiter {
	return new(NoopLimiter)
}
