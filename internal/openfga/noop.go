// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
)

// NoopClient allows every check and drops every write. It backs the
// authorizer when authorization is disabled.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *NoopClient) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	_, span := n.tracer.Start(ctx, "openfga.NoopClient.Check")
	defer span.End()

	return true, nil
}

func (n *NoopClient) WriteTuple(ctx context.Context, user, relation, object string) error {
	_, span := n.tracer.Start(ctx, "openfga.NoopClient.WriteTuple")
	defer span.End()

	n.logger.Debugf("noop write tuple %s %s %s", user, relation, object)
	return nil
}

func (n *NoopClient) DeleteTuple(ctx context.Context, user, relation, object string) error {
	_, span := n.tracer.Start(ctx, "openfga.NoopClient.DeleteTuple")
	defer span.End()

	return nil
}

// TypeRelations reports no relations, the noop client has no model.
func (n *NoopClient) TypeRelations(ctx context.Context, objectType string) ([]string, error) {
	return nil, nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
