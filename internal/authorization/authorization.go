// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/openfga"
	"github.com/canonical/studio-service/internal/tracing"
)

var (
	ErrUnknownRole  = fmt.Errorf("unknown tenant role")
	ErrInvalidModel = fmt.Errorf("authorization model is missing a relation")
)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

// AssignTenantRole writes the relation matching role between the user and the tenant.
func (a *Authorizer) AssignTenantRole(ctx context.Context, tenantId, userId, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantRole")
	defer span.End()

	relation, ok := RoleRelation(role)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return a.client.WriteTuple(ctx, UserTuple(userId), relation, TenantTuple(tenantId))
}

func (a *Authorizer) RemoveTenantRole(ctx context.Context, tenantId, userId, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveTenantRole")
	defer span.End()

	relation, ok := RoleRelation(role)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return a.client.DeleteTuple(ctx, UserTuple(userId), relation, TenantTuple(tenantId))
}

func (a *Authorizer) CheckTenantAccess(ctx context.Context, tenantId, userId, relation string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), relation, TenantTuple(tenantId))
}

// ValidateModel ensures the authorization model defines every relation
// this service writes or checks on tenants.
func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	relations, err := a.client.TypeRelations(ctx, TENANT_TYPE)
	if err != nil {
		return err
	}

	defined := make(map[string]bool, len(relations))
	for _, r := range relations {
		defined[r] = true
	}

	for _, r := range []string{OWNER_RELATION, MANAGER_RELATION, MEMBER_RELATION, CAN_INVITE_PERMISSION} {
		if !defined[r] {
			return fmt.Errorf("%w: %s#%s", ErrInvalidModel, TENANT_TYPE, r)
		}
	}

	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
