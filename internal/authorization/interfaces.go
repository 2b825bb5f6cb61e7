// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/studio-service/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	AssignTenantRole(context.Context, string, string, string) error
	RemoveTenantRole(context.Context, string, string, string) error
	CheckTenantAccess(context.Context, string, string, string) (bool, error)
	ValidateModel(context.Context) error
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	TypeRelations(ctx context.Context, objectType string) ([]string, error)
}
