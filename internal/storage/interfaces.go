// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/studio-service/internal/types"
)

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
}

type UserStorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserLastLogin(ctx context.Context, id string) error
	IsOnboardingComplete(ctx context.Context, userID string) (bool, error)
}

type SessionStorageInterface interface {
	CreateSession(ctx context.Context, userID, tenantID string, client types.ClientInfo) (*types.Session, error)
	GetSession(ctx context.Context, id string) (*types.Session, error)
	TouchSession(ctx context.Context, id string) error
	InvalidateSession(ctx context.Context, id string) error
	InvalidateUserSessions(ctx context.Context, userID string) (int64, error)
	IsSessionActive(ctx context.Context, id string) (bool, error)
	ListActiveSessionsByUserID(ctx context.Context, userID string) ([]*types.Session, error)
}

type InvitationStorageInterface interface {
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error)
	ExpireInvitation(ctx context.Context, id string) error
	AcceptInvitation(ctx context.Context, id, userID string) error
}

type StorageInterface interface {
	TenantStorageInterface
	UserStorageInterface
	SessionStorageInterface
	InvitationStorageInterface
}
