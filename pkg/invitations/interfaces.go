// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"net/http"

	"github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/mail"
)

type ServiceInterface interface {
	GetInfo(ctx context.Context, token string) (*Info, error)
	Check(ctx context.Context, token string) error
	Complete(ctx context.Context, token string, profile Profile, client types.ClientInfo) (*CompleteResult, error)
	Create(ctx context.Context, req CreateRequest) (*types.Invitation, error)
	List(ctx context.Context, tenantID string) ([]*types.Invitation, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserLastLogin(ctx context.Context, id string) error
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	ListInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error)
	ExpireInvitation(ctx context.Context, id string) error
	AcceptInvitation(ctx context.Context, id, userID string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// SessionIssuerInterface opens a session for a freshly admitted user.
type SessionIssuerInterface interface {
	StartSession(ctx context.Context, user *types.User, client types.ClientInfo) (*types.SessionTokens, error)
}

type AuthzInterface interface {
	AssignTenantRole(ctx context.Context, tenantID, userID, role string) error
	RemoveTenantRole(ctx context.Context, tenantID, userID, role string) error
	CheckTenantAccess(ctx context.Context, tenantID, userID, relation string) (bool, error)
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, invite mail.InvitationEmail) error
}

type CookieBinderInterface interface {
	SetAuthCookies(w http.ResponseWriter, access, refresh string)
}
