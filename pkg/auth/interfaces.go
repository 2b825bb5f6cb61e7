// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/tokens"
)

type ServiceInterface interface {
	RequestMagicLink(ctx context.Context, email string) (*MagicLinkResult, error)
	VerifyMagicLink(ctx context.Context, token string, client types.ClientInfo) (*LoginResult, error)
	StartSession(ctx context.Context, user *types.User, client types.ClientInfo) (*types.SessionTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*types.SessionTokens, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	LogoutAll(ctx context.Context, accessToken, refreshToken string) (int64, error)
	Me(ctx context.Context, userID string) (*Profile, error)
	ListSessions(ctx context.Context, userID string) ([]*types.Session, error)
	RevokeSession(ctx context.Context, userID, sessionID string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateUserLastLogin(ctx context.Context, id string) error
	IsOnboardingComplete(ctx context.Context, userID string) (bool, error)
	CreateSession(ctx context.Context, userID, tenantID string, client types.ClientInfo) (*types.Session, error)
	GetSession(ctx context.Context, id string) (*types.Session, error)
	TouchSession(ctx context.Context, id string) error
	InvalidateSession(ctx context.Context, id string) error
	InvalidateUserSessions(ctx context.Context, userID string) (int64, error)
	IsSessionActive(ctx context.Context, id string) (bool, error)
	ListActiveSessionsByUserID(ctx context.Context, userID string) ([]*types.Session, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type TokenCodecInterface interface {
	Issue(claims tokens.Claims, purpose tokens.Purpose, ttl time.Duration) (string, error)
	Verify(raw string, purposes ...tokens.Purpose) (*tokens.Claims, error)
}

type MailerInterface interface {
	SendMagicLink(ctx context.Context, email, link string, signup bool) error
}

type LimiterInterface interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type AuthzInterface interface {
	AssignTenantRole(ctx context.Context, tenantID, userID, role string) error
	RemoveTenantRole(ctx context.Context, tenantID, userID, role string) error
}

type CookieBinderInterface interface {
	SetAuthCookies(w http.ResponseWriter, access, refresh string)
	ClearAuthCookies(w http.ResponseWriter)
	AccessToken(r *http.Request) string
	RefreshToken(r *http.Request) string
}
