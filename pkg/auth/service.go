// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/storage"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/tokens"
)

const (
	DashboardPath  = "/dashboard"
	OnboardingPath = "/onboarding"
	VerifyPath     = "/auth/verify"
)

var ErrSessionNotFound = errors.New("session not found")

type Config struct {
	BaseURL         string
	MagicLinkTTL    time.Duration
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	// EchoMagicLink returns the link in the API response. Never set in production.
	EchoMagicLink bool
}

type MagicLinkResult struct {
	Purpose tokens.Purpose
	// Link is only populated when EchoMagicLink is enabled.
	Link string
}

type LoginResult struct {
	User       *types.User
	Tokens     *types.SessionTokens
	RedirectTo string
	Signup     bool
}

type Profile struct {
	User   *types.User   `json:"user"`
	Tenant *types.Tenant `json:"tenant"`
}

type Service struct {
	cfg Config

	storage StorageInterface
	tx      TxRunnerInterface
	codec   TokenCodecInterface
	mailer  MailerInterface
	limiter LimiterInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RequestMagicLink issues a login link for known emails and a signup link
// otherwise. The outcome looks the same to the caller either way.
func (s *Service) RequestMagicLink(ctx context.Context, email string) (*MagicLinkResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.RequestMagicLink")
	defer span.End()

	email = normalizeEmail(email)

	allowed, err := s.limiter.Allow(ctx, "magic-link:"+email)
	if err != nil {
		// limiter outages must not lock everybody out
		s.logger.Warnf("rate limiter unavailable, allowing request: %v", err)
		allowed = true
	}

	if !allowed {
		return nil, reasons.ErrTooManyRequests
	}

	purpose := tokens.PurposeLogin
	if _, err := s.storage.GetUserByEmail(ctx, email); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		purpose = tokens.PurposeSignup
	}

	token, err := s.codec.Issue(tokens.Claims{Email: email}, purpose, s.cfg.MagicLinkTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue magic link token: %w", err)
	}

	link := s.magicLink(token)

	if err := s.mailer.SendMagicLink(ctx, email, link, purpose == tokens.PurposeSignup); err != nil {
		return nil, fmt.Errorf("failed to send magic link: %w", err)
	}

	result := &MagicLinkResult{Purpose: purpose}
	if s.cfg.EchoMagicLink {
		result.Link = link
	}

	return result, nil
}

func (s *Service) magicLink(token string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + VerifyPath + "?token=" + url.QueryEscape(token)
}

// VerifyMagicLink consumes a magic link token and opens a session. Signup
// tokens for unknown emails bootstrap a tenant and its owner first.
func (s *Service) VerifyMagicLink(ctx context.Context, token string, client types.ClientInfo) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.VerifyMagicLink")
	defer span.End()

	if token == "" {
		return nil, reasons.ErrMissingToken
	}

	claims, err := s.codec.Verify(token, tokens.PurposeLogin, tokens.PurposeSignup)
	if err != nil {
		s.logger.Security().AuthnLoginFail("", reasons.InvalidToken)
		s.countEvent("login_failed")
		return nil, reasons.ErrInvalidToken
	}

	email := normalizeEmail(claims.Email)
	signup := false

	user, err := s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	case claims.Purpose != tokens.PurposeSignup:
		s.logger.Security().AuthnLoginFail(email, reasons.UserNotFound)
		s.countEvent("login_failed")
		return nil, reasons.ErrUserNotFound
	default:
		if user, err = s.signup(ctx, email); err != nil {
			return nil, err
		}
		signup = true
	}

	sessionTokens, err := s.StartSession(ctx, user, client)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateUserLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	redirect, err := s.redirectFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnLoginSuccess(user.ID)
	if signup {
		s.countEvent("signup")
	} else {
		s.countEvent("login")
	}

	return &LoginResult{
		User:       user,
		Tokens:     sessionTokens,
		RedirectTo: redirect,
		Signup:     signup,
	}, nil
}

// signup creates the tenant and its owner atomically. A concurrent signup
// for the same email loses on the active email index and reuses the winner.
func (s *Service) signup(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.signup")
	defer span.End()

	name := tenantNameFromEmail(email)
	slug, err := slugify(name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant slug: %w", err)
	}

	var user *types.User
	assigned := false
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		tenant, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Slug: slug, Email: email})
		if err != nil {
			return err
		}

		user, err = s.storage.CreateUser(ctx, &types.User{
			TenantID: tenant.ID,
			Email:    email,
			Role:     types.RoleOwner,
		})
		if err != nil {
			return err
		}

		// last step, nothing but the commit can fail once the tuple exists
		if err := s.authz.AssignTenantRole(ctx, tenant.ID, user.ID, types.RoleOwner); err != nil {
			return err
		}
		assigned = true
		return nil
	})

	if err != nil && assigned {
		s.removeRole(ctx, user)
	}

	if errors.Is(err, storage.ErrDuplicateKey) {
		if existing, lookupErr := s.storage.GetUserByEmail(ctx, email); lookupErr == nil {
			return existing, nil
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create tenant for %s: %w", email, err)
	}

	s.logger.Security().UserCreated(user.ID, user.TenantID, user.Role)

	return user, nil
}

// removeRole drops the role tuple of a user whose creation was rolled back.
func (s *Service) removeRole(ctx context.Context, user *types.User) {
	if err := s.authz.RemoveTenantRole(ctx, user.TenantID, user.ID, user.Role); err != nil {
		s.logger.Errorf("failed to remove role of rolled back user %s: %v", user.ID, err)
	}
}

func (s *Service) redirectFor(ctx context.Context, userID string) (string, error) {
	done, err := s.storage.IsOnboardingComplete(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to read onboarding state: %w", err)
	}

	if done {
		return DashboardPath, nil
	}
	return OnboardingPath, nil
}

func (s *Service) countEvent(event string) {
	if err := s.monitor.IncAuthEvent(map[string]string{"event": event}); err != nil {
		s.logger.Debugf("failed to count auth event %s: %v", event, err)
	}
}

// StartSession records a new active session for user and mints its token pair.
func (s *Service) StartSession(ctx context.Context, user *types.User, client types.ClientInfo) (*types.SessionTokens, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.StartSession")
	defer span.End()

	session, err := s.storage.CreateSession(ctx, user.ID, user.TenantID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	claims := tokens.Claims{
		UserID:    user.ID,
		TenantID:  user.TenantID,
		SessionID: session.ID,
	}

	access, err := s.codec.Issue(claims, tokens.PurposeAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := s.codec.Issue(claims, tokens.PurposeRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	s.logger.Security().AuthnTokenCreated(user.ID, session.ID)

	return &types.SessionTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		SessionID:    session.ID,
	}, nil
}

// Refresh mints a new access token for the session bound to refreshToken.
// The refresh token itself is returned unchanged.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*types.SessionTokens, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Refresh")
	defer span.End()

	if refreshToken == "" {
		return nil, reasons.ErrMissingToken
	}

	claims, err := s.codec.Verify(refreshToken, tokens.PurposeRefresh)
	if err != nil {
		return nil, reasons.ErrInvalidToken
	}

	active, err := s.storage.IsSessionActive(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}

	if !active {
		return nil, reasons.ErrSessionInactive
	}

	access, err := s.codec.Issue(
		tokens.Claims{UserID: claims.UserID, TenantID: claims.TenantID, SessionID: claims.SessionID},
		tokens.PurposeAccess,
		s.cfg.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	if err := s.storage.TouchSession(ctx, claims.SessionID); err != nil {
		return nil, fmt.Errorf("failed to touch session: %w", err)
	}

	s.countEvent("refresh")

	return &types.SessionTokens{
		AccessToken:  access,
		RefreshToken: refreshToken,
		SessionID:    claims.SessionID,
	}, nil
}

// sessionClaims resolves the caller from the access token, falling back to
// the refresh token once the access token has expired.
func (s *Service) sessionClaims(accessToken, refreshToken string) (*tokens.Claims, bool) {
	if claims, err := s.codec.Verify(accessToken, tokens.PurposeAccess); err == nil {
		return claims, true
	}

	if claims, err := s.codec.Verify(refreshToken, tokens.PurposeRefresh); err == nil {
		return claims, true
	}

	return nil, false
}

// Logout invalidates the caller's current session. Unknown or already
// inactive sessions are not an error.
func (s *Service) Logout(ctx context.Context, accessToken, refreshToken string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Logout")
	defer span.End()

	claims, ok := s.sessionClaims(accessToken, refreshToken)
	if !ok {
		return nil
	}

	if err := s.storage.InvalidateSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	s.logger.Security().AuthnTokenRevoked(claims.UserID, claims.SessionID)
	s.countEvent("logout")

	return nil
}

// LogoutAll invalidates every session of the caller and returns how many
// were still active. Tokens bound to an inactive session revoke nothing.
func (s *Service) LogoutAll(ctx context.Context, accessToken, refreshToken string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.LogoutAll")
	defer span.End()

	claims, ok := s.sessionClaims(accessToken, refreshToken)
	if !ok {
		return 0, nil
	}

	active, err := s.storage.IsSessionActive(ctx, claims.SessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to check session: %w", err)
	}

	if !active {
		s.logger.Debugf("logout-all ignored for inactive session %s", claims.SessionID)
		return 0, nil
	}

	n, err := s.storage.InvalidateUserSessions(ctx, claims.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate sessions: %w", err)
	}

	s.logger.Security().AuthnTokenRevokedAll(claims.UserID, n)

	return n, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*Profile, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Me")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, reasons.ErrUserNotFound
		}
		return nil, err
	}

	tenant, err := s.storage.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", user.TenantID, err)
	}

	return &Profile{User: user, Tenant: tenant}, nil
}

func (s *Service) ListSessions(ctx context.Context, userID string) ([]*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ListSessions")
	defer span.End()

	return s.storage.ListActiveSessionsByUserID(ctx, userID)
}

// RevokeSession invalidates one of the user's own sessions. Sessions owned
// by someone else are reported as not found.
func (s *Service) RevokeSession(ctx context.Context, userID, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.RevokeSession")
	defer span.End()

	session, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	if session.UserID != userID {
		return ErrSessionNotFound
	}

	if err := s.storage.InvalidateSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	s.logger.Security().AuthnTokenRevoked(userID, sessionID)

	return nil
}

func NewService(
	cfg Config,
	storage StorageInterface,
	tx TxRunnerInterface,
	codec TokenCodecInterface,
	mailer MailerInterface,
	limiter LimiterInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		cfg:     cfg,
		storage: storage,
		tx:      tx,
		codec:   codec,
		mailer:  mailer,
		limiter: limiter,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
