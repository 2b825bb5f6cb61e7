// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/storage"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/tokens"
)

//go:generate mockgen -build_flags=--mod=mod -package auth -destination ./mock_interfaces.go -source=./interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	tx      *MockTxRunnerInterface
	mailer  *MockMailerInterface
	limiter *MockLimiterInterface
	authz   *MockAuthzInterface
}

var (
	testCodec  = tokens.NewCodec("test-secret", "studio-test")
	testUser   = &types.User{ID: "user-1", TenantID: "tenant-1", Email: "a@x.com", Role: types.RoleOwner}
	testClient = types.ClientInfo{UserAgent: "test-agent", IPAddress: "127.0.0.1"}
)

func testConfig(echo bool) Config {
	return Config{
		BaseURL:         "http://localhost:8080",
		MagicLinkTTL:    15 * time.Minute,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
		EchoMagicLink:   echo,
	}
}

func newTestService(ctrl *gomock.Controller, cfg Config) (*Service, serviceMocks) {
	m := serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		tx:      NewMockTxRunnerInterface(ctrl),
		mailer:  NewMockMailerInterface(ctrl),
		limiter: NewMockLimiterInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	s := NewService(cfg, m.storage, m.tx, testCodec, m.mailer, m.limiter, m.authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return s, m
}

func runTx(m serviceMocks) {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func issue(t *testing.T, claims tokens.Claims, purpose tokens.Purpose) string {
	t.Helper()

	token, err := testCodec.Issue(claims, purpose, time.Minute)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func expectSession(m serviceMocks, sessionID string) {
	m.storage.EXPECT().
		CreateSession(gomock.Any(), testUser.ID, testUser.TenantID, testClient).
		Return(&types.Session{ID: sessionID, UserID: testUser.ID, TenantID: testUser.TenantID, IsActive: true}, nil)
}

func TestService_RequestMagicLink(t *testing.T) {
	testCases := []struct {
		name            string
		email           string
		echo            bool
		setupMocks      func(serviceMocks)
		expectedPurpose tokens.Purpose
		expectLink      bool
		expectedErr     error
		expectErr       bool
	}{
		{
			name:  "known email gets a login link",
			email: " A@X.com ",
			echo:  true,
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), "magic-link:a@x.com").Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil)
				m.mailer.EXPECT().SendMagicLink(gomock.Any(), "a@x.com", gomock.Any(), false).Return(nil)
			},
			expectedPurpose: tokens.PurposeLogin,
			expectLink:      true,
		},
		{
			name:  "unknown email gets a signup link",
			email: "new@x.com",
			echo:  true,
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), "magic-link:new@x.com").Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "new@x.com").Return(nil, storage.ErrNotFound)
				m.mailer.EXPECT().SendMagicLink(gomock.Any(), "new@x.com", gomock.Any(), true).Return(nil)
			},
			expectedPurpose: tokens.PurposeSignup,
			expectLink:      true,
		},
		{
			name:  "link not echoed when disabled",
			email: "a@x.com",
			echo:  false,
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil)
				m.mailer.EXPECT().SendMagicLink(gomock.Any(), "a@x.com", gomock.Any(), false).Return(nil)
			},
			expectedPurpose: tokens.PurposeLogin,
		},
		{
			name:  "rate limited",
			email: "a@x.com",
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: reasons.ErrTooManyRequests,
		},
		{
			name:  "limiter outage fails open",
			email: "a@x.com",
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil)
				m.mailer.EXPECT().SendMagicLink(gomock.Any(), "a@x.com", gomock.Any(), false).Return(nil)
			},
			expectedPurpose: tokens.PurposeLogin,
		},
		{
			name:  "storage error",
			email: "a@x.com",
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
		{
			name:  "mail delivery error",
			email: "a@x.com",
			setupMocks: func(m serviceMocks) {
				m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil)
				m.mailer.EXPECT().SendMagicLink(gomock.Any(), "a@x.com", gomock.Any(), false).Return(errors.New("smtp down"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, testConfig(tc.echo))
			tc.setupMocks(m)

			result, err := s.RequestMagicLink(context.Background(), tc.email)

			if tc.expectedErr != nil || tc.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Purpose != tc.expectedPurpose {
				t.Errorf("expected purpose %s, got %s", tc.expectedPurpose, result.Purpose)
			}

			if !tc.expectLink {
				if result.Link != "" {
					t.Errorf("expected no link, got %s", result.Link)
				}
				return
			}

			if !strings.HasPrefix(result.Link, "http://localhost:8080/auth/verify?token=") {
				t.Fatalf("unexpected link %s", result.Link)
			}

			u, _ := url.Parse(result.Link)
			claims, err := testCodec.Verify(u.Query().Get("token"), tc.expectedPurpose)
			if err != nil {
				t.Fatalf("echoed link does not carry a valid token: %v", err)
			}
			if claims.Email != strings.ToLower(strings.TrimSpace(tc.email)) {
				t.Errorf("unexpected email claim %s", claims.Email)
			}
		})
	}
}

func TestService_VerifyMagicLink(t *testing.T) {
	loginToken := issue(t, tokens.Claims{Email: "a@x.com"}, tokens.PurposeLogin)
	signupToken := issue(t, tokens.Claims{Email: "a@x.com"}, tokens.PurposeSignup)
	accessToken := issue(t, tokens.Claims{UserID: "user-1"}, tokens.PurposeAccess)

	testCases := []struct {
		name             string
		token            string
		setupMocks       func(serviceMocks)
		expectedRedirect string
		expectedSignup   bool
		expectedErr      error
		expectErr        bool
	}{
		{
			name:        "missing token",
			token:       "",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: reasons.ErrMissingToken,
		},
		{
			name:        "malformed token",
			token:       "garbage",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: reasons.ErrInvalidToken,
		},
		{
			name:        "access token is not a magic link",
			token:       accessToken,
			setupMocks:  func(m serviceMocks) {},
			expectedErr: reasons.ErrInvalidToken,
		},
		{
			name:  "login for existing user before onboarding",
			token: loginToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil)
				expectSession(m, "session-1")
				m.storage.EXPECT().UpdateUserLastLogin(gomock.Any(), testUser.ID).Return(nil)
				m.storage.EXPECT().IsOnboardingComplete(gomock.Any(), testUser.ID).Return(false, nil)
			},
			expectedRedirect: OnboardingPath,
		},
		{
			name:  "login for existing user after onboarding",
			token: loginToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil)
				expectSession(m, "session-1")
				m.storage.EXPECT().UpdateUserLastLogin(gomock.Any(), testUser.ID).Return(nil)
				m.storage.EXPECT().IsOnboardingComplete(gomock.Any(), testUser.ID).Return(true, nil)
			},
			expectedRedirect: DashboardPath,
		},
		{
			name:  "login token for unknown user",
			token: loginToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: reasons.ErrUserNotFound,
		},
		{
			name:  "signup creates tenant and owner",
			token: signupToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
				runTx(m)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						if tenant.Email != "a@x.com" || !strings.HasPrefix(tenant.Slug, "a-s-studio-") {
							return nil, errors.New("unexpected tenant")
						}
						return &types.Tenant{ID: "tenant-1", Name: tenant.Name, Slug: tenant.Slug, Email: tenant.Email}, nil
					},
				)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.TenantID != "tenant-1" || u.Role != types.RoleOwner || u.Email != "a@x.com" {
							return nil, errors.New("unexpected user")
						}
						return testUser, nil
					},
				)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), "tenant-1", testUser.ID, types.RoleOwner).Return(nil)
				expectSession(m, "session-1")
				m.storage.EXPECT().UpdateUserLastLogin(gomock.Any(), testUser.ID).Return(nil)
				m.storage.EXPECT().IsOnboardingComplete(gomock.Any(), testUser.ID).Return(false, nil)
			},
			expectedRedirect: OnboardingPath,
			expectedSignup:   true,
		},
		{
			name:  "signup rolls back when owner creation fails",
			token: signupToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
				runTx(m)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "tenant-1"}, nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectErr: true,
		},
		{
			name:  "signup removes the owner role when the commit fails",
			token: signupToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
				m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						if err := fn(ctx); err != nil {
							return err
						}
						return errors.New("commit failed")
					},
				)
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "tenant-1"}, nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(testUser, nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), "tenant-1", testUser.ID, types.RoleOwner).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), testUser.TenantID, testUser.ID, testUser.Role).Return(nil)
			},
			expectErr: true,
		},
		{
			name:  "concurrent signup reuses the winning user",
			token: signupToken,
			setupMocks: func(m serviceMocks) {
				gomock.InOrder(
					m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound),
					m.storage.EXPECT().GetUserByEmail(gomock.Any(), "a@x.com").Return(testUser, nil),
				)
				m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicateKey)
				expectSession(m, "session-1")
				m.storage.EXPECT().UpdateUserLastLogin(gomock.Any(), testUser.ID).Return(nil)
				m.storage.EXPECT().IsOnboardingComplete(gomock.Any(), testUser.ID).Return(false, nil)
			},
			expectedRedirect: OnboardingPath,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, testConfig(false))
			tc.setupMocks(m)

			result, err := s.VerifyMagicLink(context.Background(), tc.token, testClient)

			if tc.expectedErr != nil || tc.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.RedirectTo != tc.expectedRedirect {
				t.Errorf("expected redirect %s, got %s", tc.expectedRedirect, result.RedirectTo)
			}

			if result.Signup != tc.expectedSignup {
				t.Errorf("expected signup %v, got %v", tc.expectedSignup, result.Signup)
			}

			claims, err := testCodec.Verify(result.Tokens.AccessToken, tokens.PurposeAccess)
			if err != nil {
				t.Fatalf("invalid access token: %v", err)
			}
			if claims.SessionID != "session-1" || claims.UserID != testUser.ID || claims.TenantID != testUser.TenantID {
				t.Errorf("unexpected access claims %+v", claims)
			}

			if _, err := testCodec.Verify(result.Tokens.RefreshToken, tokens.PurposeRefresh); err != nil {
				t.Errorf("invalid refresh token: %v", err)
			}
		})
	}
}

func TestService_VerifyMagicLinkExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestService(ctrl, testConfig(false))

	// a token signed with the right key but a ttl already elapsed
	expired := tokens.NewCodec("test-secret", "studio-test")
	token, err := expired.Issue(tokens.Claims{Email: "a@x.com"}, tokens.PurposeLogin, time.Nanosecond)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)

	if _, err := s.VerifyMagicLink(context.Background(), token, testClient); !errors.Is(err, reasons.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestService_Refresh(t *testing.T) {
	sessionClaims := tokens.Claims{UserID: testUser.ID, TenantID: testUser.TenantID, SessionID: "session-1"}
	refreshToken := issue(t, sessionClaims, tokens.PurposeRefresh)
	accessToken := issue(t, sessionClaims, tokens.PurposeAccess)

	testCases := []struct {
		name        string
		token       string
		setupMocks  func(serviceMocks)
		expectedErr error
		expectErr   bool
	}{
		{
			name:        "missing token",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: reasons.ErrMissingToken,
		},
		{
			name:        "access token cannot refresh",
			token:       accessToken,
			setupMocks:  func(m serviceMocks) {},
			expectedErr: reasons.ErrInvalidToken,
		},
		{
			name:  "session revoked by logout-all",
			token: refreshToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(false, nil)
			},
			expectedErr: reasons.ErrSessionInactive,
		},
		{
			name:  "session lookup error",
			token: refreshToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(false, errors.New("db down"))
			},
			expectErr: true,
		},
		{
			name:  "active session",
			token: refreshToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(true, nil)
				m.storage.EXPECT().TouchSession(gomock.Any(), "session-1").Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, testConfig(false))
			tc.setupMocks(m)

			result, err := s.Refresh(context.Background(), tc.token)

			if tc.expectedErr != nil || tc.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.RefreshToken != refreshToken {
				t.Error("expected refresh token to be reused")
			}

			claims, err := testCodec.Verify(result.AccessToken, tokens.PurposeAccess)
			if err != nil {
				t.Fatalf("invalid access token: %v", err)
			}
			if claims.SessionID != "session-1" {
				t.Errorf("expected access token bound to session-1, got %s", claims.SessionID)
			}
		})
	}
}

func TestService_Logout(t *testing.T) {
	sessionClaims := tokens.Claims{UserID: testUser.ID, TenantID: testUser.TenantID, SessionID: "session-1"}
	accessToken := issue(t, sessionClaims, tokens.PurposeAccess)
	refreshToken := issue(t, sessionClaims, tokens.PurposeRefresh)

	testCases := []struct {
		name       string
		access     string
		refresh    string
		setupMocks func(serviceMocks)
		expectErr  bool
	}{
		{
			name:   "invalidates current session",
			access: accessToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().InvalidateSession(gomock.Any(), "session-1").Return(nil)
			},
		},
		{
			name:    "falls back to refresh token",
			access:  "expired",
			refresh: refreshToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().InvalidateSession(gomock.Any(), "session-1").Return(nil)
			},
		},
		{
			name:       "no credentials is a no-op",
			setupMocks: func(m serviceMocks) {},
		},
		{
			name:   "storage error surfaces",
			access: accessToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().InvalidateSession(gomock.Any(), "session-1").Return(errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, testConfig(false))
			tc.setupMocks(m)

			err := s.Logout(context.Background(), tc.access, tc.refresh)
			if tc.expectErr != (err != nil) {
				t.Errorf("expected error %v, got %v", tc.expectErr, err)
			}
		})
	}
}

func TestService_LogoutTwiceIsSafe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, testConfig(false))
	accessToken := issue(t, tokens.Claims{UserID: testUser.ID, SessionID: "session-1"}, tokens.PurposeAccess)

	m.storage.EXPECT().InvalidateSession(gomock.Any(), "session-1").Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		if err := s.Logout(context.Background(), accessToken, ""); err != nil {
			t.Fatalf("logout %d failed: %v", i+1, err)
		}
	}
}

func TestService_LogoutAll(t *testing.T) {
	accessToken := issue(t, tokens.Claims{UserID: testUser.ID, SessionID: "session-1"}, tokens.PurposeAccess)
	refreshToken := issue(t, tokens.Claims{UserID: testUser.ID, SessionID: "session-1"}, tokens.PurposeRefresh)

	testCases := []struct {
		name        string
		access      string
		refresh     string
		setupMocks  func(serviceMocks)
		expected    int64
		expectedErr bool
	}{
		{
			name:   "active session",
			access: accessToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(true, nil)
				m.storage.EXPECT().InvalidateUserSessions(gomock.Any(), testUser.ID).Return(int64(3), nil)
			},
			expected: 3,
		},
		{
			name:    "refresh token of a revoked session",
			refresh: refreshToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(false, nil)
			},
		},
		{
			name:   "access token of a revoked session",
			access: accessToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(false, nil)
			},
		},
		{
			name:       "no valid token",
			access:     "garbage",
			setupMocks: func(serviceMocks) {},
		},
		{
			name:   "session lookup fails",
			access: accessToken,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().IsSessionActive(gomock.Any(), "session-1").Return(false, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, testConfig(false))
			tc.setupMocks(m)

			n, err := s.LogoutAll(context.Background(), tc.access, tc.refresh)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if n != tc.expected {
				t.Errorf("expected %d revoked sessions, got %d", tc.expected, n)
			}
		})
	}
}

func TestService_RevokeSession(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "own session",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetSession(gomock.Any(), "session-2").Return(&types.Session{ID: "session-2", UserID: testUser.ID}, nil)
				m.storage.EXPECT().InvalidateSession(gomock.Any(), "session-2").Return(nil)
			},
		},
		{
			name: "someone else's session",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetSession(gomock.Any(), "session-2").Return(&types.Session{ID: "session-2", UserID: "user-2"}, nil)
			},
			expectedErr: ErrSessionNotFound,
		},
		{
			name: "unknown session",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetSession(gomock.Any(), "session-2").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrSessionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, testConfig(false))
			tc.setupMocks(m)

			err := s.RevokeSession(context.Background(), testUser.ID, "session-2")
			if tc.expectedErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, testConfig(false))

	tenant := &types.Tenant{ID: testUser.TenantID, Name: "Studio"}
	m.storage.EXPECT().GetUserByID(gomock.Any(), testUser.ID).Return(testUser, nil)
	m.storage.EXPECT().GetTenantByID(gomock.Any(), testUser.TenantID).Return(tenant, nil)

	profile, err := s.Me(context.Background(), testUser.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.User != testUser || profile.Tenant != tenant {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "a's studio", expected: "a-s-studio-"},
		{input: "  Ünïcode & Co ", expected: "n-code-co-"},
		{input: "!!!", expected: "studio-"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := slugify(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(got, tt.expected) || len(got) != len(tt.expected)+6 {
				t.Errorf("expected %s<6 hex>, got %s", tt.expected, got)
			}
		})
	}
}
