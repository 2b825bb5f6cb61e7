// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
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
	"github.com/canonical/studio-service/pkg/mail"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go

var (
	fixedNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testClient = types.ClientInfo{UserAgent: "test-agent", IPAddress: "127.0.0.1"}
)

type serviceMocks struct {
	storage  *MockStorageInterface
	tx       *MockTxRunnerInterface
	sessions *MockSessionIssuerInterface
	authz    *MockAuthzInterface
	mailer   *MockMailerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		sessions: NewMockSessionIssuerInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		mailer:   NewMockMailerInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	s := NewService(
		Config{BaseURL: "http://localhost:8080/", Lifetime: 7 * 24 * time.Hour},
		m.storage, m.tx, m.sessions, m.authz, m.mailer,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger,
	)
	s.now = func() time.Time { return fixedNow }

	return s, m
}

func pendingInvitation() *types.Invitation {
	return &types.Invitation{
		ID:        "inv-1",
		Token:     "T",
		TenantID:  "42",
		Email:     "b@y.com",
		Role:      types.RoleMember,
		Status:    types.InvitationPending,
		ExpiresAt: fixedNow.Add(time.Hour),
		InvitedBy: "owner-1",
	}
}

func expiredInvitation() *types.Invitation {
	inv := pendingInvitation()
	inv.ExpiresAt = fixedNow.Add(-time.Minute)
	return inv
}

func runTx(m serviceMocks) {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_GetInfo(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		setupMocks   func(serviceMocks)
		expectedInfo *Info
		expectedErr  error
		expectErr    bool
	}{
		{
			name:  "pending invitation",
			token: "T",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "42").Return(&types.Tenant{ID: "42", Name: "Acme"}, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "owner-1").
					Return(&types.User{ID: "owner-1", FirstName: "Ada", LastName: "Owner"}, nil)
			},
			expectedInfo: &Info{Email: "b@y.com", Role: types.RoleMember, TenantName: "Acme", InvitedBy: "Ada Owner"},
		},
		{
			name:  "inviter without a name falls back to email",
			token: "T",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "42").Return(&types.Tenant{ID: "42", Name: "Acme"}, nil)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "owner-1").
					Return(&types.User{ID: "owner-1", Email: "owner@acme.com"}, nil)
			},
			expectedInfo: &Info{Email: "b@y.com", Role: types.RoleMember, TenantName: "Acme", InvitedBy: "owner@acme.com"},
		},
		{
			name:        "missing token",
			setupMocks:  func(m serviceMocks) {},
			expectedErr: reasons.ErrMissingToken,
		},
		{
			name:  "unknown token",
			token: "nope",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "nope").Return(nil, storage.ErrNotFound)
			},
			expectedErr: reasons.ErrInvalidInvitation,
		},
		{
			name:  "expired invitation is flipped lazily",
			token: "T",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(expiredInvitation(), nil)
				m.storage.EXPECT().ExpireInvitation(gomock.Any(), "inv-1").Return(nil)
			},
			expectedErr: reasons.ErrInvitationExpired,
		},
		{
			name:  "already expired invitation is not written again",
			token: "T",
			setupMocks: func(m serviceMocks) {
				inv := expiredInvitation()
				inv.Status = types.InvitationExpired
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(inv, nil)
			},
			expectedErr: reasons.ErrInvitationExpired,
		},
		{
			name:  "accepted invitation",
			token: "T",
			setupMocks: func(m serviceMocks) {
				inv := pendingInvitation()
				inv.Status = types.InvitationAccepted
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(inv, nil)
			},
			expectedErr: reasons.ErrInvitationAlreadyUsed,
		},
		{
			name:  "storage failure",
			token: "T",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tt.setupMocks(m)

			info, err := s.GetInfo(context.Background(), tt.token)

			if tt.expectedErr != nil || tt.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				if tt.expectErr && reasons.IsClientError(err) {
					t.Errorf("expected a server error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *info != *tt.expectedInfo {
				t.Errorf("expected %+v, got %+v", tt.expectedInfo, info)
			}
		})
	}
}

func TestService_Check(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "new user",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "already member",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(&types.User{ID: "u", TenantID: "42"}, nil)
			},
			expectedErr: reasons.ErrAlreadyMember,
		},
		{
			name: "member of another organization",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(&types.User{ID: "u", TenantID: "7"}, nil)
			},
			expectedErr: reasons.ErrExistsInOtherOrganization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tt.setupMocks(m)

			err := s.Check(context.Background(), "T")
			if tt.expectedErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_Complete(t *testing.T) {
	created := &types.User{ID: "user-b", TenantID: "42", Email: "b@y.com", FirstName: "B", LastName: "Y", Role: types.RoleMember}
	sessionTokens := &types.SessionTokens{AccessToken: "access", RefreshToken: "refresh", SessionID: "session-1"}

	tests := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
		expectErr   bool
	}{
		{
			name: "creates member and opens session",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(nil, storage.ErrNotFound)
				runTx(m)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.TenantID != "42" || u.Role != types.RoleMember || u.FirstName != "B" || u.LastName != "Y" {
							return nil, errors.New("unexpected user")
						}
						return created, nil
					},
				)
				m.storage.EXPECT().AcceptInvitation(gomock.Any(), "inv-1", "user-b").Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), "42", "user-b", types.RoleMember).Return(nil)
				m.sessions.EXPECT().StartSession(gomock.Any(), created, testClient).Return(sessionTokens, nil)
				m.storage.EXPECT().UpdateUserLastLogin(gomock.Any(), "user-b").Return(nil)
			},
		},
		{
			name: "accepted invitation creates nothing",
			setupMocks: func(m serviceMocks) {
				inv := pendingInvitation()
				inv.Status = types.InvitationAccepted
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(inv, nil)
			},
			expectedErr: reasons.ErrInvitationAlreadyUsed,
		},
		{
			name: "expired invitation creates nothing",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(expiredInvitation(), nil)
				m.storage.EXPECT().ExpireInvitation(gomock.Any(), "inv-1").Return(nil)
			},
			expectedErr: reasons.ErrInvitationExpired,
		},
		{
			name: "cross-tenant email is rejected",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(&types.User{ID: "u", TenantID: "7"}, nil)
			},
			expectedErr: reasons.ErrExistsInOtherOrganization,
		},
		{
			name: "concurrent completion loses the transition",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(nil, storage.ErrNotFound)
				runTx(m)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(created, nil)
				m.storage.EXPECT().AcceptInvitation(gomock.Any(), "inv-1", "user-b").Return(storage.ErrConflict)
			},
			expectedErr: reasons.ErrInvitationAlreadyUsed,
		},
		{
			name: "concurrent completion hits the email index",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(nil, storage.ErrNotFound)
				runTx(m)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: reasons.ErrInvitationAlreadyUsed,
		},
		{
			name: "authorization failure rolls back",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(nil, storage.ErrNotFound)
				runTx(m)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(created, nil)
				m.storage.EXPECT().AcceptInvitation(gomock.Any(), "inv-1", "user-b").Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), "42", "user-b", types.RoleMember).Return(errors.New("fga down"))
			},
			expectErr: true,
		},
		{
			name: "commit failure removes the written role",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), "T").Return(pendingInvitation(), nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "b@y.com").Return(nil, storage.ErrNotFound)
				m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						if err := fn(ctx); err != nil {
							return err
						}
						return errors.New("commit failed")
					},
				)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(created, nil)
				m.storage.EXPECT().AcceptInvitation(gomock.Any(), "inv-1", "user-b").Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), "42", "user-b", types.RoleMember).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), "42", "user-b", types.RoleMember).Return(nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tt.setupMocks(m)

			result, err := s.Complete(context.Background(), "T", Profile{FirstName: " B ", LastName: "Y"}, testClient)

			if tt.expectedErr != nil || tt.expectErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.RedirectTo != DashboardPath {
				t.Errorf("expected redirect %s, got %s", DashboardPath, result.RedirectTo)
			}

			if result.Tokens != sessionTokens {
				t.Errorf("expected session tokens to be returned")
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateRequest
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "owner invites a member",
			req:  CreateRequest{TenantID: "42", InviterID: "owner-1", Email: " B@Y.com ", Role: types.RoleMember},
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CheckTenantAccess(gomock.Any(), "42", "owner-1", "can_invite").Return(true, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), "42").Return(&types.Tenant{ID: "42", Name: "Acme"}, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *types.Invitation) (*types.Invitation, error) {
						if i.Email != "b@y.com" || len(i.Token) != 43 || !i.ExpiresAt.Equal(fixedNow.Add(7*24*time.Hour)) {
							return nil, errors.New("unexpected invitation")
						}
						out := *i
						out.ID = "inv-1"
						out.Status = types.InvitationPending
						return &out, nil
					},
				)
				m.storage.EXPECT().GetUserByID(gomock.Any(), "owner-1").Return(&types.User{FirstName: "Ada"}, nil)
				m.mailer.EXPECT().SendInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e mail.InvitationEmail) error {
						if e.TenantName != "Acme" || e.InviterName != "Ada" ||
							!strings.HasPrefix(e.Link, "http://localhost:8080/auth/invite/accept?token=") {
							return errors.New("unexpected email")
						}
						return nil
					},
				)
			},
		},
		{
			name:        "unknown role",
			req:         CreateRequest{TenantID: "42", Email: "b@y.com", Role: "admin"},
			setupMocks:  func(m serviceMocks) {},
			expectedErr: ErrUnknownRole,
		},
		{
			name: "inviter without permission",
			req:  CreateRequest{TenantID: "42", InviterID: "member-1", Email: "b@y.com", Role: types.RoleMember},
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CheckTenantAccess(gomock.Any(), "42", "member-1", "can_invite").Return(false, nil)
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tt.setupMocks(m)

			inv, err := s.Create(context.Background(), tt.req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if inv.ID != "inv-1" {
				t.Errorf("unexpected invitation %+v", inv)
			}
		})
	}
}

func TestService_ListReconcilesExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().ListInvitationsByTenantID(gomock.Any(), "42").
		Return([]*types.Invitation{pendingInvitation(), expiredInvitation()}, nil)
	m.storage.EXPECT().ExpireInvitation(gomock.Any(), "inv-1").Return(nil)

	invitations, err := s.List(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if invitations[0].Status != types.InvitationPending || invitations[1].Status != types.InvitationExpired {
		t.Errorf("unexpected statuses %s, %s", invitations[0].Status, invitations[1].Status)
	}
}
