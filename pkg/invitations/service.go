// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/canonical/studio-service/internal/authorization"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/storage"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/mail"
)

const (
	AcceptPath   = "/auth/invite/accept"
	CompletePath = "/invite/complete"
	// DashboardPath is where invited users land; onboarding belongs to the tenant owner.
	DashboardPath = "/dashboard"

	tokenBytes = 32
)

var (
	ErrUnknownRole = errors.New("unknown role")
	ErrForbidden   = errors.New("inviter is not allowed to invite to this tenant")
)

type Config struct {
	BaseURL  string
	Lifetime time.Duration
}

// Info is the read-only projection used to pre-fill the completion form.
type Info struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantName string `json:"tenantName"`
	InvitedBy  string `json:"invitedBy"`
}

type Profile struct {
	FirstName string
	LastName  string
}

type CompleteResult struct {
	User       *types.User
	Tokens     *types.SessionTokens
	RedirectTo string
}

type CreateRequest struct {
	TenantID    string
	InviterID   string
	Email       string
	Role        string
	Permissions map[string]bool
}

type Service struct {
	cfg Config

	storage  StorageInterface
	tx       TxRunnerInterface
	sessions SessionIssuerInterface
	authz    AuthzInterface
	mailer   MailerInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// reconcile flips a pending invitation past its expiry to expired. It is
// idempotent and runs before every read of an invitation.
func (s *Service) reconcile(ctx context.Context, inv *types.Invitation) error {
	if inv.Status != types.InvitationPending || s.now().Before(inv.ExpiresAt) {
		return nil
	}

	if err := s.storage.ExpireInvitation(ctx, inv.ID); err != nil {
		return err
	}

	inv.Status = types.InvitationExpired

	return nil
}

// load resolves token to a pending, unexpired invitation.
func (s *Service) load(ctx context.Context, token string) (*types.Invitation, error) {
	if token == "" {
		return nil, reasons.ErrMissingToken
	}

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, reasons.ErrInvalidInvitation
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}

	if err := s.reconcile(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to expire invitation %s: %w", inv.ID, err)
	}

	switch inv.Status {
	case types.InvitationPending:
		return inv, nil
	case types.InvitationExpired:
		return nil, reasons.ErrInvitationExpired
	default:
		return nil, reasons.ErrInvitationAlreadyUsed
	}
}

// checkMembership rejects emails that already resolve to a user. Users
// belong to exactly one tenant, so a match elsewhere is never merged.
func (s *Service) checkMembership(ctx context.Context, inv *types.Invitation) error {
	user, err := s.storage.GetUserByEmail(ctx, inv.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if user.TenantID == inv.TenantID {
		return reasons.ErrAlreadyMember
	}

	return reasons.ErrExistsInOtherOrganization
}

func (s *Service) displayName(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Debugf("inviter %s not resolvable: %v", userID, err)
		return ""
	}

	if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
		return name
	}

	return user.Email
}

func (s *Service) GetInfo(ctx context.Context, token string) (*Info, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.GetInfo")
	defer span.End()

	inv, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	tenant, err := s.storage.GetTenantByID(ctx, inv.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", inv.TenantID, err)
	}

	return &Info{
		Email:      inv.Email,
		Role:       inv.Role,
		TenantName: tenant.Name,
		InvitedBy:  s.displayName(ctx, inv.InvitedBy),
	}, nil
}

// Check validates an invitation ahead of the completion form.
func (s *Service) Check(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Check")
	defer span.End()

	inv, err := s.load(ctx, token)
	if err != nil {
		return err
	}

	return s.checkMembership(ctx, inv)
}

// Complete creates the invited user, marks the invitation accepted and
// opens a session. User creation and the pending -> accepted transition
// share one transaction.
func (s *Service) Complete(ctx context.Context, token string, profile Profile, client types.ClientInfo) (*CompleteResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Complete")
	defer span.End()

	inv, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.checkMembership(ctx, inv); err != nil {
		return nil, err
	}

	var user *types.User
	assigned := false
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		user, err = s.storage.CreateUser(ctx, &types.User{
			TenantID:    inv.TenantID,
			Email:       inv.Email,
			FirstName:   strings.TrimSpace(profile.FirstName),
			LastName:    strings.TrimSpace(profile.LastName),
			Role:        inv.Role,
			Permissions: inv.Permissions,
		})
		if err != nil {
			return err
		}

		if err := s.storage.AcceptInvitation(ctx, inv.ID, user.ID); err != nil {
			return err
		}

		if err := s.authz.AssignTenantRole(ctx, inv.TenantID, user.ID, inv.Role); err != nil {
			return err
		}
		assigned = true
		return nil
	})

	// the tuple outlived a rolled back user
	if err != nil && assigned {
		if rmErr := s.authz.RemoveTenantRole(ctx, inv.TenantID, user.ID, inv.Role); rmErr != nil {
			s.logger.Errorf("failed to remove role of rolled back user %s: %v", user.ID, rmErr)
		}
	}

	switch {
	case err == nil:
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrDuplicateKey):
		// a concurrent completion won the transition
		return nil, reasons.ErrInvitationAlreadyUsed
	default:
		return nil, fmt.Errorf("failed to accept invitation %s: %w", inv.ID, err)
	}

	s.logger.Security().UserCreated(user.ID, user.TenantID, user.Role)
	s.logger.Security().InvitationAccepted(inv.ID, user.ID)

	sessionTokens, err := s.sessions.StartSession(ctx, user, client)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateUserLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	s.logger.Security().AuthnLoginSuccess(user.ID)
	if err := s.monitor.IncAuthEvent(map[string]string{"event": "invitation_accepted"}); err != nil {
		s.logger.Debugf("failed to count invitation acceptance: %v", err)
	}

	return &CompleteResult{
		User:       user,
		Tokens:     sessionTokens,
		RedirectTo: DashboardPath,
	}, nil
}

// Create issues a new invitation and emails its acceptance link. When an
// inviter is given it must hold can_invite on the tenant.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Create")
	defer span.End()

	if _, ok := authorization.RoleRelation(req.Role); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, req.Role)
	}

	if req.InviterID != "" {
		allowed, err := s.authz.CheckTenantAccess(ctx, req.TenantID, req.InviterID, authorization.CAN_INVITE_PERMISSION)
		if err != nil {
			return nil, fmt.Errorf("failed to check inviter access: %w", err)
		}
		if !allowed {
			return nil, ErrForbidden
		}
	}

	tenant, err := s.storage.GetTenantByID(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", req.TenantID, err)
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	inv, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		Token:       token,
		TenantID:    tenant.ID,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Role:        req.Role,
		Permissions: req.Permissions,
		ExpiresAt:   s.now().Add(s.cfg.Lifetime),
		InvitedBy:   req.InviterID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	err = s.mailer.SendInvitation(ctx, mail.InvitationEmail{
		Email:       inv.Email,
		TenantName:  tenant.Name,
		InviterName: s.displayName(ctx, req.InviterID),
		Role:        inv.Role,
		Link:        s.acceptLink(token),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send invitation: %w", err)
	}

	return inv, nil
}

func (s *Service) List(ctx context.Context, tenantID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.List")
	defer span.End()

	invitations, err := s.storage.ListInvitationsByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	for _, inv := range invitations {
		if err := s.reconcile(ctx, inv); err != nil {
			return nil, fmt.Errorf("failed to expire invitation %s: %w", inv.ID, err)
		}
	}

	return invitations, nil
}

func (s *Service) acceptLink(token string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + AcceptPath + "?token=" + url.QueryEscape(token)
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func NewService(
	cfg Config,
	storage StorageInterface,
	tx TxRunnerInterface,
	sessions SessionIssuerInterface,
	authz AuthzInterface,
	mailer MailerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		cfg:      cfg,
		storage:  storage,
		tx:       tx,
		sessions: sessions,
		authz:    authz,
		mailer:   mailer,
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
