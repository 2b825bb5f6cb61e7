// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/studio-service/internal/types"
)

var invitationColumns = []string{
	"id", "token", "tenant_id", "email", "role", "permissions", "status",
	"expires_at", "invited_by", "user_id", "accepted_at", "created_at",
}

func scanInvitation(row rowScanner) (*types.Invitation, error) {
	var (
		i           types.Invitation
		permissions []byte
		invitedBy   sql.NullString
		userID      sql.NullString
		acceptedAt  sql.NullTime
	)

	err := row.Scan(
		&i.ID, &i.Token, &i.TenantID, &i.Email, &i.Role, &permissions, &i.Status,
		&i.ExpiresAt, &invitedBy, &userID, &acceptedAt, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if i.Permissions, err = unmarshalPermissions(permissions); err != nil {
		return nil, err
	}

	i.InvitedBy = invitedBy.String
	i.UserID = userID.String
	if acceptedAt.Valid {
		t := acceptedAt.Time
		i.AcceptedAt = &t
	}

	return &i, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Storage) CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	permissions, err := marshalPermissions(i.Permissions)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("team_invitations").
		Columns("id", "token", "tenant_id", "email", "role", "permissions", "status", "expires_at", "invited_by").
		Values(id, i.Token, i.TenantID, i.Email, i.Role, permissions, types.InvitationPending, i.ExpiresAt, nullable(i.InvitedBy)).
		Suffix("RETURNING " + strings.Join(invitationColumns, ", ")).
		QueryRowContext(ctx)

	out, err := scanInvitation(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert invitation")
	}

	return out, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("team_invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx)

	out, err := scanInvitation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return out, nil
}

func (s *Storage) ListInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitationsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("team_invitations").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		out, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, out)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

// ExpireInvitation flips a pending invitation to expired. Invitations in
// any other state are left as they are.
func (s *Storage) ExpireInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ExpireInvitation")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("team_invitations").
		Set("status", types.InvitationExpired).
		Where(sq.Eq{"id": id, "status": types.InvitationPending}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire invitation: %w", err)
	}

	return nil
}

// AcceptInvitation moves a pending, unexpired invitation to accepted and
// links the resolved user. It returns ErrConflict when the invitation was
// no longer pending, so only one caller can ever win the transition.
func (s *Storage) AcceptInvitation(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("team_invitations").
		Set("status", types.InvitationAccepted).
		Set("user_id", userID).
		Set("accepted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": types.InvitationPending}).
		Where(sq.Expr("expires_at > now()")).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "failed to accept invitation")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read accepted rows: %w", err)
	}

	if n == 0 {
		return ErrConflict
	}

	return nil
}
