// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/studio-service/internal/types"
)

var sessionColumns = []string{
	"id", "user_id", "tenant_id", "is_active", "user_agent", "ip_address", "created_at", "last_active_at",
}

func scanSession(row rowScanner) (*types.Session, error) {
	var out types.Session
	err := row.Scan(
		&out.ID, &out.UserID, &out.TenantID, &out.IsActive,
		&out.UserAgent, &out.IPAddress, &out.CreatedAt, &out.LastActiveAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Storage) CreateSession(ctx context.Context, userID, tenantID string, client types.ClientInfo) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("sessions").
		Columns("id", "user_id", "tenant_id", "user_agent", "ip_address").
		Values(id, userID, tenantID, client.UserAgent, client.IPAddress).
		Suffix("RETURNING " + strings.Join(sessionColumns, ", ")).
		QueryRowContext(ctx)

	out, err := scanSession(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert session")
	}

	return out, nil
}

func (s *Storage) GetSession(ctx context.Context, id string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSession")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	out, err := scanSession(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return out, nil
}

// TouchSession bumps last_active_at; inactive sessions are left untouched.
func (s *Storage) TouchSession(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchSession")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("sessions").
		Set("last_active_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "is_active": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// InvalidateSession marks the session inactive. Unknown or already
// inactive sessions are not an error.
func (s *Storage) InvalidateSession(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.InvalidateSession")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("sessions").
		Set("is_active", false).
		Where(sq.Eq{"id": id, "is_active": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	return nil
}

// InvalidateUserSessions marks every active session of the user inactive
// and returns how many were revoked.
func (s *Storage) InvalidateUserSessions(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InvalidateUserSessions")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("sessions").
		Set("is_active", false).
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate user sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count invalidated sessions: %w", err)
	}

	return n, nil
}

func (s *Storage) IsSessionActive(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsSessionActive")
	defer span.End()

	var active bool
	err := s.db.Statement(ctx).
		Select("is_active").
		From("sessions").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&active)

	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read session state: %w", err)
	}

	return active, nil
}

func (s *Storage) ListActiveSessionsByUserID(ctx context.Context, userID string) ([]*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveSessionsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("last_active_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*types.Session
	for rows.Next() {
		out, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, out)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sessions, nil
}
