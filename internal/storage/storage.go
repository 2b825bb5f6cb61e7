// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/studio-service/internal/db"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var (
	tenantColumns = []string{"id", "name", "slug", "email", "created_at"}
	userColumns   = []string{
		"id", "tenant_id", "email", "first_name", "last_name", "role",
		"permissions", "is_active", "last_login_at", "created_at",
	}
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var out types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "email").
		Values(id, t.Name, t.Slug, t.Email).
		Suffix("RETURNING id, name, slug, email, created_at").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.Name, &out.Slug, &out.Email, &out.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert tenant")
	}

	return &out, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Email, &t.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Email, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	permissions, err := marshalPermissions(u.Permissions)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "tenant_id", "email", "first_name", "last_name", "role", "permissions").
		Values(id, u.TenantID, u.Email, u.FirstName, u.LastName, u.Role, permissions).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		QueryRowContext(ctx)

	out, err := scanUser(row)
	if err != nil {
		return nil, wrapWriteError(err, "failed to insert user")
	}

	return out, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetUserByEmail matches active users only, case-insensitively.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Expr("lower(email) = lower(?)", email)).
		Where(sq.Eq{"is_active": true}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (s *Storage) UpdateUserLastLogin(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserLastLogin")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("last_login_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

// IsOnboardingComplete reports whether the user has a completed onboarding record.
func (s *Storage) IsOnboardingComplete(ctx context.Context, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsOnboardingComplete")
	defer span.End()

	var completed bool
	err := s.db.Statement(ctx).
		Select("completed_at IS NOT NULL").
		From("onboarding_progress").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&completed)

	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read onboarding progress: %w", err)
	}

	return completed, nil
}

type rowScanner interface {
	Scan(...any) error
}

func scanUser(row rowScanner) (*types.User, error) {
	var (
		u           types.User
		permissions []byte
		lastLogin   sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.TenantID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&permissions, &u.IsActive, &lastLogin, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if u.Permissions, err = unmarshalPermissions(permissions); err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}

	return &u, nil
}

func marshalPermissions(p map[string]bool) (string, error) {
	if len(p) == 0 {
		return "{}", nil
	}

	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode permissions: %w", err)
	}

	return string(b), nil
}

func unmarshalPermissions(b []byte) (map[string]bool, error) {
	p := make(map[string]bool)
	if len(b) == 0 {
		return p, nil
	}

	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	return p, nil
}
