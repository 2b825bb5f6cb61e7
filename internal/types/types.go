// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleMember  = "member"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationExpired  = "expired"
)

type Tenant struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type User struct {
	ID          string          `db:"id" json:"id"`
	TenantID    string          `db:"tenant_id" json:"tenant_id"`
	Email       string          `db:"email" json:"email"`
	FirstName   string          `db:"first_name" json:"first_name"`
	LastName    string          `db:"last_name" json:"last_name"`
	Role        string          `db:"role" json:"role"`
	Permissions map[string]bool `db:"permissions" json:"permissions"`
	IsActive    bool            `db:"is_active" json:"is_active"`
	LastLoginAt *time.Time      `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type Session struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	TenantID     string    `db:"tenant_id" json:"tenant_id"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	UserAgent    string    `db:"user_agent" json:"user_agent"`
	IPAddress    string    `db:"ip_address" json:"ip_address"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	LastActiveAt time.Time `db:"last_active_at" json:"last_active_at"`
}

type Invitation struct {
	ID          string          `db:"id" json:"id"`
	Token       string          `db:"token" json:"-"`
	TenantID    string          `db:"tenant_id" json:"tenant_id"`
	Email       string          `db:"email" json:"email"`
	Role        string          `db:"role" json:"role"`
	Permissions map[string]bool `db:"permissions" json:"permissions"`
	Status      string          `db:"status" json:"status"`
	ExpiresAt   time.Time       `db:"expires_at" json:"expires_at"`
	InvitedBy   string          `db:"invited_by" json:"invited_by,omitempty"`
	UserID      string          `db:"user_id" json:"user_id,omitempty"`
	AcceptedAt  *time.Time      `db:"accepted_at" json:"accepted_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// ClientInfo is the request metadata recorded on a session.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type SessionTokens struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
