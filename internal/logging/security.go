// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(level, event, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("event", event),
		zap.String("level", level),
		zap.String("description", description),
	)

	switch level {
	case "WARN":
		s.l.Warn(description, fields...)
	case "CRITICAL":
		s.l.Error(description, fields...)
	default:
		s.l.Info(description, fields...)
	}
}

func (s *SecurityLogger) SystemStartup() {
	s.event("WARN", "sys_startup", "studio-service is starting")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("WARN", "sys_shutdown", "studio-service is shutting down")
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.event("INFO", fmt.Sprintf("authn_login_success:%s", userID), fmt.Sprintf("user %s logged in", userID))
}

func (s *SecurityLogger) AuthnLoginFail(subject, reason string) {
	s.event(
		"WARN",
		fmt.Sprintf("authn_login_fail:%s", subject),
		fmt.Sprintf("login failed for %s", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthnTokenCreated(userID, sessionID string) {
	s.event(
		"INFO",
		fmt.Sprintf("authn_token_created:%s", userID),
		fmt.Sprintf("tokens issued to user %s", userID),
		zap.String("session_id", sessionID),
	)
}

func (s *SecurityLogger) AuthnTokenRevoked(userID, sessionID string) {
	s.event(
		"INFO",
		fmt.Sprintf("authn_token_revoked:%s", userID),
		fmt.Sprintf("session %s revoked", sessionID),
		zap.String("session_id", sessionID),
	)
}

func (s *SecurityLogger) AuthnTokenRevokedAll(userID string, count int64) {
	s.event(
		"WARN",
		fmt.Sprintf("authn_token_revoked:%s", userID),
		fmt.Sprintf("all sessions of user %s revoked", userID),
		zap.Int64("count", count),
	)
}

func (s *SecurityLogger) UserCreated(userID, tenantID, role string) {
	s.event(
		"WARN",
		fmt.Sprintf("user_created:%s,%s", userID, role),
		fmt.Sprintf("user %s created in tenant %s", userID, tenantID),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) InvitationAccepted(invitationID, userID string) {
	s.event(
		"INFO",
		fmt.Sprintf("invitation_accepted:%s", invitationID),
		fmt.Sprintf("invitation %s accepted by user %s", invitationID, userID),
	)
}
