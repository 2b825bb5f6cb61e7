// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface records security relevant events using the
// OWASP application logging vocabulary.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnLoginSuccess(userID string)
	AuthnLoginFail(subject, reason string)
	AuthnTokenCreated(userID, sessionID string)
	AuthnTokenRevoked(userID, sessionID string)
	AuthnTokenRevokedAll(userID string, count int64)
	UserCreated(userID, tenantID, role string)
	InvitationAccepted(invitationID, userID string)
}
