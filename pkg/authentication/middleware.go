// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/studio-service/internal/http/types"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/pkg/tokens"
)

type Middleware struct {
	verifier TokenVerifierInterface
	cookies  CookieReaderInterface
	sessions SessionCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests without a valid access token bound to an
// active session. The access cookie takes precedence over a bearer header.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token := m.cookies.AccessToken(r)
			if token == "" {
				token, _ = m.getBearerToken(r.Header)
			}

			if token == "" {
				m.unauthorizedResponse(w, reasons.ErrMissingToken)
				return
			}

			claims, err := m.verifier.Verify(token, tokens.PurposeAccess)
			if err != nil {
				m.logger.Debugf("access token verification failed: %v", err)
				m.unauthorizedResponse(w, reasons.ErrInvalidToken)
				return
			}

			active, err := m.sessions.IsSessionActive(ctx, claims.SessionID)
			if err != nil {
				m.logger.Errorf("failed to check session %s: %v", claims.SessionID, err)
				types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
				return
			}

			if !active {
				m.unauthorizedResponse(w, reasons.ErrSessionInactive)
				return
			}

			ctx = WithPrincipal(ctx, Principal{
				UserID:    claims.UserID,
				TenantID:  claims.TenantID,
				SessionID: claims.SessionID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, err *reasons.Error) {
	types.WriteError(w, http.StatusUnauthorized, err.Code, err.Error())
}

func NewMiddleware(verifier TokenVerifierInterface, cookies CookieReaderInterface, sessions SessionCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		cookies:  cookies,
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
