// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	"github.com/canonical/studio-service/pkg/tokens"
)

type TokenVerifierInterface interface {
	// Verify validates a raw token for one of the given purposes and returns its claims
	Verify(raw string, purposes ...tokens.Purpose) (*tokens.Claims, error)
}

type CookieReaderInterface interface {
	AccessToken(*http.Request) string
}

type SessionCheckerInterface interface {
	IsSessionActive(ctx context.Context, id string) (bool, error)
}
