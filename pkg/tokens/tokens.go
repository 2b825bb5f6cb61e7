// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tokens

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Purpose string

const (
	PurposeLogin   Purpose = "login"
	PurposeSignup  Purpose = "signup"
	PurposeAccess  Purpose = "access"
	PurposeRefresh Purpose = "refresh"
)

// ErrInvalidToken is returned for every token that fails verification.
// Callers never learn whether the token was malformed, forged, expired
// or minted for another purpose.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Purpose   Purpose `json:"pur"`
	Email     string  `json:"email,omitempty"`
	UserID    string  `json:"uid,omitempty"`
	TenantID  string  `json:"tid,omitempty"`
	SessionID string  `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Issue signs claims for purpose, valid for ttl from now.
func (c *Codec) Issue(claims Claims, purpose Purpose, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	jti, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	now := c.now()

	claims.Purpose = purpose
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        jti.String(),
		Issuer:    c.issuer,
		Subject:   subject(claims),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature, issuer, expiry and that the token purpose is
// one of purposes.
func (c *Codec) Verify(raw string, purposes ...Purpose) (*Claims, error) {
	if raw == "" || len(purposes) == 0 {
		return nil, ErrInvalidToken
	}

	claims := new(Claims)
	_, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !slices.Contains(purposes, claims.Purpose) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func subject(c Claims) string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Email
}

func NewCodec(secret, issuer string) *Codec {
	c := new(Codec)

	c.secret = []byte(secret)
	c.issuer = issuer
	c.now = time.Now

	return c
}
