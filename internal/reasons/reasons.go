// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package reasons holds the fixed set of client-facing failure codes
// surfaced through redirect query parameters and JSON error bodies.
package reasons

import (
	"errors"
)

const (
	MissingToken              = "missing_token"
	InvalidToken              = "invalid_token"
	InvalidInvitation         = "invalid_invitation"
	InvitationAlreadyUsed     = "invitation_already_used"
	InvitationExpired         = "invitation_expired"
	AlreadyMember             = "already_member"
	ExistsInOtherOrganization = "exists_in_other_organization"
	UserNotFound              = "user_not_found"
	SessionInactive           = "session_inactive"
	TooManyRequests           = "too_many_requests"
	InvalidRequest            = "invalid_request"
	ServerError               = "server_error"
)

// Error is a foreseeable failure that maps to a reason code.
type Error struct {
	Code string
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func New(code, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

var (
	ErrMissingToken              = New(MissingToken, "token is missing")
	ErrInvalidToken              = New(InvalidToken, "token is invalid or expired")
	ErrInvalidInvitation         = New(InvalidInvitation, "invitation not found")
	ErrInvitationAlreadyUsed     = New(InvitationAlreadyUsed, "invitation has already been used")
	ErrInvitationExpired         = New(InvitationExpired, "invitation has expired")
	ErrAlreadyMember             = New(AlreadyMember, "user is already a member of this organization")
	ErrExistsInOtherOrganization = New(ExistsInOtherOrganization, "user belongs to another organization")
	ErrUserNotFound              = New(UserNotFound, "user not found")
	ErrSessionInactive           = New(SessionInactive, "session is no longer active")
	ErrTooManyRequests           = New(TooManyRequests, "too many requests, try again later")
	ErrInvalidRequest            = New(InvalidRequest, "invalid request")
)

// Code returns the reason code carried by err, or ServerError for
// anything unexpected.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ServerError
}

// IsClientError reports whether err is a foreseeable rejection rather
// than a server fault.
func IsClientError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
