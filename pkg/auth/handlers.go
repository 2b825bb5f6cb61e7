// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/studio-service/internal/http/types"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/tracing"
	studiotypes "github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/authentication"
)

const LoginPath = "/login"

type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type MagicLinkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
	Type    string `json:"type,omitempty"`
}

type LogoutAllResponse struct {
	Success bool  `json:"success"`
	Revoked int64 `json:"revoked"`
}

type SessionResponse struct {
	ID           string    `json:"id"`
	UserAgent    string    `json:"user_agent"`
	IPAddress    string    `json:"ip_address"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
	Current      bool      `json:"current"`
}

type API struct {
	service      ServiceInterface
	cookies      CookieBinderInterface
	authenticate func(http.Handler) http.Handler
	validate     *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/auth/magic-link", a.handleMagicLink)
	mux.Get("/auth/verify", a.handleVerify)
	mux.Post("/auth/refresh", a.handleRefresh)
	mux.Post("/auth/logout", a.handleLogout)
	mux.Post("/auth/logout-all", a.handleLogoutAll)

	mux.Group(func(r chi.Router) {
		r.Use(a.authenticate)
		r.Get("/auth/me", a.handleMe)
		r.Get("/auth/sessions", a.handleListSessions)
		r.Delete("/auth/sessions/{id}", a.handleRevokeSession)
	})
}

func (a *API) handleMagicLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleMagicLink")
	defer span.End()

	var req MagicLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, reasons.InvalidRequest, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, reasons.InvalidRequest, types.ValidationMessage(err))
		return
	}

	result, err := a.service.RequestMagicLink(ctx, req.Email)
	if err != nil {
		if errors.Is(err, reasons.ErrTooManyRequests) {
			types.WriteError(w, http.StatusTooManyRequests, reasons.TooManyRequests, err.Error())
			return
		}
		a.logger.Errorf("failed to request magic link: %v", err)
		types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
		return
	}

	resp := MagicLinkResponse{
		Success: true,
		Message: "If the address is valid, a sign-in link is on its way.",
	}

	if result.Link != "" {
		resp.Link = result.Link
		resp.Type = string(result.Purpose)
	}

	types.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleVerify")
	defer span.End()

	result, err := a.service.VerifyMagicLink(ctx, r.URL.Query().Get("token"), clientInfo(r))
	if err != nil {
		if !reasons.IsClientError(err) {
			a.logger.Errorf("failed to verify magic link: %v", err)
		}
		redirectWithError(w, r, reasons.Code(err))
		return
	}

	a.cookies.SetAuthCookies(w, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	http.Redirect(w, r, result.RedirectTo, http.StatusFound)
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleRefresh")
	defer span.End()

	t, err := a.service.Refresh(ctx, a.cookies.RefreshToken(r))
	if err != nil {
		if !reasons.IsClientError(err) {
			a.logger.Errorf("failed to refresh session: %v", err)
			types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
			return
		}
		a.cookies.ClearAuthCookies(w)
		types.WriteError(w, http.StatusUnauthorized, reasons.Code(err), err.Error())
		return
	}

	a.cookies.SetAuthCookies(w, t.AccessToken, t.RefreshToken)
	types.WriteJSON(w, http.StatusOK, types.SuccessResponse{Success: true})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleLogout")
	defer span.End()

	if err := a.service.Logout(ctx, a.cookies.AccessToken(r), a.cookies.RefreshToken(r)); err != nil {
		a.logger.Errorf("logout failed, clearing cookies anyway: %v", err)
	}

	a.cookies.ClearAuthCookies(w)
	types.WriteJSON(w, http.StatusOK, types.SuccessResponse{Success: true})
}

func (a *API) handleLogoutAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleLogoutAll")
	defer span.End()

	n, err := a.service.LogoutAll(ctx, a.cookies.AccessToken(r), a.cookies.RefreshToken(r))
	if err != nil {
		a.logger.Errorf("logout-all failed, clearing cookies anyway: %v", err)
	}

	a.cookies.ClearAuthCookies(w)
	types.WriteJSON(w, http.StatusOK, LogoutAllResponse{Success: true, Revoked: n})
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleMe")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	profile, err := a.service.Me(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, reasons.ErrUserNotFound) {
			types.WriteError(w, http.StatusNotFound, reasons.UserNotFound, err.Error())
			return
		}
		a.logger.Errorf("failed to load profile: %v", err)
		types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
		return
	}

	types.WriteJSON(w, http.StatusOK, profile)
}

func (a *API) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleListSessions")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	sessions, err := a.service.ListSessions(ctx, principal.UserID)
	if err != nil {
		a.logger.Errorf("failed to list sessions: %v", err)
		types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
		return
	}

	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionResponse{
			ID:           s.ID,
			UserAgent:    s.UserAgent,
			IPAddress:    s.IPAddress,
			CreatedAt:    s.CreatedAt,
			LastActiveAt: s.LastActiveAt,
			Current:      s.ID == principal.SessionID,
		})
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{"sessions": out})
}

func (a *API) handleRevokeSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "auth.API.handleRevokeSession")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)
	sessionID := chi.URLParam(r, "id")

	if err := a.service.RevokeSession(ctx, principal.UserID, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			types.WriteError(w, http.StatusNotFound, reasons.InvalidRequest, err.Error())
			return
		}
		a.logger.Errorf("failed to revoke session %s: %v", sessionID, err)
		types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
		return
	}

	if sessionID == principal.SessionID {
		a.cookies.ClearAuthCookies(w)
	}

	types.WriteJSON(w, http.StatusOK, types.SuccessResponse{Success: true})
}

func clientInfo(r *http.Request) studiotypes.ClientInfo {
	return studiotypes.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

func redirectWithError(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, LoginPath+"?error="+url.QueryEscape(reason), http.StatusFound)
}

func NewAPI(service ServiceInterface, cookies CookieBinderInterface, authenticate func(http.Handler) http.Handler, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.cookies = cookies
	a.authenticate = authenticate
	a.validate = types.NewValidator()

	a.tracer = tracer
	a.logger = logger

	return a
}
