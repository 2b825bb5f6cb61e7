// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/studio-service/internal/http/types"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/tracing"
	studiotypes "github.com/canonical/studio-service/internal/types"
)

const LoginPath = "/login"

type CompleteRequest struct {
	Token     string `json:"token" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

type CompleteResponse struct {
	Success    bool   `json:"success"`
	RedirectTo string `json:"redirectTo"`
}

type API struct {
	service  ServiceInterface
	cookies  CookieBinderInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/auth/invite/info", a.handleInfo)
	mux.Get("/auth/invite/accept", a.handleAccept)
	mux.Post("/auth/invite/complete", a.handleComplete)
}

func (a *API) writeFailure(w http.ResponseWriter, err error, msg string) {
	if reasons.IsClientError(err) {
		types.WriteError(w, http.StatusBadRequest, reasons.Code(err), err.Error())
		return
	}

	a.logger.Errorf("%s: %v", msg, err)
	types.WriteError(w, http.StatusInternalServerError, reasons.ServerError, "internal error")
}

func (a *API) handleInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.handleInfo")
	defer span.End()

	info, err := a.service.GetInfo(ctx, r.URL.Query().Get("token"))
	if err != nil {
		a.writeFailure(w, err, "failed to load invitation")
		return
	}

	types.WriteJSON(w, http.StatusOK, info)
}

func (a *API) handleAccept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.handleAccept")
	defer span.End()

	token := r.URL.Query().Get("token")

	if err := a.service.Check(ctx, token); err != nil {
		if !reasons.IsClientError(err) {
			a.logger.Errorf("failed to check invitation: %v", err)
		}
		http.Redirect(w, r, LoginPath+"?error="+url.QueryEscape(reasons.Code(err)), http.StatusFound)
		return
	}

	http.Redirect(w, r, CompletePath+"?token="+url.QueryEscape(token), http.StatusFound)
}

func (a *API) handleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.handleComplete")
	defer span.End()

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, reasons.InvalidRequest, "invalid request body")
		return
	}

	if req.Token == "" {
		types.WriteError(w, http.StatusBadRequest, reasons.MissingToken, reasons.ErrMissingToken.Error())
		return
	}

	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, reasons.InvalidRequest, types.ValidationMessage(err))
		return
	}

	result, err := a.service.Complete(
		ctx,
		req.Token,
		Profile{FirstName: req.FirstName, LastName: req.LastName},
		studiotypes.ClientInfo{UserAgent: r.UserAgent(), IPAddress: r.RemoteAddr},
	)
	if err != nil {
		a.writeFailure(w, err, "failed to complete invitation")
		return
	}

	a.cookies.SetAuthCookies(w, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	types.WriteJSON(w, http.StatusOK, CompleteResponse{Success: true, RedirectTo: result.RedirectTo})
}

func NewAPI(service ServiceInterface, cookies CookieBinderInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.cookies = cookies
	a.validate = types.NewValidator()

	a.tracer = tracer
	a.logger = logger

	return a
}
