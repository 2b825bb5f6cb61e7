// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/studio-service/internal/http/types"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type API struct {
	db Pinger

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

// ready reports 503 until the database answers a ping.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database not ready: %v", err)
		a.setAvailability(0)
		types.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable"})
		return
	}

	a.setAvailability(1)
	types.WriteJSON(w, http.StatusOK, Status{Status: "ready"})
}

func (a *API) setAvailability(v float64) {
	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, v); err != nil {
		a.logger.Debugf("failed to set database availability: %v", err)
	}
}

func NewAPI(db Pinger, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
