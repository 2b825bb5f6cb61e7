// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"fmt"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
)

type Config struct {
	ApiURL               string
	StoreID              string
	ApiToken             string
	AuthorizationModelID string
	Debug                bool

	Tracer  tracing.TracingInterface
	Monitor monitoring.MonitorInterface
	Logger  logging.LoggerInterface
}

func NewConfig(apiScheme, apiHost, storeID, apiToken, authModelID string, debug bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.ApiURL = fmt.Sprintf("%s://%s", apiScheme, apiHost)
	c.StoreID = storeID
	c.ApiToken = apiToken
	c.AuthorizationModelID = authModelID
	c.Debug = debug

	c.Tracer = tracer
	c.Monitor = monitor
	c.Logger = logger

	return c
}
