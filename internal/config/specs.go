// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	DevelopmentEnvironment = "development"
	StagingEnvironment     = "staging"
	ProductionEnvironment  = "production"
)

var environments = []string{DevelopmentEnvironment, StagingEnvironment, ProductionEnvironment}

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Environment string `envconfig:"environment" default:"development"`
	Port        int    `envconfig:"port" default:"8080"`
	BaseURL     string `envconfig:"base_url" default:"http://localhost:8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	// ExposeMagicLink echoes magic links in the API response, it is honoured
	// in development only.
	ExposeMagicLink bool `envconfig:"expose_magic_link" default:"false"`

	TokenSecret     string        `envconfig:"token_secret" required:"true"`
	TokenIssuer     string        `envconfig:"token_issuer" default:"studio-service"`
	MagicLinkTTL    time.Duration `envconfig:"magic_link_ttl" default:"15m"`
	AccessTokenTTL  time.Duration `envconfig:"access_token_ttl" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"refresh_token_ttl" default:"168h"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	AccessCookieName  string `envconfig:"access_cookie_name" default:"access_token"`
	RefreshCookieName string `envconfig:"refresh_cookie_name" default:"refresh_token"`
	CookieDomain      string `envconfig:"cookie_domain"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	MailDriver   string `envconfig:"mail_driver" default:"log"`
	MailFrom     string `envconfig:"mail_from" default:"Studio <no-reply@localhost>"`
	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	AMQPURL      string `envconfig:"amqp_url"`
	AMQPQueue    string `envconfig:"amqp_queue" default:"notifications.email"`

	RedisAddr           string        `envconfig:"redis_addr"`
	RedisPassword       string        `envconfig:"redis_password"`
	RedisDB             int           `envconfig:"redis_db" default:"0"`
	MagicLinkRateLimit  int           `envconfig:"magic_link_rate_limit" default:"5"`
	MagicLinkRateWindow time.Duration `envconfig:"magic_link_rate_window" default:"15m"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:"http"`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}

// Validate rejects environment names outside the known set, so that a
// misspelt production deployment is not treated as a development one.
func (s *EnvSpec) Validate() error {
	if !slices.Contains(environments, s.Environment) {
		return fmt.Errorf("unknown ENVIRONMENT %q, expected one of %v", s.Environment, environments)
	}
	return nil
}

func (s *EnvSpec) IsProduction() bool {
	return s.Environment == ProductionEnvironment
}

func (s *EnvSpec) IsDevelopment() bool {
	return s.Environment == DevelopmentEnvironment
}

// SecureCookies reports whether auth cookies carry the Secure attribute.
func (s *EnvSpec) SecureCookies() bool {
	return !s.IsDevelopment()
}

// MagicLinkEchoEnabled reports whether magic links may be returned to the caller.
func (s *EnvSpec) MagicLinkEchoEnabled() bool {
	return s.ExposeMagicLink && s.IsDevelopment()
}
