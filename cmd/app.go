// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/studio-service/internal/authorization"
	"github.com/canonical/studio-service/internal/config"
	"github.com/canonical/studio-service/internal/db"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/openfga"
	"github.com/canonical/studio-service/internal/storage"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/pkg/auth"
	"github.com/canonical/studio-service/pkg/cookies"
	"github.com/canonical/studio-service/pkg/invitations"
	"github.com/canonical/studio-service/pkg/mail"
	"github.com/canonical/studio-service/pkg/ratelimit"
	"github.com/canonical/studio-service/pkg/tokens"
)

const (
	mailDriverLog  = "log"
	mailDriverSMTP = "smtp"
	mailDriverAMQP = "amqp"
)

// app holds the components shared by the server and the admin commands.
type app struct {
	specs *config.EnvSpec

	db          *db.DBClient
	storage     *storage.Storage
	authorizer  *authorization.Authorizer
	codec       *tokens.Codec
	cookies     *cookies.Binder
	auth        *auth.Service
	invitations *invitations.Service

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface

	closers []func()
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	if err := specs.Validate(); err != nil {
		return nil, err
	}

	return specs, nil
}

func newApp(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*app, error) {
	a := &app{specs: specs, tracer: tracer, monitor: monitor, logger: logger}

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	a.db = dbClient
	a.closers = append(a.closers, dbClient.Close)
	a.storage = storage.NewStorage(dbClient, tracer, monitor, logger)

	if a.authorizer, err = a.newAuthorizer(); err != nil {
		a.Close()
		return nil, err
	}

	sender, err := a.newSender()
	if err != nil {
		a.Close()
		return nil, err
	}
	mailer := mail.NewMailer(sender, specs.MailFrom, tracer, monitor, logger)

	a.codec = tokens.NewCodec(specs.TokenSecret, specs.TokenIssuer)
	a.cookies = cookies.NewBinder(cookies.Config{
		AccessName:  specs.AccessCookieName,
		RefreshName: specs.RefreshCookieName,
		AccessTTL:   specs.AccessTokenTTL,
		RefreshTTL:  specs.RefreshTokenTTL,
		Secure:      specs.SecureCookies(),
		Domain:      specs.CookieDomain,
	})

	a.auth = auth.NewService(
		auth.Config{
			BaseURL:         specs.BaseURL,
			MagicLinkTTL:    specs.MagicLinkTTL,
			AccessTokenTTL:  specs.AccessTokenTTL,
			RefreshTokenTTL: specs.RefreshTokenTTL,
			EchoMagicLink:   specs.MagicLinkEchoEnabled(),
		},
		a.storage,
		dbClient,
		a.codec,
		mailer,
		a.newLimiter(),
		a.authorizer,
		tracer, monitor, logger,
	)

	a.invitations = invitations.NewService(
		invitations.Config{
			BaseURL:  specs.BaseURL,
			Lifetime: specs.InvitationLifetime,
		},
		a.storage,
		dbClient,
		a.auth,
		a.authorizer,
		mailer,
		tracer, monitor, logger,
	)

	return a, nil
}

func (a *app) newAuthorizer() (*authorization.Authorizer, error) {
	if !a.specs.AuthorizationEnabled {
		a.logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(
			openfga.NewNoopClient(a.tracer, a.monitor, a.logger),
			a.tracer, a.monitor, a.logger,
		), nil
	}

	ofga, err := openfga.NewClient(
		openfga.NewConfig(
			a.specs.OpenfgaApiScheme,
			a.specs.OpenfgaApiHost,
			a.specs.OpenfgaStoreId,
			a.specs.OpenfgaApiToken,
			a.specs.OpenfgaModelId,
			a.specs.Debug,
			a.tracer,
			a.monitor,
			a.logger,
		),
	)
	if err != nil {
		return nil, err
	}

	authorizer := authorization.NewAuthorizer(ofga, a.tracer, a.monitor, a.logger)
	if err := authorizer.ValidateModel(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid authorization model: %w", err)
	}

	a.logger.Info("Authorization is enabled")

	return authorizer, nil
}

func (a *app) newSender() (mail.SenderInterface, error) {
	switch a.specs.MailDriver {
	case mailDriverSMTP:
		return mail.NewSMTPSender(
			mail.SMTPConfig{
				Host:     a.specs.SMTPHost,
				Port:     a.specs.SMTPPort,
				Username: a.specs.SMTPUsername,
				Password: a.specs.SMTPPassword,
			},
			a.tracer, a.logger,
		), nil
	case mailDriverAMQP:
		ch, closeFn, err := mail.DialAMQP(a.specs.AMQPURL, a.specs.AMQPQueue)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closeFn)
		return mail.NewAMQPSender(ch, a.specs.AMQPQueue, a.tracer, a.logger), nil
	case mailDriverLog, "":
		if a.specs.IsProduction() {
			a.logger.Warn("log mail driver in production, emails will not be delivered")
		}
		return mail.NewLogSender(a.logger), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", a.specs.MailDriver)
	}
}

// newLimiter returns a redis backed limiter when REDIS_ADDR is set and a
// permissive one otherwise.
func (a *app) newLimiter() auth.LimiterInterface {
	if a.specs.RedisAddr == "" {
		return ratelimit.NewNoopLimiter()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.specs.RedisAddr,
		Password: a.specs.RedisPassword,
		DB:       a.specs.RedisDB,
	})
	a.closers = append(a.closers, func() { _ = rdb.Close() })

	return ratelimit.NewRedisLimiter(
		rdb,
		a.specs.MagicLinkRateLimit,
		a.specs.MagicLinkRateWindow,
		a.tracer, a.monitor, a.logger,
	)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newCLIApp wires the components for a one-shot admin command, without
// tracing or metrics export.
func newCLIApp() (*app, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(specs.LogLevel)
	specs.TracingEnabled = false

	return newApp(specs, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("studio-service", logger), logger)
}
