// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring/prometheus"
	"github.com/canonical/studio-service/internal/tracing"
	"github.com/canonical/studio-service/pkg/auth"
	"github.com/canonical/studio-service/pkg/authentication"
	"github.com/canonical/studio-service/pkg/invitations"
	"github.com/canonical/studio-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env: %s, port: %d, mail driver: %s", specs.Environment, specs.Port, specs.MailDriver)
	defer logger.Sync()

	if specs.ExposeMagicLink && !specs.IsDevelopment() {
		logger.Warnf("EXPOSE_MAGIC_LINK is ignored in %s", specs.Environment)
	}

	monitor := prometheus.NewMonitor("studio-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	a, err := newApp(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	authn := authentication.NewMiddleware(a.codec, a.cookies, a.storage, tracer, monitor, logger)

	router := web.NewRouter(
		a.db,
		specs.CORSAllowedOrigins,
		[]web.APIInterface{
			auth.NewAPI(a.auth, a.cookies, authn.Authenticate(), tracer, logger),
			invitations.NewAPI(a.invitations, a.cookies, tracer, logger),
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
