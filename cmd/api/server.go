// cmd/api/server.go
// This file contains the serve() method which builds and starts the HTTP
// server, then coordinates a graceful shutdown when an OS signal arrives.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// serve starts the HTTP server and blocks until it stops. A SIGINT or
// SIGTERM triggers a graceful shutdown: the listener closes immediately and
// in-flight requests get 20 seconds to complete before being abandoned.
func (app *applicationDependencies) serve() error {
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.port),
		Handler: app.routes(),
		// Funnel the http.Server's own log output (TLS handshake errors,
		// panics it recovers internally) into our structured logger.
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// shutdownErr carries the result of Shutdown() back to this goroutine.
	shutdownErr := make(chan error)

	go func() {
		// Buffered so signal.Notify never blocks delivering a signal.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		// Wait here until a shutdown signal arrives.
		s := <-quit
		app.logger.Info("shutting down server", "signal", s.String())

		// Give active requests 20 seconds to finish.
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownErr <- apiServer.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "address", apiServer.Addr, "environment", app.config.environment)

	// ListenAndServe always returns a non-nil error. ErrServerClosed is the
	// normal result of calling Shutdown, so only other errors are failures.
	err := apiServer.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Collect the outcome of the graceful shutdown itself.
	err = <-shutdownErr
	if err != nil {
		return err
	}

	app.logger.Info("server stopped", "address", apiServer.Addr)
	return nil
}
