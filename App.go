package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const ExitCodeMainError = 1

const ShutdownTimeout = 5 * time.Second

// RunApp wires the service container and serves HTTP until ctx is cancelled.
// Shutdown drains in-flight requests for up to ShutdownTimeout.
func RunApp(ctx context.Context, config Config, logWriter io.Writer) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config, logWriter)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.WebhookDispatcher.Close()

	server := &http.Server{
		Addr:    config.Listen,
		Handler: serviceContainer.Router,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		serviceContainer.Logger.Info("listening", "addr", config.Listen)

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		serviceContainer.Logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
