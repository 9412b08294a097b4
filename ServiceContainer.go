package main

import (
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"

	"gridcalc/contracts"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	Logger            *slog.Logger
	WebhookDispatcher contracts.WebhookDispatcher
	SheetRepository   contracts.SheetRepository
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config Config, logWriter io.Writer) (container ServiceContainer, err error) {
	container.Logger = NewLogger(logWriter, config.LogLevel, config.LogFormat)

	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)
	if err != nil {
		return
	}

	serializer := NewCellBinarySerializer()
	canonicalizer := NewCanonicalizer()

	container.WebhookDispatcher = NewWebhookDispatcher(container.Logger)
	container.SheetRepository = NewSheetRepository(
		container.Database, serializer, canonicalizer,
		container.WebhookDispatcher, container.Logger,
		config.DefaultRows, config.DefaultCols,
	)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher, canonicalizer)
	container.Router = SetupRouter(container.ApiController, container.Logger)

	return
}
