package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := DefaultConfig()
	config.DatabaseFilepath = filepath.Join(t.TempDir(), "sheets.db")

	serviceContainer, err := BuildServiceContainer(config, io.Discard)

	assert.NoError(t, err)

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

	// check logger
	assert.NotNil(t, serviceContainer.Logger)

	// check webhook dispatcher
	assert.NotNil(t, serviceContainer.WebhookDispatcher)
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)

	// check sheet repository
	assert.NotNil(t, serviceContainer.SheetRepository)
	assert.IsType(t, &SheetRepository{}, serviceContainer.SheetRepository)

	sheetRepository := serviceContainer.SheetRepository.(*SheetRepository)
	assert.Equal(t, serviceContainer.Database, sheetRepository.db)
	assert.Equal(t, serviceContainer.WebhookDispatcher, sheetRepository.webhookDispatcher)
	assert.Equal(t, config.DefaultRows, sheetRepository.defaultRows)
	assert.Equal(t, config.DefaultCols, sheetRepository.defaultCols)

	assert.NotNil(t, sheetRepository.serializer)
	assert.IsType(t, &CellBinarySerializer{}, sheetRepository.serializer)

	assert.NotNil(t, sheetRepository.canonicalizer)
	assert.IsType(t, &Canonicalizer{}, sheetRepository.canonicalizer)

	// check api controller
	assert.NotNil(t, serviceContainer.ApiController)
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.SheetRepository, apiController.SheetRepository)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)
	assert.Equal(t, sheetRepository.canonicalizer, apiController.Canonicalizer)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	routes := serviceContainer.Router.Routes()
	assert.NotNil(t, routes)
	// 9 api routes + health check
	assert.GreaterOrEqual(t, len(routes), 10)

	assert.NoError(t, serviceContainer.Database.Close())
}

func TestBuildServiceContainer_BadDatabasePath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := DefaultConfig()
	config.DatabaseFilepath = filepath.Join(t.TempDir(), "missing", "sheets.db")

	_, err := BuildServiceContainer(config, io.Discard)

	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
