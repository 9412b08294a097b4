package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gridcalc/contracts"
)

const ApiVersion = "v1"

const RequestIdHeader = "X-Request-Id"

// RequestIdMiddleware tags every request with an id, echoed in the response
// header and attached to the access log line.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Set("request_id", requestId)
		c.Header(RequestIdHeader, requestId)
		c.Next()
	}
}

// AccessLogMiddleware writes one slog line per handled request.
func AccessLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// SetupRouter builds the route tree. Sheet-scoped and cell-scoped operations
// live on disjoint static segments ("cells", "values", "undo", "redo"), so no
// parameter ever competes with a static sibling.
func SetupRouter(controller contracts.ApiController, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestIdMiddleware(), AccessLogMiddleware(logger))

	sheets := router.Group("/api/" + ApiVersion + "/sheets")
	sheets.GET("/:sheet_id", controller.GetSheetAction)
	sheets.POST("/:sheet_id/cells/:cell_id", controller.SetCellAction)
	sheets.GET("/:sheet_id/cells/:cell_id", controller.GetCellAction)
	sheets.GET("/:sheet_id/cells/:cell_id/dependencies", controller.GetCellDependenciesAction)
	sheets.POST("/:sheet_id/cells/:cell_id/subscribe", controller.SubscribeAction)
	sheets.GET("/:sheet_id/values", controller.ExportValuesAction)
	sheets.POST("/:sheet_id/values", controller.ImportValuesAction)
	sheets.POST("/:sheet_id/undo", controller.UndoAction)
	sheets.POST("/:sheet_id/redo", controller.RedoAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
