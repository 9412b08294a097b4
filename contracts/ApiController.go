package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	GetCellDependenciesAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
	ExportValuesAction(c *gin.Context)
	ImportValuesAction(c *gin.Context)
	UndoAction(c *gin.Context)
	RedoAction(c *gin.Context)
}
