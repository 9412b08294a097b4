package main

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gridcalc/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	Canonicalizer     contracts.Canonicalizer
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

func NewApiController(
	sheetRepository contracts.SheetRepository,
	webhookDispatcher contracts.WebhookDispatcher,
	canonicalizer contracts.Canonicalizer,
) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
		Canonicalizer:     canonicalizer,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.CellValue

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRepository.SetCell(params.SheetId, params.CellId, request.Value)
	}

	if err != nil {
		// an invalid edit echoes the submitted value so the client can
		// show what was rejected
		c.JSON(http.StatusUnprocessableEntity, gin.H{"value": request.Value, "error": err.Error()})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.CellValue

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if err != nil {
		c.JSON(lookupErrorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.CellList

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCellList(params.SheetId)
	}

	if err != nil {
		c.JSON(lookupErrorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetCellDependenciesAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.CellDependencies

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCellDependencies(params.SheetId, params.CellId)
	}

	if err != nil {
		c.JSON(lookupErrorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// subscriptions are keyed the way Notify reports changed cells
	api.WebhookDispatcher.SetWebhookUrl(
		strings.ToLower(params.SheetId),
		api.Canonicalizer.CanonicalizeCellId(params.CellId),
		request.WebhookUrl,
	)

	c.JSON(http.StatusCreated, gin.H{"webhook_url": request.WebhookUrl})
}

func (api *ApiController) ExportValuesAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var buffer bytes.Buffer

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetRepository.ExportValues(params.SheetId, &buffer)
	}

	if err != nil {
		c.JSON(lookupErrorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.Data(http.StatusOK, "text/csv", buffer.Bytes())
	}
}

func (api *ApiController) ImportValuesAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetRepository.ImportValues(params.SheetId, c.Request.Body)
	}

	if err != nil {
		c.JSON(importErrorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusCreated)
	}
}

func (api *ApiController) UndoAction(c *gin.Context) {
	api.stepHistory(c, api.SheetRepository.Undo, contracts.NothingToUndoError)
}

func (api *ApiController) RedoAction(c *gin.Context) {
	api.stepHistory(c, api.SheetRepository.Redo, contracts.NothingToRedoError)
}

func (api *ApiController) stepHistory(c *gin.Context, step func(sheetId string) error, emptyHistoryError error) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = step(params.SheetId)
	}

	if errors.Is(err, emptyHistoryError) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(lookupErrorStatus(err), gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusOK)
	}
}

// importErrorStatus: everything an import can reject (bad CSV, bad
// dimensions, unparseable fields) traces back to the posted payload.
func importErrorStatus(err error) int {
	if errors.Is(err, contracts.SheetNotFoundError) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

func lookupErrorStatus(err error) int {
	switch {
	case errors.Is(err, contracts.SheetNotFoundError), errors.Is(err, contracts.CellNotFoundError):
		return http.StatusNotFound
	case errors.Is(err, contracts.InvalidCellIdError):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
