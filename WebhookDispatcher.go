package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"gridcalc/contracts"
)

const WebhookWorkersCount = 5

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.CellValue
}

// WebhookDispatcher posts changed cells to subscribed URLs. Subscriptions
// live in memory; delivery happens on a small worker pool and is not retried.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
	mutex    sync.RWMutex
	logger   *slog.Logger
}

func NewWebhookDispatcher(logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
		logger:   logger,
	}
}

func (dispatcher *WebhookDispatcher) SetWebhookUrl(canonicalSheetId string, canonicalCellId string, webhookUrl string) {
	dispatcher.mutex.Lock()
	defer dispatcher.mutex.Unlock()

	if _, ok := dispatcher.webhooks[canonicalSheetId]; !ok {
		dispatcher.webhooks[canonicalSheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(dispatcher.webhooks[canonicalSheetId], canonicalCellId)
	} else {
		dispatcher.webhooks[canonicalSheetId][canonicalCellId] = webhookUrl
	}
}

func (dispatcher *WebhookDispatcher) GetWebhookUrl(canonicalSheetId string, canonicalCellId string) string {
	dispatcher.mutex.RLock()
	defer dispatcher.mutex.RUnlock()

	if _, ok := dispatcher.webhooks[canonicalSheetId]; !ok {
		return ""
	}

	return dispatcher.webhooks[canonicalSheetId][canonicalCellId]
}

func (dispatcher *WebhookDispatcher) Notify(canonicalSheetId string, cells []*contracts.CellValue) {
	dispatcher.mutex.RLock()
	_, subscribed := dispatcher.webhooks[canonicalSheetId]
	dispatcher.mutex.RUnlock()

	if !subscribed {
		return
	}

	go dispatcher.addToQueue(canonicalSheetId, cells)
}

func (dispatcher *WebhookDispatcher) addToQueue(canonicalSheetId string, cells []*contracts.CellValue) {
	for _, cell := range cells {
		if webhook := dispatcher.GetWebhookUrl(canonicalSheetId, cell.CellId); webhook != "" {
			dispatcher.queue <- WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			}
		}
	}
}

func (dispatcher *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go dispatcher.runWebhookSenderWorker()
	}
}

func (dispatcher *WebhookDispatcher) Close() {
	close(dispatcher.queue)
}

func (dispatcher *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for command := range dispatcher.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			dispatcher.logger.Error("webhook send failed", "url", command.Webhook, "error", err)
		} else {
			_ = response.Body.Close()
			if response.StatusCode >= 300 {
				dispatcher.logger.Warn("unexpected webhook response", "url", command.Webhook, "status", response.Status)
			}
		}
	}
}
