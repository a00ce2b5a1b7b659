package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicer/internal/adapter/http/handlers/mocks"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEventHandler_HandleInvoiceEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrchestratorUseCase(ctrl)
		h := NewEventHandler(uc)

		r := gin.New()
		r.POST("/v1/events/invoice", h.HandleInvoiceEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/events/invoice", bytes.NewBufferString(`{"event":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrchestratorUseCase(ctrl)
		h := NewEventHandler(uc)

		r := gin.New()
		r.POST("/v1/events/invoice", h.HandleInvoiceEvent)

		uc.EXPECT().HandleInvoiceEvent(gomock.Any(), "invoice.renamed", "inv-1", "", "", entities.ReminderType("")).Return(usecase.EventOutcome{}, usecase.ErrUnknownEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/events/invoice", bytes.NewBufferString(`{"event":"invoice.renamed","invoice_id":"inv-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status change success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrchestratorUseCase(ctrl)
		h := NewEventHandler(uc)

		r := gin.New()
		r.POST("/v1/events/invoice", h.HandleInvoiceEvent)

		uc.EXPECT().HandleInvoiceEvent(gomock.Any(), usecase.EventStatusChanged, "inv-1", "draft", "sent", entities.ReminderType("")).Return(usecase.EventOutcome{Command: "schedule", Created: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/events/invoice", bytes.NewBufferString(`{"event":"invoice.status_changed","invoice_id":"inv-1","from":"draft","to":"sent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["command"] != "schedule" || body["created"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEventHandler_HandleMercadoPagoWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-payment notification acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrchestratorUseCase(ctrl)
		h := NewEventHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"subscription","data":{"id":"1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrchestratorUseCase(ctrl)
		h := NewEventHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"not-a-number"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approved payment reconciled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrchestratorUseCase(ctrl)
		h := NewEventHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.HandleMercadoPagoWebhook)

		uc.EXPECT().HandlePaymentNotification(gomock.Any(), int64(12345), "inv-1").Return("inv-1", 2, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"12345"},"external_reference":"inv-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["invoice_id"] != "inv-1" || body["cancelled"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
