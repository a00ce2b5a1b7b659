package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoicer/internal/adapter/http/handlers/mocks"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReminderHandler_ScheduleReminders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/schedule", h.ScheduleReminders)

		uc.EXPECT().ScheduleForInvoice(gomock.Any(), "inv-1").Return(nil, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/schedule", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/schedule", h.ScheduleReminders)

		uc.EXPECT().ScheduleForInvoice(gomock.Any(), "inv-1").Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeOnDue, Status: entities.ReminderStatusScheduled},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/schedule", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["created"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReminderHandler_CancelReminders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/cancel", h.CancelReminders)

		uc.EXPECT().CancelForInvoice(gomock.Any(), "inv-1").Return(3, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["cancelled"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReminderHandler_SendManualReminder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/send", h.SendManualReminder)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/send", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/send", h.SendManualReminder)

		uc.EXPECT().SendManualReminder(gomock.Any(), "inv-1", entities.ReminderTypeOnDue).Return(entities.Reminder{}, usecase.ErrInvoiceAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/send", bytes.NewBufferString(`{"type":"on_due"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delivery failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/send", h.SendManualReminder)

		uc.EXPECT().SendManualReminder(gomock.Any(), "inv-1", entities.ReminderTypeAfterDue).Return(entities.Reminder{}, usecase.ErrDeliveryFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/send", bytes.NewBufferString(`{"type":"after_due"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/reminders/send", h.SendManualReminder)

		sentAt := time.Now().UTC()
		uc.EXPECT().SendManualReminder(gomock.Any(), "inv-1", entities.ReminderTypeOnDue).Return(entities.Reminder{
			ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeOnDue, Status: entities.ReminderStatusSent, SentAt: &sentAt, MessageID: "msg-1", Manual: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/reminders/send", bytes.NewBufferString(`{"type":"on_due"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "sent" || body["message_id"] != "msg-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReminderHandler_ProcessDue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("concurrent run conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/reminders/process-due", h.ProcessDue)

		uc.EXPECT().ProcessDue(gomock.Any()).Return(usecase.ProcessReport{}, usecase.ErrProcessingInProgress)

		req := httptest.NewRequest(http.MethodPost, "/v1/reminders/process-due", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.POST("/v1/reminders/process-due", h.ProcessDue)

		uc.EXPECT().ProcessDue(gomock.Any()).Return(usecase.ProcessReport{Processed: 2, Sent: 1, Retried: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reminders/process-due", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["processed"] != float64(2) || body["sent"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReminderHandler_ListReminders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReminderSchedulerUseCase(ctrl)
		h := NewReminderHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:invoice_id/reminders", h.ListReminders)

		uc.EXPECT().ListForInvoice(gomock.Any(), "inv-1").Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Status: entities.ReminderStatusSent},
			{ID: "rem-2", InvoiceID: "inv-1", Status: entities.ReminderStatusCancelled},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/reminders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
