package handlers

import (
	"errors"
	"log"
	"net/http"

	request "invoicer/internal/adapter/http/dto/request"
	response "invoicer/internal/adapter/http/dto/response"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"
	"invoicer/pkg"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles HTTP requests for invoice reminders.

type ReminderHandler struct {
	usecase usecase.IReminderSchedulerUseCase
}

func NewReminderHandler(uc usecase.IReminderSchedulerUseCase) *ReminderHandler {
	return &ReminderHandler{usecase: uc}
}

// ScheduleReminders derives reminders for one invoice under the current policy.
func (h *ReminderHandler) ScheduleReminders(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[reminder][handler] schedule start invoice_id=%s", invoiceID)

	created, err := h.usecase.ScheduleForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[reminder][handler] schedule failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reminder][handler] schedule success invoice_id=%s created=%d", invoiceID, len(created))

	c.JSON(http.StatusOK, response.ScheduleResponse{Created: len(created), Reminders: response.FromReminders(created)})
}

// CancelReminders cancels every pending reminder of an invoice.
func (h *ReminderHandler) CancelReminders(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[reminder][handler] cancel start invoice_id=%s", invoiceID)

	cancelled, err := h.usecase.CancelForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[reminder][handler] cancel failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CancelResponse{Cancelled: cancelled})
}

// RescheduleReminders cancels and re-derives reminders; used after a due-date change.
func (h *ReminderHandler) RescheduleReminders(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[reminder][handler] reschedule start invoice_id=%s", invoiceID)

	created, err := h.usecase.RescheduleForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[reminder][handler] reschedule failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ScheduleResponse{Created: len(created), Reminders: response.FromReminders(created)})
}

// SendManualReminder dispatches one reminder synchronously, outside the schedule.
func (h *ReminderHandler) SendManualReminder(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	var payload request.ManualReminderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reminder][handler] manual send start invoice_id=%s type=%s", invoiceID, payload.Type)

	sent, err := h.usecase.SendManualReminder(c.Request.Context(), invoiceID, entities.ReminderType(payload.Type))
	if err != nil {
		log.Printf("[reminder][handler] manual send failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reminder][handler] manual send success invoice_id=%s reminder_id=%s message_id=%s", invoiceID, sent.ID, sent.MessageID)

	c.JSON(http.StatusOK, response.FromReminder(sent))
}

// ListReminders returns every reminder of an invoice, terminal ones included.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	reminders, err := h.usecase.ListForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[reminder][handler] list failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReminders(reminders))
}

// ProcessDue runs one dispatch batch over everything currently due.
func (h *ReminderHandler) ProcessDue(c *gin.Context) {
	report, err := h.usecase.ProcessDue(c.Request.Context())
	if err != nil {
		log.Printf("[reminder][handler] process-due failed err=%v", err)
		appErr := mapReminderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func mapReminderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidReminderType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrProcessingInProgress):
		return pkg.NewDomainErrorSimple("PROCESSING_IN_PROGRESS", "Due-reminder processing already running", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return pkg.NewDomainErrorSimple("DELIVERY_FAILED", "Reminder delivery failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
