package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "invoicer/internal/adapter/http/dto/request"
	response "invoicer/internal/adapter/http/dto/response"
	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase"
	"invoicer/pkg"

	"github.com/gin-gonic/gin"
)

// EventHandler receives invoice lifecycle events and payment webhooks and
// hands them to the orchestrator.

type EventHandler struct {
	usecase usecase.IOrchestratorUseCase
}

func NewEventHandler(uc usecase.IOrchestratorUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

// HandleInvoiceEvent translates one invoice event into a scheduler command.
func (h *EventHandler) HandleInvoiceEvent(c *gin.Context) {
	var payload request.InvoiceEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.HandleInvoiceEvent(
		c.Request.Context(),
		payload.Event,
		payload.InvoiceID,
		payload.From,
		payload.To,
		entities.ReminderType(payload.Type),
	)
	if err != nil {
		log.Printf("[event][handler] invoice event failed event=%s invoice_id=%s err=%v", payload.Event, payload.InvoiceID, err)
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEventOutcome(outcome))
}

// HandleMercadoPagoWebhook reconciles a payment notification: verify against
// the provider, mark the invoice paid, cancel its reminders. Always answers
// 200 for notifications about anything other than payments so the provider
// stops retrying.
func (h *EventHandler) HandleMercadoPagoWebhook(c *gin.Context) {
	var payload request.MercadoPagoWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.Type != "" && payload.Type != "payment" {
		log.Printf("[event][handler] webhook ignored type=%s", payload.Type)
		c.JSON(http.StatusOK, response.WebhookResponse{})
		return
	}

	paymentID, err := strconv.ParseInt(payload.Data.ID, 10, 64)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[event][handler] webhook start payment_id=%d", paymentID)

	invoiceID, cancelled, err := h.usecase.HandlePaymentNotification(c.Request.Context(), paymentID, payload.ExternalReference)
	if err != nil {
		log.Printf("[event][handler] webhook failed payment_id=%d err=%v", paymentID, err)
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[event][handler] webhook success payment_id=%d invoice_id=%s cancelled=%d", paymentID, invoiceID, cancelled)

	c.JSON(http.StatusOK, response.WebhookResponse{InvoiceID: invoiceID, Cancelled: cancelled})
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownEvent), errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidReminderType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return pkg.NewDomainErrorSimple("DELIVERY_FAILED", "Reminder delivery failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
