package routes

import (
	"invoicer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathPolicy   = "/reminder-policy"
	PathEvents   = "/events"
	PathWebhooks = "/webhooks"
)

func addReminderRoutes(rg *gin.RouterGroup, reminderHandler *handlers.ReminderHandler, policyHandler *handlers.PolicyHandler, eventHandler *handlers.EventHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id/reminders", reminderHandler.ListReminders)
		invoices.POST("/:invoice_id/reminders/schedule", reminderHandler.ScheduleReminders)
		invoices.POST("/:invoice_id/reminders/cancel", reminderHandler.CancelReminders)
		invoices.POST("/:invoice_id/reminders/reschedule", reminderHandler.RescheduleReminders)
		invoices.POST("/:invoice_id/reminders/send", reminderHandler.SendManualReminder)
	}

	rg.POST("/reminders/process-due", reminderHandler.ProcessDue)

	policy := rg.Group(PathPolicy)
	{
		policy.GET("", policyHandler.GetPolicy)
		policy.PUT("", policyHandler.UpdatePolicy)
	}

	events := rg.Group(PathEvents)
	{
		events.POST("/invoice", eventHandler.HandleInvoiceEvent)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", eventHandler.HandleMercadoPagoWebhook)
	}
}
