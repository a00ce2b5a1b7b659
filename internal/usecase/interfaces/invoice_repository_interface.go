package interfaces

import (
	"context"

	"invoicer/internal/domain/entities"
)

// IInvoiceRepository abstracts the externally-owned invoice store.
//
// The reminder engine reads invoices and writes exactly two things back:
//   - status, when a payment is reconciled through the webhook
//   - reminder_history, appended once per successful delivery

type IInvoiceRepository interface {
	// GetByID returns the zero-value Invoice when the id does not exist.
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	// ListUnpaid returns every invoice whose status is not "paid".
	ListUnpaid(ctx context.Context) ([]entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	AppendReminderHistory(ctx context.Context, id string, entry entities.ReminderHistoryEntry) (entities.Invoice, error)
}
