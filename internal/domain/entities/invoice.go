package entities

import "time"

// InvoiceStatus represents the invoice lifecycle.
//
// Domain notes:
//   - Invoice CRUD is owned by the invoicing frontend/service; the reminder
//     engine only reads invoices and writes a small subset of fields
//     (status on payment reconciliation, reminder_history on delivery).
//   - Once an invoice is paid no reminder may ever reach "sent" for it.

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// ReminderHistoryEntry is one line of the append-only delivery audit trail
// kept on the invoice. Entries are written only by the reminder engine, on
// successful delivery, exactly once per (type, offset) key.
type ReminderHistoryEntry struct {
	ID         string       `json:"id"`
	Type       ReminderType `json:"type"`
	OffsetDays *int         `json:"offset_days,omitempty"`
	SentAt     time.Time    `json:"sent_at"`
	MessageID  string       `json:"message_id,omitempty"`
}

// Invoice is the billing document reminders are derived from.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type Invoice struct {
	ID              string                 `json:"id"`
	ClientID        string                 `json:"client_id"`
	ClientEmail     string                 `json:"client_email"`
	Total           float64                `json:"total"`
	DueDate         *time.Time             `json:"due_date,omitempty"`
	Status          InvoiceStatus          `json:"status"`
	ReminderHistory []ReminderHistoryEntry `json:"reminder_history,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}
