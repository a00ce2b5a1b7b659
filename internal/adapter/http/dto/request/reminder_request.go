package request

// ManualReminderRequest is the payload for the manual send route. The type
// selects which template goes out; it does not have to match where the
// invoice currently sits relative to its due date.

type ManualReminderRequest struct {
	Type string `json:"type" binding:"required"`
}

// InvoiceEventRequest is the payload for the invoice event route. `from` and
// `to` are only meaningful for status-change events; `type` only for manual
// reminder requests.
type InvoiceEventRequest struct {
	Event     string `json:"event" binding:"required"`
	InvoiceID string `json:"invoice_id" binding:"required"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Type      string `json:"type,omitempty"`
}
