package entities

import "time"

// ReminderType distinguishes where a reminder sits relative to the due date.

type ReminderType string

const (
	ReminderTypeBeforeDue ReminderType = "before_due"
	ReminderTypeOnDue     ReminderType = "on_due"
	ReminderTypeAfterDue  ReminderType = "after_due"
)

func (t ReminderType) Valid() bool {
	switch t {
	case ReminderTypeBeforeDue, ReminderTypeOnDue, ReminderTypeAfterDue:
		return true
	}
	return false
}

// ReminderStatus is the dispatch state machine:
//
//	scheduled -> pending -> {sent | scheduled (retry) | failed}
//	scheduled -> cancelled (explicit, or owning invoice paid/deleted)
//
// sent, failed and cancelled are terminal. Reminders are never deleted, only
// transitioned, so the ledger doubles as the audit trail.

type ReminderStatus string

const (
	ReminderStatusScheduled ReminderStatus = "scheduled"
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusSent      ReminderStatus = "sent"
	ReminderStatusFailed    ReminderStatus = "failed"
	ReminderStatusCancelled ReminderStatus = "cancelled"
)

func (s ReminderStatus) Terminal() bool {
	switch s {
	case ReminderStatusSent, ReminderStatusFailed, ReminderStatusCancelled:
		return true
	}
	return false
}

// Reminder is one scheduled or completed payment-notice attempt, tied to one
// invoice and one (type, offset) slot.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//   - GSI2 (status-index): status, next_attempt_at (range) — due scans
type Reminder struct {
	ID                string         `json:"id"`
	InvoiceID         string         `json:"invoice_id"`
	Type              ReminderType   `json:"type"`
	OffsetDays        *int           `json:"offset_days,omitempty"`
	Status            ReminderStatus `json:"status"`
	Attempts          int            `json:"attempts"`
	NextAttemptAt     time.Time      `json:"next_attempt_at"`
	LastAttemptAt     *time.Time     `json:"last_attempt_at,omitempty"`
	SentAt            *time.Time     `json:"sent_at,omitempty"`
	FailedAt          *time.Time     `json:"failed_at,omitempty"`
	CancelledAt       *time.Time     `json:"cancelled_at,omitempty"`
	MessageID         string         `json:"message_id,omitempty"`
	Error             string         `json:"error,omitempty"`
	RescheduledReason string         `json:"rescheduled_reason,omitempty"`
	Manual            bool           `json:"manual,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ReminderKey is the de-duplication key for derived reminders: derivation
// must never hold two live (non-cancelled) reminders with the same key.
// OffsetDays is zero for on_due.
type ReminderKey struct {
	InvoiceID  string
	Type       ReminderType
	OffsetDays int
}

func (r Reminder) Key() ReminderKey {
	k := ReminderKey{InvoiceID: r.InvoiceID, Type: r.Type}
	if r.OffsetDays != nil {
		k.OffsetDays = *r.OffsetDays
	}
	return k
}

// ReminderDraft is the ledger append input; the ledger assigns ID and
// CreatedAt/UpdatedAt on insert.
type ReminderDraft struct {
	InvoiceID     string
	Type          ReminderType
	OffsetDays    *int
	Status        ReminderStatus
	Attempts      int
	NextAttemptAt time.Time
	Manual        bool
}
