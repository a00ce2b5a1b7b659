package interfaces

import (
	"context"
	"time"

	"invoicer/internal/domain/entities"
)

// ReminderUpdate is a partial update applied by UpdateByID; nil fields are
// left untouched. Pointer-to-pointer fields are not needed because terminal
// timestamps are only ever set, never cleared.
type ReminderUpdate struct {
	Status            *entities.ReminderStatus
	Attempts          *int
	NextAttemptAt     *time.Time
	LastAttemptAt     *time.Time
	SentAt            *time.Time
	FailedAt          *time.Time
	CancelledAt       *time.Time
	MessageID         *string
	Error             *string
	RescheduledReason *string
}

// IReminderLedger abstracts DynamoDB persistence for the reminder ledger.
//
// The ledger is append-only at the record level: reminders are created once
// and then mutated by partial updates, never deleted.

type IReminderLedger interface {
	Append(ctx context.Context, draft entities.ReminderDraft) (entities.Reminder, error)
	List(ctx context.Context) ([]entities.Reminder, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Reminder, error)
	// ListDue returns reminders in status "scheduled" with
	// next_attempt_at <= now.
	ListDue(ctx context.Context, now time.Time) ([]entities.Reminder, error)
	// UpdateByID returns the zero-value Reminder when the id does not exist.
	UpdateByID(ctx context.Context, id string, update ReminderUpdate) (entities.Reminder, error)
}
