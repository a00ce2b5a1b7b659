package interfaces

import (
	"context"

	"invoicer/internal/domain/entities"
)

// DeliveryResult is the outcome of one delivery attempt. A non-nil error from
// Send means the provider could not be reached at all; a result with
// Success=false means the provider answered and refused. Both are retryable.
type DeliveryResult struct {
	Success   bool
	MessageID string
	Error     string
}

// INotificationChannel abstracts external notice delivery (e.g. a
// transactional email provider).
type INotificationChannel interface {
	Send(ctx context.Context, invoice entities.Invoice, reminderType entities.ReminderType) (DeliveryResult, error)
}
