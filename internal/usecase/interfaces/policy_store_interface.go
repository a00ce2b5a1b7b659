package interfaces

import (
	"context"

	"invoicer/internal/domain/entities"
)

// IPolicyStore abstracts persistence for the reminder policy singleton.

type IPolicyStore interface {
	// Get returns entities.DefaultReminderPolicy() when nothing is stored.
	Get(ctx context.Context) (entities.ReminderPolicy, error)
	Set(ctx context.Context, policy entities.ReminderPolicy) (entities.ReminderPolicy, error)
}
