package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"
)

var (
	ErrInvalidBusinessHours = errors.New("invalid business hours window")
	ErrInvalidMaxReminders  = errors.New("max reminders per invoice must be >= 1")
)

// IPolicyUseCase exposes reminder-policy settings operations.
//
// A policy update normalizes offsets (positive, deduplicated, ascending) and
// never touches reminders that already exist; it only shapes future
// derivation.

type IPolicyUseCase interface {
	Get(ctx context.Context) (entities.ReminderPolicy, error)
	Update(ctx context.Context, policy entities.ReminderPolicy) (entities.ReminderPolicy, error)
}

type PolicyUseCase struct {
	store interfaces.IPolicyStore
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(store interfaces.IPolicyStore) *PolicyUseCase {
	return &PolicyUseCase{store: store}
}

func (u *PolicyUseCase) Get(ctx context.Context) (entities.ReminderPolicy, error) {
	return u.store.Get(ctx)
}

func (u *PolicyUseCase) Update(ctx context.Context, policy entities.ReminderPolicy) (entities.ReminderPolicy, error) {
	if policy.MaxRemindersPerInvoice < 1 {
		return entities.ReminderPolicy{}, ErrInvalidMaxReminders
	}
	if policy.BusinessHours.Enabled {
		bh := policy.BusinessHours
		if bh.StartMinute < 0 || bh.EndMinute > 24*60 || bh.StartMinute >= bh.EndMinute {
			return entities.ReminderPolicy{}, ErrInvalidBusinessHours
		}
	}

	policy.BeforeDueOffsets = normalizeOffsets(policy.BeforeDueOffsets)
	policy.AfterDueOffsets = normalizeOffsets(policy.AfterDueOffsets)
	// Empty offset sets are legal: they simply mean nothing gets derived.

	saved, err := u.store.Set(ctx, policy)
	if err != nil {
		return entities.ReminderPolicy{}, fmt.Errorf("failed to store reminder policy: %w", err)
	}
	log.Printf("[policy][usecase] update success enabled=%t before=%v after=%v max=%d business_hours=%t",
		saved.Enabled, saved.BeforeDueOffsets, saved.AfterDueOffsets, saved.MaxRemindersPerInvoice, saved.BusinessHours.Enabled)
	return saved, nil
}
