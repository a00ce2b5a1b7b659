package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidReminderType  = errors.New("invalid reminder type")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid   = errors.New("invoice already paid")
	ErrDeliveryFailed       = errors.New("reminder delivery failed")
	ErrProcessingInProgress = errors.New("due-reminder processing already in progress")
)

// ProcessReport summarizes one ProcessDue batch. Counters are per reminder;
// a single reminder contributes to exactly one of them.
type ProcessReport struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Retried   int `json:"retried"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
	Deferred  int `json:"deferred"`
	Skipped   int `json:"skipped"`
}

// IReminderSchedulerUseCase is the command surface consumed by the HTTP
// layer and the cron runner. Every command maps 1:1 to an orchestrator
// event (payment recorded, status changed, due date changed, manual request,
// periodic tick).

type IReminderSchedulerUseCase interface {
	// ScheduleForInvoice derives and materializes the reminders the current
	// policy implies for one invoice. Idempotent: reminders that already
	// exist (live, same composite key) are never duplicated.
	ScheduleForInvoice(ctx context.Context, invoiceID string) ([]entities.Reminder, error)
	// ScheduleForUnpaidInvoices runs derivation across all unpaid invoices
	// and returns the number of reminders created.
	ScheduleForUnpaidInvoices(ctx context.Context) (int, error)
	// CancelForInvoice transitions every non-terminal reminder of the
	// invoice to cancelled and returns how many it touched. Idempotent.
	CancelForInvoice(ctx context.Context, invoiceID string) (int, error)
	// RescheduleForInvoice is cancel-then-schedule; used on due-date change.
	RescheduleForInvoice(ctx context.Context, invoiceID string) ([]entities.Reminder, error)
	// SendManualReminder creates a reminder outside derivation and drives it
	// through dispatch once, synchronously, bypassing business hours.
	SendManualReminder(ctx context.Context, invoiceID string, reminderType entities.ReminderType) (entities.Reminder, error)
	// ProcessDue dispatches every scheduled reminder whose next_attempt_at
	// has elapsed. Guarded against overlapping invocations.
	ProcessDue(ctx context.Context) (ProcessReport, error)
	ListForInvoice(ctx context.Context, invoiceID string) ([]entities.Reminder, error)
}

type ReminderSchedulerUseCase struct {
	ledger      interfaces.IReminderLedger
	invoiceRepo interfaces.IInvoiceRepository
	policyStore interfaces.IPolicyStore
	channel     interfaces.INotificationChannel

	// single-flight guard for ProcessDue; overlapping runs over the same
	// ledger could double-send.
	processMu sync.Mutex

	now func() time.Time
}

var _ IReminderSchedulerUseCase = (*ReminderSchedulerUseCase)(nil)

func NewReminderSchedulerUseCase(
	ledger interfaces.IReminderLedger,
	invoiceRepo interfaces.IInvoiceRepository,
	policyStore interfaces.IPolicyStore,
	channel interfaces.INotificationChannel,
) *ReminderSchedulerUseCase {
	return &ReminderSchedulerUseCase{
		ledger:      ledger,
		invoiceRepo: invoiceRepo,
		policyStore: policyStore,
		channel:     channel,
		now:         time.Now,
	}
}

func (u *ReminderSchedulerUseCase) ScheduleForInvoice(ctx context.Context, invoiceID string) ([]entities.Reminder, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
	}
	if inv.ID == "" {
		return nil, ErrInvoiceNotFound
	}

	policy, err := u.policyStore.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder policy: %w", err)
	}

	created, err := u.deriveForInvoice(ctx, inv, policy)
	if err != nil {
		return nil, err
	}
	log.Printf("[reminder][usecase] schedule done invoice_id=%s created=%d", invoiceID, len(created))
	return created, nil
}

func (u *ReminderSchedulerUseCase) ScheduleForUnpaidInvoices(ctx context.Context) (int, error) {
	policy, err := u.policyStore.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load reminder policy: %w", err)
	}
	if !policy.Enabled {
		log.Printf("[reminder][usecase] derivation sweep skipped, policy disabled")
		return 0, nil
	}

	invoices, err := u.invoiceRepo.ListUnpaid(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list unpaid invoices: %w", err)
	}

	total := 0
	for _, inv := range invoices {
		created, err := u.deriveForInvoice(ctx, inv, policy)
		if err != nil {
			// One broken invoice must not abort the sweep.
			log.Printf("[reminder][usecase] derivation failed invoice_id=%s err=%v", inv.ID, err)
			continue
		}
		total += len(created)
	}
	log.Printf("[reminder][usecase] derivation sweep done invoices=%d created=%d", len(invoices), total)
	return total, nil
}

// deriveForInvoice computes the reminder keys the policy implies for the
// invoice and appends ledger entries for the ones that do not exist yet.
// A key counts as occupied while any non-cancelled reminder holds it, so
// re-running derivation with unchanged inputs creates nothing.
func (u *ReminderSchedulerUseCase) deriveForInvoice(ctx context.Context, inv entities.Invoice, policy entities.ReminderPolicy) ([]entities.Reminder, error) {
	if !policy.Enabled || inv.Status == entities.InvoiceStatusPaid || inv.DueDate == nil {
		return nil, nil
	}

	existing, err := u.ledger.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders for invoice %s: %w", inv.ID, err)
	}

	live := 0
	occupied := make(map[entities.ReminderKey]bool, len(existing))
	for _, r := range existing {
		if r.Status == entities.ReminderStatusCancelled {
			continue
		}
		live++
		occupied[r.Key()] = true
	}

	maxPerInvoice := policy.MaxRemindersPerInvoice
	if maxPerInvoice < 1 {
		maxPerInvoice = 1
	}
	if live >= maxPerInvoice {
		log.Printf("[reminder][usecase] derivation skipped invoice_id=%s live=%d max=%d", inv.ID, live, maxPerInvoice)
		return nil, nil
	}

	now := u.now()
	due := startOfDayUTC(*inv.DueDate)

	var drafts []entities.ReminderDraft
	for _, off := range normalizeOffsets(policy.BeforeDueOffsets) {
		target := due.AddDate(0, 0, -off)
		if !target.After(now) {
			continue
		}
		off := off
		drafts = append(drafts, entities.ReminderDraft{
			InvoiceID:     inv.ID,
			Type:          entities.ReminderTypeBeforeDue,
			OffsetDays:    &off,
			Status:        entities.ReminderStatusScheduled,
			NextAttemptAt: target,
		})
	}
	// on_due is only creatable while the due date has not passed; once it
	// has, the after-due reminders take over. Preserved boundary behavior.
	if !due.Before(now) {
		drafts = append(drafts, entities.ReminderDraft{
			InvoiceID:     inv.ID,
			Type:          entities.ReminderTypeOnDue,
			Status:        entities.ReminderStatusScheduled,
			NextAttemptAt: due,
		})
	}
	if due.Before(now) {
		// After-due reminders exist only for overdue invoices. Their targets
		// may already be in the past; dispatch picks those up on the next
		// ProcessDue.
		for _, off := range normalizeOffsets(policy.AfterDueOffsets) {
			off := off
			drafts = append(drafts, entities.ReminderDraft{
				InvoiceID:     inv.ID,
				Type:          entities.ReminderTypeAfterDue,
				OffsetDays:    &off,
				Status:        entities.ReminderStatusScheduled,
				NextAttemptAt: due.AddDate(0, 0, off),
			})
		}
	}

	var created []entities.Reminder
	for _, d := range drafts {
		key := entities.ReminderKey{InvoiceID: d.InvoiceID, Type: d.Type}
		if d.OffsetDays != nil {
			key.OffsetDays = *d.OffsetDays
		}
		if occupied[key] {
			continue
		}
		if live+len(created) >= maxPerInvoice {
			break
		}
		r, err := u.ledger.Append(ctx, d)
		if err != nil {
			return created, fmt.Errorf("failed to append reminder for invoice %s: %w", d.InvoiceID, err)
		}
		occupied[key] = true
		created = append(created, r)
	}
	return created, nil
}

func (u *ReminderSchedulerUseCase) CancelForInvoice(ctx context.Context, invoiceID string) (int, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return 0, ErrInvalidInvoiceID
	}

	reminders, err := u.ledger.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return 0, fmt.Errorf("failed to list reminders for invoice %s: %w", invoiceID, err)
	}

	cancelled := 0
	now := u.now()
	for _, r := range reminders {
		if r.Status.Terminal() {
			continue
		}
		if _, err := u.ledger.UpdateByID(ctx, r.ID, cancelUpdate(now, "cancelled for invoice")); err != nil {
			log.Printf("[reminder][usecase] cancel failed reminder_id=%s err=%v", r.ID, err)
			continue
		}
		cancelled++
	}
	log.Printf("[reminder][usecase] cancel done invoice_id=%s cancelled=%d", invoiceID, cancelled)
	return cancelled, nil
}

func (u *ReminderSchedulerUseCase) RescheduleForInvoice(ctx context.Context, invoiceID string) ([]entities.Reminder, error) {
	if _, err := u.CancelForInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}
	return u.ScheduleForInvoice(ctx, invoiceID)
}

func (u *ReminderSchedulerUseCase) SendManualReminder(ctx context.Context, invoiceID string, reminderType entities.ReminderType) (entities.Reminder, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Reminder{}, ErrInvalidInvoiceID
	}
	if !reminderType.Valid() {
		return entities.Reminder{}, ErrInvalidReminderType
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Reminder{}, fmt.Errorf("failed to load invoice %s: %w", invoiceID, err)
	}
	if inv.ID == "" {
		return entities.Reminder{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Reminder{}, ErrInvoiceAlreadyPaid
	}

	now := u.now()
	r, err := u.ledger.Append(ctx, entities.ReminderDraft{
		InvoiceID:     invoiceID,
		Type:          reminderType,
		Status:        entities.ReminderStatusScheduled,
		NextAttemptAt: now,
		Manual:        true,
	})
	if err != nil {
		return entities.Reminder{}, fmt.Errorf("failed to append manual reminder: %w", err)
	}
	log.Printf("[reminder][usecase] manual dispatch start invoice_id=%s reminder_id=%s type=%s", invoiceID, r.ID, reminderType)

	// Manual sends bypass business-hours gating; everything else follows
	// the regular dispatch rules, including the paid short-circuit above.
	updated, sendErr := u.attemptDelivery(ctx, r, inv, now)
	if sendErr != nil {
		return updated, fmt.Errorf("%w: %s", ErrDeliveryFailed, updated.Error)
	}
	return updated, nil
}

func (u *ReminderSchedulerUseCase) ListForInvoice(ctx context.Context, invoiceID string) ([]entities.Reminder, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.ledger.ListByInvoiceID(ctx, invoiceID)
}

func cancelUpdate(now time.Time, reason string) interfaces.ReminderUpdate {
	status := entities.ReminderStatusCancelled
	return interfaces.ReminderUpdate{
		Status:      &status,
		CancelledAt: &now,
		Error:       &reason,
	}
}

// normalizeOffsets drops non-positive values and duplicates, ascending.
func normalizeOffsets(offsets []int) []int {
	seen := make(map[int]bool, len(offsets))
	out := make([]int, 0, len(offsets))
	for _, v := range offsets {
		if v <= 0 || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// startOfDayUTC normalizes due-date arithmetic so "7 days before" always
// lands on the same time-of-day regardless of when derivation runs.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
