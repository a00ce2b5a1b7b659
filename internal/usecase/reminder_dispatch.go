package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// maxRetries caps real delivery attempts per reminder. Business-hours
// deferrals do not count against it.
const maxRetries = 3

// Backoff returns the delay before the next attempt after n failed attempts:
// 2^n minutes. Kept as a pure function so it is independently testable.
func Backoff(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > 20 {
		attempts = 20
	}
	return time.Duration(1<<uint(attempts)) * time.Minute
}

func (u *ReminderSchedulerUseCase) ProcessDue(ctx context.Context) (ProcessReport, error) {
	if !u.processMu.TryLock() {
		return ProcessReport{}, ErrProcessingInProgress
	}
	defer u.processMu.Unlock()

	now := u.now()
	policy, err := u.policyStore.Get(ctx)
	if err != nil {
		return ProcessReport{}, fmt.Errorf("failed to load reminder policy: %w", err)
	}

	due, err := u.ledger.ListDue(ctx, now)
	if err != nil {
		return ProcessReport{}, fmt.Errorf("failed to scan due reminders: %w", err)
	}
	log.Printf("[reminder][usecase] process-due start due=%d", len(due))

	var report ProcessReport
	for _, r := range due {
		report.Processed++
		// Failures are isolated per reminder: dispatchOne records the error
		// on the record itself and the batch keeps going.
		u.dispatchOne(ctx, r, policy, &report)
	}
	log.Printf("[reminder][usecase] process-due done processed=%d sent=%d retried=%d failed=%d cancelled=%d deferred=%d skipped=%d",
		report.Processed, report.Sent, report.Retried, report.Failed, report.Cancelled, report.Deferred, report.Skipped)
	return report, nil
}

func (u *ReminderSchedulerUseCase) dispatchOne(ctx context.Context, r entities.Reminder, policy entities.ReminderPolicy, report *ProcessReport) {
	now := u.now()

	inv, err := u.invoiceRepo.GetByID(ctx, r.InvoiceID)
	if err != nil {
		// Transient store failure: leave the reminder scheduled for the next
		// poll, just record what happened.
		msg := fmt.Sprintf("invoice lookup failed: %v", err)
		log.Printf("[reminder][usecase] dispatch skipped reminder_id=%s err=%v", r.ID, err)
		if _, uerr := u.ledger.UpdateByID(ctx, r.ID, interfaces.ReminderUpdate{Error: &msg}); uerr != nil {
			log.Printf("[reminder][usecase] dispatch skip-mark failed reminder_id=%s err=%v", r.ID, uerr)
		}
		report.Skipped++
		return
	}
	if inv.ID == "" {
		if _, err := u.ledger.UpdateByID(ctx, r.ID, cancelUpdate(now, "invoice not found")); err != nil {
			log.Printf("[reminder][usecase] dispatch cancel failed reminder_id=%s err=%v", r.ID, err)
			report.Skipped++
			return
		}
		report.Cancelled++
		return
	}
	if inv.Status == entities.InvoiceStatusPaid {
		if _, err := u.ledger.UpdateByID(ctx, r.ID, cancelUpdate(now, "invoice paid")); err != nil {
			log.Printf("[reminder][usecase] dispatch cancel failed reminder_id=%s err=%v", r.ID, err)
			report.Skipped++
			return
		}
		report.Cancelled++
		return
	}

	if policy.BusinessHours.Enabled && !withinBusinessHours(now, policy.BusinessHours) {
		// Deferral, not an attempt: attempts stays untouched.
		next := nextBusinessWindowStart(now, policy.BusinessHours)
		reason := "outside business hours"
		if _, err := u.ledger.UpdateByID(ctx, r.ID, interfaces.ReminderUpdate{
			NextAttemptAt:     &next,
			RescheduledReason: &reason,
		}); err != nil {
			log.Printf("[reminder][usecase] dispatch defer failed reminder_id=%s err=%v", r.ID, err)
			report.Skipped++
			return
		}
		log.Printf("[reminder][usecase] dispatch deferred reminder_id=%s next_attempt_at=%s", r.ID, next.Format(time.RFC3339))
		report.Deferred++
		return
	}

	updated, err := u.attemptDelivery(ctx, r, inv, now)
	switch {
	case err == nil:
		report.Sent++
	case updated.Status == entities.ReminderStatusFailed:
		report.Failed++
	default:
		report.Retried++
	}
}

// attemptDelivery drives one real attempt: scheduled -> pending -> outcome.
// Returns the reminder as persisted after the attempt; err is non-nil for
// any non-sent outcome.
func (u *ReminderSchedulerUseCase) attemptDelivery(ctx context.Context, r entities.Reminder, inv entities.Invoice, now time.Time) (entities.Reminder, error) {
	pending := entities.ReminderStatusPending
	attempts := r.Attempts + 1
	marked, err := u.ledger.UpdateByID(ctx, r.ID, interfaces.ReminderUpdate{
		Status:        &pending,
		Attempts:      &attempts,
		LastAttemptAt: &now,
	})
	if err != nil {
		return r, fmt.Errorf("failed to mark reminder %s pending: %w", r.ID, err)
	}
	if marked.ID == "" {
		return r, fmt.Errorf("reminder %s disappeared before dispatch", r.ID)
	}

	result, sendErr := u.channel.Send(ctx, inv, r.Type)
	if sendErr == nil && result.Success {
		sent := entities.ReminderStatusSent
		sentAt := u.now()
		noErr := ""
		updated, err := u.ledger.UpdateByID(ctx, r.ID, interfaces.ReminderUpdate{
			Status:    &sent,
			SentAt:    &sentAt,
			MessageID: &result.MessageID,
			Error:     &noErr,
		})
		if err != nil {
			// The notice went out; the audit entry must not be dropped even
			// if the status write raced with something else.
			log.Printf("[reminder][usecase] sent-state write failed reminder_id=%s err=%v", r.ID, err)
			updated = marked
		}
		entry := entities.ReminderHistoryEntry{
			ID:         uuid.NewString(),
			Type:       r.Type,
			OffsetDays: r.OffsetDays,
			SentAt:     sentAt,
			MessageID:  result.MessageID,
		}
		if _, err := u.invoiceRepo.AppendReminderHistory(ctx, inv.ID, entry); err != nil {
			log.Printf("[reminder][usecase] history append failed invoice_id=%s reminder_id=%s err=%v", inv.ID, r.ID, err)
		}
		log.Printf("[reminder][usecase] dispatch sent reminder_id=%s invoice_id=%s message_id=%s attempts=%d", r.ID, inv.ID, result.MessageID, attempts)
		return updated, nil
	}

	errMsg := result.Error
	if sendErr != nil {
		errMsg = sendErr.Error()
	}
	if errMsg == "" {
		errMsg = "delivery rejected by provider"
	}

	if attempts < maxRetries {
		scheduled := entities.ReminderStatusScheduled
		next := now.Add(Backoff(attempts))
		updated, err := u.ledger.UpdateByID(ctx, r.ID, interfaces.ReminderUpdate{
			Status:        &scheduled,
			NextAttemptAt: &next,
			Error:         &errMsg,
		})
		if err != nil {
			log.Printf("[reminder][usecase] retry-state write failed reminder_id=%s err=%v", r.ID, err)
			updated = marked
		}
		log.Printf("[reminder][usecase] dispatch retry scheduled reminder_id=%s attempts=%d next_attempt_at=%s err=%s", r.ID, attempts, next.Format(time.RFC3339), errMsg)
		return updated, fmt.Errorf("delivery attempt %d failed: %s", attempts, errMsg)
	}

	failed := entities.ReminderStatusFailed
	failedAt := u.now()
	updated, err := u.ledger.UpdateByID(ctx, r.ID, interfaces.ReminderUpdate{
		Status:   &failed,
		FailedAt: &failedAt,
		Error:    &errMsg,
	})
	if err != nil {
		log.Printf("[reminder][usecase] failed-state write failed reminder_id=%s err=%v", r.ID, err)
		updated = marked
	}
	log.Printf("[reminder][usecase] dispatch failed terminally reminder_id=%s attempts=%d err=%s", r.ID, attempts, errMsg)
	return updated, fmt.Errorf("delivery failed after %d attempts: %s", attempts, errMsg)
}

func withinBusinessHours(t time.Time, bh entities.BusinessHours) bool {
	m := t.Hour()*60 + t.Minute()
	return m >= bh.StartMinute && m < bh.EndMinute
}

// nextBusinessWindowStart returns today's window start when the window has
// not opened yet, otherwise the start of tomorrow's window.
func nextBusinessWindowStart(t time.Time, bh entities.BusinessHours) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	m := t.Hour()*60 + t.Minute()
	if m < bh.StartMinute {
		return day.Add(time.Duration(bh.StartMinute) * time.Minute)
	}
	return day.AddDate(0, 0, 1).Add(time.Duration(bh.StartMinute) * time.Minute)
}
