package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"
)

var ErrUnknownEvent = errors.New("unknown event")

// Domain events accepted from the invoicing application. Each maps 1:1 to a
// scheduler command.
const (
	EventPaymentRecorded = "invoice.payment_recorded"
	EventStatusChanged   = "invoice.status_changed"
	EventDueDateChanged  = "invoice.due_date_changed"
	EventManualRequest   = "reminder.manual_request"
)

// EventOutcome reports what a translated event did.
type EventOutcome struct {
	Command   string `json:"command"`
	Created   int    `json:"created"`
	Cancelled int    `json:"cancelled"`
}

// IOrchestratorUseCase translates domain events into scheduler commands.
// It is deliberately thin: all reminder semantics live in the scheduler.

type IOrchestratorUseCase interface {
	HandleInvoiceEvent(ctx context.Context, event, invoiceID, from, to string, reminderType entities.ReminderType) (EventOutcome, error)
	// HandlePaymentNotification verifies a provider payment notification and,
	// when approved, marks the invoice paid and cancels its reminders.
	HandlePaymentNotification(ctx context.Context, paymentID int64, fallbackInvoiceID string) (invoiceID string, cancelled int, err error)
}

type OrchestratorUseCase struct {
	scheduler   IReminderSchedulerUseCase
	invoiceRepo interfaces.IInvoiceRepository
	verifier    interfaces.IPaymentVerifier
}

var _ IOrchestratorUseCase = (*OrchestratorUseCase)(nil)

func NewOrchestratorUseCase(
	scheduler IReminderSchedulerUseCase,
	invoiceRepo interfaces.IInvoiceRepository,
	verifier interfaces.IPaymentVerifier,
) *OrchestratorUseCase {
	return &OrchestratorUseCase{scheduler: scheduler, invoiceRepo: invoiceRepo, verifier: verifier}
}

func (u *OrchestratorUseCase) HandleInvoiceEvent(ctx context.Context, event, invoiceID, from, to string, reminderType entities.ReminderType) (EventOutcome, error) {
	event = strings.TrimSpace(event)
	log.Printf("[event][usecase] handle start event=%s invoice_id=%s from=%s to=%s", event, invoiceID, from, to)

	switch event {
	case EventPaymentRecorded:
		n, err := u.scheduler.CancelForInvoice(ctx, invoiceID)
		return EventOutcome{Command: "cancel", Cancelled: n}, err

	case EventStatusChanged:
		if entities.InvoiceStatus(to) == entities.InvoiceStatusPaid {
			n, err := u.scheduler.CancelForInvoice(ctx, invoiceID)
			return EventOutcome{Command: "cancel", Cancelled: n}, err
		}
		created, err := u.scheduler.ScheduleForInvoice(ctx, invoiceID)
		return EventOutcome{Command: "schedule", Created: len(created)}, err

	case EventDueDateChanged:
		created, err := u.scheduler.RescheduleForInvoice(ctx, invoiceID)
		return EventOutcome{Command: "reschedule", Created: len(created)}, err

	case EventManualRequest:
		_, err := u.scheduler.SendManualReminder(ctx, invoiceID, reminderType)
		return EventOutcome{Command: "manual_send", Created: 1}, err

	default:
		return EventOutcome{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
}

func (u *OrchestratorUseCase) HandlePaymentNotification(ctx context.Context, paymentID int64, fallbackInvoiceID string) (string, int, error) {
	invoiceID, approved, err := u.verifier.VerifyPayment(ctx, paymentID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to verify payment %d: %w", paymentID, err)
	}
	if invoiceID == "" {
		invoiceID = strings.TrimSpace(fallbackInvoiceID)
	}
	if !approved || invoiceID == "" {
		log.Printf("[event][usecase] payment notification ignored payment_id=%d approved=%t invoice_id=%q", paymentID, approved, invoiceID)
		return invoiceID, 0, nil
	}

	inv, err := u.invoiceRepo.UpdateStatusByID(ctx, invoiceID, entities.InvoiceStatusPaid)
	if err != nil {
		return invoiceID, 0, fmt.Errorf("failed to mark invoice %s paid: %w", invoiceID, err)
	}
	if inv.ID == "" {
		return invoiceID, 0, ErrInvoiceNotFound
	}

	cancelled, err := u.scheduler.CancelForInvoice(ctx, invoiceID)
	if err != nil {
		return invoiceID, cancelled, err
	}
	log.Printf("[event][usecase] payment reconciled payment_id=%d invoice_id=%s cancelled=%d", paymentID, invoiceID, cancelled)
	return invoiceID, cancelled, nil
}
