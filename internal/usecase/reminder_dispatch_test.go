package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"
	mock_interfaces "invoicer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBackoff(t *testing.T) {
	if Backoff(0) != time.Minute {
		t.Fatalf("expected 1m for 0 attempts, got %s", Backoff(0))
	}
	if Backoff(1) != 2*time.Minute || Backoff(2) != 4*time.Minute || Backoff(3) != 8*time.Minute {
		t.Fatalf("unexpected backoff ladder: %s %s %s", Backoff(1), Backoff(2), Backoff(3))
	}
	for n := 0; n < 10; n++ {
		if Backoff(n+1) <= Backoff(n) {
			t.Fatalf("backoff not strictly increasing at %d", n)
		}
	}
	if Backoff(-5) != Backoff(0) {
		t.Fatalf("negative attempts should clamp to zero")
	}
}

func TestReminderSchedulerUseCase_ProcessDue(t *testing.T) {
	now := time.Date(2024, 10, 3, 14, 0, 0, 0, time.UTC)

	newUC := func(ctrl *gomock.Controller) (*ReminderSchedulerUseCase, *mock_interfaces.MockIReminderLedger, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIPolicyStore, *mock_interfaces.MockINotificationChannel) {
		ledger := mock_interfaces.NewMockIReminderLedger(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		policyStore := mock_interfaces.NewMockIPolicyStore(ctrl)
		channel := mock_interfaces.NewMockINotificationChannel(ctrl)
		uc := NewReminderSchedulerUseCase(ledger, invoiceRepo, policyStore, channel)
		uc.now = fixedClock(now)
		return uc, ledger, invoiceRepo, policyStore, channel
	}

	t.Run("guard against overlapping runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newUC(ctrl)

		uc.processMu.Lock()
		defer uc.processMu.Unlock()

		_, err := uc.ProcessDue(context.Background())
		if !errors.Is(err, ErrProcessingInProgress) {
			t.Fatalf("expected ErrProcessingInProgress, got %v", err)
		}
	})

	t.Run("paid invoice cancels instead of sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, _ := newUC(ctrl)

		policyStore.EXPECT().Get(gomock.Any()).Return(entities.DefaultReminderPolicy(), nil)
		ledger.EXPECT().ListDue(gomock.Any(), now).Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeBeforeDue, Status: entities.ReminderStatusScheduled},
		}, nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.ReminderUpdate) (entities.Reminder, error) {
				if u.Status == nil || *u.Status != entities.ReminderStatusCancelled {
					t.Fatalf("expected cancel update, got %+v", u)
				}
				return entities.Reminder{ID: id, Status: *u.Status}, nil
			},
		)
		// No channel.Send expectation: a paid invoice must never reach the channel.

		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Processed != 1 || report.Cancelled != 1 || report.Sent != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("missing invoice cancels the orphan reminder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, _ := newUC(ctrl)

		policyStore.EXPECT().Get(gomock.Any()).Return(entities.DefaultReminderPolicy(), nil)
		ledger.EXPECT().ListDue(gomock.Any(), now).Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-gone", Status: entities.ReminderStatusScheduled},
		}, nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-gone").Return(entities.Invoice{}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).Return(entities.Reminder{ID: "rem-1", Status: entities.ReminderStatusCancelled}, nil)

		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Cancelled != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("successful send appends history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, channel := newUC(ctrl)

		policyStore.EXPECT().Get(gomock.Any()).Return(entities.DefaultReminderPolicy(), nil)
		ledger.EXPECT().ListDue(gomock.Any(), now).Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeOnDue, Status: entities.ReminderStatusScheduled},
		}, nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, ClientEmail: "c@x.test"}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).Return(entities.Reminder{ID: "rem-1", Status: entities.ReminderStatusPending, Attempts: 1}, nil)
		channel.EXPECT().Send(gomock.Any(), gomock.Any(), entities.ReminderTypeOnDue).Return(interfaces.DeliveryResult{Success: true, MessageID: "msg-9"}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).Return(entities.Reminder{ID: "rem-1", Status: entities.ReminderStatusSent, MessageID: "msg-9"}, nil)
		invoiceRepo.EXPECT().AppendReminderHistory(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, e entities.ReminderHistoryEntry) (entities.Invoice, error) {
				if e.Type != entities.ReminderTypeOnDue || e.MessageID != "msg-9" || e.ID == "" {
					t.Fatalf("unexpected history entry: %+v", e)
				}
				return entities.Invoice{ID: id}, nil
			},
		)

		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Sent != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("failure schedules retry with backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, channel := newUC(ctrl)

		policyStore.EXPECT().Get(gomock.Any()).Return(entities.DefaultReminderPolicy(), nil)
		ledger.EXPECT().ListDue(gomock.Any(), now).Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeOnDue, Status: entities.ReminderStatusScheduled, Attempts: 0},
		}, nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, ClientEmail: "c@x.test"}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).Return(entities.Reminder{ID: "rem-1", Status: entities.ReminderStatusPending, Attempts: 1}, nil)
		channel.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.DeliveryResult{}, errors.New("timeout"))
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.ReminderUpdate) (entities.Reminder, error) {
				if u.Status == nil || *u.Status != entities.ReminderStatusScheduled {
					t.Fatalf("expected retry back to scheduled, got %+v", u)
				}
				wantNext := now.Add(2 * time.Minute) // Backoff(1)
				if u.NextAttemptAt == nil || !u.NextAttemptAt.Equal(wantNext) {
					t.Fatalf("expected next attempt %s, got %v", wantNext, u.NextAttemptAt)
				}
				if u.Error == nil || *u.Error != "timeout" {
					t.Fatalf("expected recorded error, got %+v", u)
				}
				return entities.Reminder{ID: id, Status: *u.Status, Attempts: 1}, nil
			},
		)

		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Retried != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("exhausted retries fail terminally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, channel := newUC(ctrl)

		policyStore.EXPECT().Get(gomock.Any()).Return(entities.DefaultReminderPolicy(), nil)
		ledger.EXPECT().ListDue(gomock.Any(), now).Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeOnDue, Status: entities.ReminderStatusScheduled, Attempts: 2},
		}, nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, ClientEmail: "c@x.test"}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).Return(entities.Reminder{ID: "rem-1", Status: entities.ReminderStatusPending, Attempts: 3}, nil)
		channel.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.DeliveryResult{Error: "rejected"}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.ReminderUpdate) (entities.Reminder, error) {
				if u.Status == nil || *u.Status != entities.ReminderStatusFailed || u.FailedAt == nil {
					t.Fatalf("expected terminal failure, got %+v", u)
				}
				return entities.Reminder{ID: id, Status: *u.Status, Attempts: 3}, nil
			},
		)

		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Failed != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("outside business hours defers without burning an attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, _ := newUC(ctrl)
		// 07:00 UTC, window 09:00-18:00.
		uc.now = fixedClock(time.Date(2024, 10, 3, 7, 0, 0, 0, time.UTC))

		policy := entities.DefaultReminderPolicy()
		policy.BusinessHours = entities.BusinessHours{Enabled: true, StartMinute: 540, EndMinute: 1080}
		policyStore.EXPECT().Get(gomock.Any()).Return(policy, nil)
		ledger.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return([]entities.Reminder{
			{ID: "rem-1", InvoiceID: "inv-1", Status: entities.ReminderStatusScheduled, Attempts: 1},
		}, nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent}, nil)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.ReminderUpdate) (entities.Reminder, error) {
				if u.Attempts != nil || u.Status != nil {
					t.Fatalf("deferral must not touch attempts or status: %+v", u)
				}
				want := time.Date(2024, 10, 3, 9, 0, 0, 0, time.UTC)
				if u.NextAttemptAt == nil || !u.NextAttemptAt.Equal(want) {
					t.Fatalf("expected deferral to %s, got %v", want, u.NextAttemptAt)
				}
				return entities.Reminder{ID: id}, nil
			},
		)

		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Deferred != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("always failing channel ends failed with empty history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, ledger, invoiceRepo, policyStore, channel := newUC(ctrl)

		rem := entities.Reminder{ID: "rem-1", InvoiceID: "inv-1", Type: entities.ReminderTypeOnDue, Status: entities.ReminderStatusScheduled, NextAttemptAt: now}

		policyStore.EXPECT().Get(gomock.Any()).Return(entities.DefaultReminderPolicy(), nil).Times(4)
		ledger.EXPECT().ListDue(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, time.Time) ([]entities.Reminder, error) {
				if rem.Status == entities.ReminderStatusScheduled {
					return []entities.Reminder{rem}, nil
				}
				return nil, nil
			},
		).Times(4)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, ClientEmail: "c@x.test"}, nil).Times(3)
		channel.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.DeliveryResult{Error: "provider down"}, nil).Times(3)
		ledger.EXPECT().UpdateByID(gomock.Any(), "rem-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u interfaces.ReminderUpdate) (entities.Reminder, error) {
				if u.Status != nil {
					rem.Status = *u.Status
				}
				if u.Attempts != nil {
					rem.Attempts = *u.Attempts
				}
				if u.NextAttemptAt != nil {
					rem.NextAttemptAt = *u.NextAttemptAt
				}
				if u.Error != nil {
					rem.Error = *u.Error
				}
				return rem, nil
			},
		).AnyTimes()
		// No AppendReminderHistory expectation: nothing was delivered.

		for i := 0; i < 3; i++ {
			if _, err := uc.ProcessDue(context.Background()); err != nil {
				t.Fatalf("cycle %d: unexpected error: %v", i, err)
			}
		}
		if rem.Status != entities.ReminderStatusFailed || rem.Attempts != 3 {
			t.Fatalf("expected failed after 3 attempts, got %+v", rem)
		}

		// A failed reminder is never picked up again.
		report, err := uc.ProcessDue(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Processed != 0 {
			t.Fatalf("expected empty batch, got %+v", report)
		}
	})
}

func TestNextBusinessWindowStart(t *testing.T) {
	bh := entities.BusinessHours{Enabled: true, StartMinute: 540, EndMinute: 1080}

	t.Run("before window opens", func(t *testing.T) {
		at := time.Date(2024, 10, 3, 7, 30, 0, 0, time.UTC)
		got := nextBusinessWindowStart(at, bh)
		want := time.Date(2024, 10, 3, 9, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("after window closes", func(t *testing.T) {
		at := time.Date(2024, 10, 3, 19, 0, 0, 0, time.UTC)
		got := nextBusinessWindowStart(at, bh)
		want := time.Date(2024, 10, 4, 9, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}
