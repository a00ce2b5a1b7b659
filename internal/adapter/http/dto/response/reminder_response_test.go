package response

import (
	"testing"
	"time"

	"invoicer/internal/domain/entities"
)

func TestFromReminder(t *testing.T) {
	offset := 3
	sentAt := time.Date(2024, 10, 7, 9, 15, 0, 0, time.UTC)
	r := entities.Reminder{
		ID:            "rem-1",
		InvoiceID:     "inv-1",
		Type:          entities.ReminderTypeBeforeDue,
		OffsetDays:    &offset,
		Status:        entities.ReminderStatusSent,
		Attempts:      1,
		NextAttemptAt: time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC),
		SentAt:        &sentAt,
		MessageID:     "msg-1",
	}

	resp := FromReminder(r)
	if resp.ID != "rem-1" || resp.InvoiceID != "inv-1" || resp.Type != "before_due" || resp.Status != "sent" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.OffsetDays == nil || *resp.OffsetDays != 3 {
		t.Fatalf("expected offset 3, got %v", resp.OffsetDays)
	}
	if resp.SentAt == nil || !resp.SentAt.Equal(sentAt) || resp.MessageID != "msg-1" {
		t.Fatalf("expected delivery fields, got %+v", resp)
	}
}

func TestFromReminders_EmptyIsNotNil(t *testing.T) {
	got := FromReminders(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
