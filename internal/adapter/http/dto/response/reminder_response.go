package response

import (
	"time"

	"invoicer/internal/domain/entities"
)

type ReminderResponse struct {
	ID                string     `json:"id"`
	InvoiceID         string     `json:"invoice_id"`
	Type              string     `json:"type"`
	OffsetDays        *int       `json:"offset_days,omitempty"`
	Status            string     `json:"status"`
	Attempts          int        `json:"attempts"`
	NextAttemptAt     time.Time  `json:"next_attempt_at"`
	LastAttemptAt     *time.Time `json:"last_attempt_at,omitempty"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
	FailedAt          *time.Time `json:"failed_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	MessageID         string     `json:"message_id,omitempty"`
	Error             string     `json:"error,omitempty"`
	RescheduledReason string     `json:"rescheduled_reason,omitempty"`
	Manual            bool       `json:"manual,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromReminder(r entities.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:                r.ID,
		InvoiceID:         r.InvoiceID,
		Type:              string(r.Type),
		OffsetDays:        r.OffsetDays,
		Status:            string(r.Status),
		Attempts:          r.Attempts,
		NextAttemptAt:     r.NextAttemptAt,
		LastAttemptAt:     r.LastAttemptAt,
		SentAt:            r.SentAt,
		FailedAt:          r.FailedAt,
		CancelledAt:       r.CancelledAt,
		MessageID:         r.MessageID,
		Error:             r.Error,
		RescheduledReason: r.RescheduledReason,
		Manual:            r.Manual,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromReminders(reminders []entities.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, FromReminder(r))
	}
	return out
}

// ScheduleResponse reports a schedule/reschedule command outcome.
type ScheduleResponse struct {
	Created   int                `json:"created"`
	Reminders []ReminderResponse `json:"reminders"`
}

// CancelResponse reports how many reminders a cancel touched.
type CancelResponse struct {
	Cancelled int `json:"cancelled"`
}
