package entities

// BusinessHours gates dispatch to a minute-of-day window on a 24h clock.
// Attempts landing outside [StartMinute, EndMinute) are deferred to the next
// window start without counting as an attempt.
type BusinessHours struct {
	Enabled     bool `json:"enabled"`
	StartMinute int  `json:"start_minute"`
	EndMinute   int  `json:"end_minute"`
}

// ReminderPolicy is the configuration governing which reminders get derived.
//
// Invariants:
//   - offsets are positive, deduplicated, ascending (enforced on update)
//   - MaxRemindersPerInvoice >= 1
//   - changing the policy never retroactively cancels already-sent
//     reminders; it only affects future derivation
type ReminderPolicy struct {
	Enabled                bool          `json:"enabled"`
	BeforeDueOffsets       []int         `json:"before_due_offsets"`
	AfterDueOffsets        []int         `json:"after_due_offsets"`
	MaxRemindersPerInvoice int           `json:"max_reminders_per_invoice"`
	BusinessHours          BusinessHours `json:"business_hours"`
}

// DefaultReminderPolicy is returned when no policy has been stored yet.
func DefaultReminderPolicy() ReminderPolicy {
	return ReminderPolicy{
		Enabled:                true,
		BeforeDueOffsets:       []int{7, 3, 1},
		AfterDueOffsets:        []int{1, 3, 7},
		MaxRemindersPerInvoice: 10,
		BusinessHours:          BusinessHours{Enabled: false, StartMinute: 9 * 60, EndMinute: 18 * 60},
	}
}
