package response

import "invoicer/internal/domain/entities"

type PolicyResponse struct {
	Enabled                bool                  `json:"enabled"`
	BeforeDueOffsets       []int                 `json:"before_due_offsets"`
	AfterDueOffsets        []int                 `json:"after_due_offsets"`
	MaxRemindersPerInvoice int                   `json:"max_reminders_per_invoice"`
	BusinessHours          BusinessHoursResponse `json:"business_hours"`
}

type BusinessHoursResponse struct {
	Enabled     bool `json:"enabled"`
	StartMinute int  `json:"start_minute"`
	EndMinute   int  `json:"end_minute"`
}

func FromPolicy(p entities.ReminderPolicy) PolicyResponse {
	return PolicyResponse{
		Enabled:                p.Enabled,
		BeforeDueOffsets:       p.BeforeDueOffsets,
		AfterDueOffsets:        p.AfterDueOffsets,
		MaxRemindersPerInvoice: p.MaxRemindersPerInvoice,
		BusinessHours: BusinessHoursResponse{
			Enabled:     p.BusinessHours.Enabled,
			StartMinute: p.BusinessHours.StartMinute,
			EndMinute:   p.BusinessHours.EndMinute,
		},
	}
}
