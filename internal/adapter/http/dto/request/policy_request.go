package request

// PolicyUpdateRequest carries the full reminder policy; partial updates are
// not supported, the frontend always submits the whole settings form.

type PolicyUpdateRequest struct {
	Enabled                bool                 `json:"enabled"`
	BeforeDueOffsets       []int                `json:"before_due_offsets"`
	AfterDueOffsets        []int                `json:"after_due_offsets"`
	MaxRemindersPerInvoice int                  `json:"max_reminders_per_invoice"`
	BusinessHours          BusinessHoursRequest `json:"business_hours"`
}

type BusinessHoursRequest struct {
	Enabled     bool `json:"enabled"`
	StartMinute int  `json:"start_minute"`
	EndMinute   int  `json:"end_minute"`
}
