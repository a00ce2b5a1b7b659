package response

import "invoicer/internal/usecase"

type EventOutcomeResponse struct {
	Command   string `json:"command"`
	Created   int    `json:"created"`
	Cancelled int    `json:"cancelled"`
}

func FromEventOutcome(o usecase.EventOutcome) EventOutcomeResponse {
	return EventOutcomeResponse{
		Command:   o.Command,
		Created:   o.Created,
		Cancelled: o.Cancelled,
	}
}

type WebhookResponse struct {
	InvoiceID string `json:"invoice_id,omitempty"`
	Cancelled int    `json:"cancelled"`
}
