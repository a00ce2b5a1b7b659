package request

// MercadoPagoWebhookRequest mirrors the notification body Mercado Pago posts
// for payment events. `external_reference` is a fallback for mock/local runs
// where the payment cannot be fetched back from the API.

type MercadoPagoWebhookRequest struct {
	Action            string                 `json:"action,omitempty"`
	Type              string                 `json:"type,omitempty"`
	Data              MercadoPagoWebhookData `json:"data"`
	ExternalReference string                 `json:"external_reference,omitempty"`
}

type MercadoPagoWebhookData struct {
	ID string `json:"id"`
}
