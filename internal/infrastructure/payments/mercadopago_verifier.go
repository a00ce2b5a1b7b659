package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"invoicer/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoVerifierNotConfigured = errors.New("mercado pago verifier not configured")

// MercadoPagoVerifier resolves webhook payment notifications against the
// Mercado Pago API. The invoice id travels in the payment's
// external_reference, set by the invoicing frontend at checkout time.
type MercadoPagoVerifier struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentVerifier = (*MercadoPagoVerifier)(nil)

func NewMercadoPagoVerifier(accessToken string) (*MercadoPagoVerifier, error) {
	if isPaymentVerifierMockEnabled() {
		log.Printf("[payment][verifier] mock mode enabled")
		return &MercadoPagoVerifier{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][verifier] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][verifier] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][verifier] Mercado Pago client initialized")

	return &MercadoPagoVerifier{client: payment.NewClient(cfg)}, nil
}

func (v *MercadoPagoVerifier) VerifyPayment(ctx context.Context, paymentID int64) (string, bool, error) {
	if v != nil && v.mockMode {
		// Mock mode trusts the webhook body: approved, no external reference,
		// so the caller falls back to the invoice id from the notification.
		log.Printf("[payment][verifier] mock verify payment_id=%d", paymentID)
		return "", true, nil
	}

	if v == nil || v.client == nil {
		log.Printf("[payment][verifier] verifier not configured")
		return "", false, ErrMercadoPagoVerifierNotConfigured
	}

	resp, err := v.client.Get(ctx, int(paymentID))
	if err != nil {
		log.Printf("[payment][verifier] sdk get failed payment_id=%d err=%v", paymentID, err)
		return "", false, err
	}

	approved := resp.Status == "approved"
	log.Printf("[payment][verifier] verify success payment_id=%d status=%s external_reference=%s", paymentID, resp.Status, resp.ExternalReference)
	return resp.ExternalReference, approved, nil
}

func isPaymentVerifierMockEnabled() bool {
	for _, key := range []string{"PAYMENT_VERIFIER_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
