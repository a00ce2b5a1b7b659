package interfaces

import "context"

// IPaymentVerifier abstracts payment-provider webhook verification
// (e.g. Mercado Pago). Given the provider's payment id it returns the
// invoice id carried in the payment's external reference and whether the
// payment is approved.
type IPaymentVerifier interface {
	VerifyPayment(ctx context.Context, paymentID int64) (invoiceID string, approved bool, err error)
}
