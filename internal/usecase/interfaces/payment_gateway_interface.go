package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges an approved BOM through an external provider.
// The raw provider response is kept with the payment for reconciliation.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
