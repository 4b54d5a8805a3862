package request

import "encoding/json"

// BillingPaymentCreateRequest is the optional envelope of a payment request.
//
// `mp_payload` is forwarded as raw JSON since the Mercado Pago schema varies
// by payment method. A bare payment body is accepted as well.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
