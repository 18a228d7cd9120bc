package ports

import (
	"context"
	"encoding/json"
)

// PaymentIntent is the subset of the processor's intent object the API needs.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// SubscriptionPlan bundles the recurring price and the setup intent created
// for a subscription checkout flow.
type SubscriptionPlan struct {
	PriceID      string
	ClientSecret string
}

// PaymentGateway wraps the external payment processor. All operations are
// direct delegations to the processor's SDK; no retries, no idempotency keys,
// no amount validation.
type PaymentGateway interface {
	// CreatePaymentIntent creates a one-time payment intent. Amount is in
	// the currency's minor units.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
	// CreateSubscriptionPlan creates a monthly recurring price for the named
	// plan together with a setup intent for collecting a payment method.
	CreateSubscriptionPlan(ctx context.Context, amount int64, currency, plan string) (*SubscriptionPlan, error)
	// CreateCustomer creates a processor customer tagged with the local user id.
	CreateCustomer(ctx context.Context, email, userID string) (string, error)
	// CreateSubscription subscribes the customer to the price. When
	// paymentMethodID is non-empty it is attached and set as the default
	// first. The processor's subscription object is returned verbatim.
	CreateSubscription(ctx context.Context, customerID, priceID, paymentMethodID string) (json.RawMessage, error)
}
