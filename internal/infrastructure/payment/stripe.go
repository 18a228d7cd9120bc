// Package payment adapts the Stripe SDK to the PaymentGateway port. Every
// operation is a direct delegation; Stripe errors surface to the caller with
// the processor's own message.
package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// StripeGateway implements ports.PaymentGateway against the Stripe API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway with its own API client bound to the
// given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreatePaymentIntent creates a one-time payment intent and returns its id
// and client secret. Amount is in minor currency units.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*ports.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return &ports.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// CreateSubscriptionPlan creates a monthly recurring price for the plan and
// a setup intent for collecting a payment method.
func (g *StripeGateway) CreateSubscriptionPlan(ctx context.Context, amount int64, currency, plan string) (*ports.SubscriptionPlan, error) {
	priceParams := &stripe.PriceParams{
		UnitAmount: stripe.Int64(amount),
		Currency:   stripe.String(currency),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(plan),
		},
	}
	priceParams.Context = ctx

	price, err := g.api.Prices.New(priceParams)
	if err != nil {
		return nil, fmt.Errorf("stripe: create price: %w", err)
	}

	setupParams := &stripe.SetupIntentParams{
		AutomaticPaymentMethods: &stripe.SetupIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	setupParams.Context = ctx

	si, err := g.api.SetupIntents.New(setupParams)
	if err != nil {
		return nil, fmt.Errorf("stripe: create setup intent: %w", err)
	}

	return &ports.SubscriptionPlan{PriceID: price.ID, ClientSecret: si.ClientSecret}, nil
}

// CreateCustomer creates a Stripe customer tagged with the local user id.
func (g *StripeGateway) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)

	cust, err := g.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create customer: %w", err)
	}
	return cust.ID, nil
}

// CreateSubscription subscribes the customer to the price, attaching the
// payment method first when one is supplied. The raw subscription object is
// returned for pass-through to the client.
func (g *StripeGateway) CreateSubscription(ctx context.Context, customerID, priceID, paymentMethodID string) (json.RawMessage, error) {
	if paymentMethodID != "" {
		attachParams := &stripe.PaymentMethodAttachParams{
			Customer: stripe.String(customerID),
		}
		attachParams.Context = ctx
		if _, err := g.api.PaymentMethods.Attach(paymentMethodID, attachParams); err != nil {
			return nil, fmt.Errorf("stripe: attach payment method: %w", err)
		}
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
	}
	subParams.Context = ctx
	if paymentMethodID != "" {
		subParams.DefaultPaymentMethod = stripe.String(paymentMethodID)
	}

	sub, err := g.api.Subscriptions.New(subParams)
	if err != nil {
		return nil, fmt.Errorf("stripe: create subscription: %w", err)
	}

	raw, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("stripe: encode subscription: %w", err)
	}
	return raw, nil
}
