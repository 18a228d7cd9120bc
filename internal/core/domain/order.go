package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OrderStatus represents the lifecycle state of a domain-purchase order.
type OrderStatus string

const (
	OrderPending            OrderStatus = "pending"
	OrderPaid               OrderStatus = "paid"
	OrderRegistered         OrderStatus = "registered"
	OrderRegistrationFailed OrderStatus = "registration_failed"
)

// validTransitions defines the allowed state machine transitions.
// An order only moves forward; no code path moves it back.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid},
	OrderPaid:    {OrderRegistered, OrderRegistrationFailed},
}

var ErrInvalidTransition = errors.New("invalid order status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidSignature = errors.New("invalid webhook signature")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order tracks a domain purchase from payment-intent creation through
// registrar fulfilment.
type Order struct {
	ID                string          `json:"id" bson:"_id"`
	Domain            string          `json:"domain" bson:"domain"`
	Price             float64         `json:"price" bson:"price"`
	Currency          string          `json:"currency" bson:"currency"`
	PaymentRef        string          `json:"payment_ref" bson:"payment_ref"`
	Status            OrderStatus     `json:"status" bson:"status"`
	RegistrarResponse json.RawMessage `json:"registrar_response,omitempty" bson:"registrar_response,omitempty"`
	Error             string          `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
	PaidAt            *time.Time      `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}

// NewOrderID derives an order identifier from a creation timestamp,
// formatted as order_<unix-milliseconds>.
func NewOrderID(t time.Time) string {
	return fmt.Sprintf("order_%d", t.UnixMilli())
}
