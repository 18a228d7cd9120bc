package ports

import (
	"context"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
)

// DomainPaymentInput carries the data needed to start a domain purchase.
type DomainPaymentInput struct {
	Domain   string
	Price    float64 // major currency units, e.g. 12.99
	Currency string
}

// DomainPaymentResult is returned after the payment intent and its order
// record have been created.
type DomainPaymentResult struct {
	OrderID      string
	ClientSecret string
}

// OrderService defines use-case operations for domain-purchase orders.
type OrderService interface {
	// CreateDomainPayment creates a payment intent tagged as a domain
	// purchase and persists exactly one pending order referencing it.
	CreateDomainPayment(ctx context.Context, input DomainPaymentInput) (*DomainPaymentResult, error)
	// ListOrders returns the full order ledger keyed by order id.
	ListOrders(ctx context.Context) (map[string]*domain.Order, error)
}
