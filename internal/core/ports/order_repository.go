package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
)

// OrderRepository defines persistence operations for domain-purchase orders.
// Status-changing methods are atomic and filtered by the expected current
// status, so an order can never be observed moving backwards.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// FindByPaymentRef retrieves the order created for the given payment
	// intent identifier (indexed lookup).
	FindByPaymentRef(ctx context.Context, ref string) (*domain.Order, error)
	// MarkPaid advances the pending order matching ref to paid and records
	// the payment timestamp. Returns domain.ErrOrderNotFound when no order
	// with that ref is still pending — including on webhook replays.
	MarkPaid(ctx context.Context, ref string, paidAt time.Time) (*domain.Order, error)
	// MarkRegistered advances a paid order to registered and stores the raw
	// registrar response.
	MarkRegistered(ctx context.Context, id string, response json.RawMessage) error
	// MarkRegistrationFailed advances a paid order to registration_failed
	// and stores the failure message.
	MarkRegistrationFailed(ctx context.Context, id string, errMsg string) error
	// List returns all orders keyed by order id.
	List(ctx context.Context) (map[string]*domain.Order, error)
}
