package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mattjhagen/expert-umbrella/internal/api/metrics"
	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

const defaultCurrency = "usd"

// Metadata keys stamped on payment intents so the webhook reconciler can
// recognise domain purchases.
const (
	MetadataTypeKey       = "type"
	MetadataDomainKey     = "domain"
	MetadataDomainPayment = "domain_purchase"
)

// OrderService creates domain-purchase orders and exposes the order ledger.
type OrderService struct {
	repo    ports.OrderRepository
	gateway ports.PaymentGateway
	logger  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, gateway ports.PaymentGateway, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, gateway: gateway, logger: logger}
}

// CreateDomainPayment creates a payment intent tagged as a domain purchase
// and persists exactly one pending order carrying the intent's identifier.
func (s *OrderService) CreateDomainPayment(ctx context.Context, input ports.DomainPaymentInput) (*ports.DomainPaymentResult, error) {
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, toMinorUnits(input.Price), currency, map[string]string{
		MetadataTypeKey:   MetadataDomainPayment,
		MetadataDomainKey: input.Domain,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("domain", input.Domain).Msg("failed to create payment intent")
		return nil, fmt.Errorf("create domain payment: %w", err)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         domain.NewOrderID(now),
		Domain:     input.Domain,
		Price:      input.Price,
		Currency:   currency,
		PaymentRef: intent.ID,
		Status:     domain.OrderPending,
		CreatedAt:  now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to persist order")
		return nil, fmt.Errorf("create domain payment: %w", err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(currency).Inc()
	s.logger.Info().
		Str("order_id", order.ID).
		Str("domain", input.Domain).
		Str("payment_ref", intent.ID).
		Msg("domain purchase order created")

	return &ports.DomainPaymentResult{
		OrderID:      order.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// ListOrders returns all orders keyed by order id.
func (s *OrderService) ListOrders(ctx context.Context) (map[string]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// toMinorUnits converts a price in major currency units to the processor's
// integer minor units (12.99 → 1299).
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
