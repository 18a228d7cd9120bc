package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// stubOrderRepo is an in-memory OrderRepository mirroring the store
// semantics: atomic status-filtered updates, lookup by payment reference.
type stubOrderRepo struct {
	orders   map[string]*domain.Order
	failWith error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if r.failWith != nil {
		return r.failWith
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindByPaymentRef(_ context.Context, ref string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.PaymentRef == ref {
			clone := *o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) MarkPaid(_ context.Context, ref string, paidAt time.Time) (*domain.Order, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, o := range r.orders {
		if o.PaymentRef == ref && o.Status == domain.OrderPending {
			o.Status = domain.OrderPaid
			o.PaidAt = &paidAt
			clone := *o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) MarkRegistered(_ context.Context, id string, response json.RawMessage) error {
	o, ok := r.orders[id]
	if !ok || o.Status != domain.OrderPaid {
		return domain.ErrOrderNotFound
	}
	o.Status = domain.OrderRegistered
	o.RegistrarResponse = response
	return nil
}

func (r *stubOrderRepo) MarkRegistrationFailed(_ context.Context, id string, errMsg string) error {
	o, ok := r.orders[id]
	if !ok || o.Status != domain.OrderPaid {
		return domain.ErrOrderNotFound
	}
	o.Status = domain.OrderRegistrationFailed
	o.Error = errMsg
	return nil
}

func (r *stubOrderRepo) List(_ context.Context) (map[string]*domain.Order, error) {
	out := make(map[string]*domain.Order, len(r.orders))
	for id, o := range r.orders {
		clone := *o
		out[id] = &clone
	}
	return out, nil
}

// stubGateway is a PaymentGateway returning canned intents.
type stubGateway struct {
	intentID     string
	clientSecret string
	metadata     map[string]string
	amount       int64
	currency     string
	failWith     error
}

func (g *stubGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*ports.PaymentIntent, error) {
	if g.failWith != nil {
		return nil, g.failWith
	}
	g.amount = amount
	g.currency = currency
	g.metadata = metadata
	return &ports.PaymentIntent{ID: g.intentID, ClientSecret: g.clientSecret}, nil
}

func (g *stubGateway) CreateSubscriptionPlan(_ context.Context, _ int64, _, _ string) (*ports.SubscriptionPlan, error) {
	return nil, errors.New("not implemented")
}

func (g *stubGateway) CreateCustomer(_ context.Context, _, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func (g *stubGateway) CreateSubscription(_ context.Context, _, _, _ string) (json.RawMessage, error) {
	return nil, errors.New("not implemented")
}

var orderIDPattern = regexp.MustCompile(`^order_\d+$`)

func TestOrderService_CreateDomainPayment(t *testing.T) {
	repo := newStubOrderRepo()
	gateway := &stubGateway{intentID: "pi_test_123", clientSecret: "pi_test_123_secret"}
	svc := NewOrderService(repo, gateway, zerolog.Nop())

	result, err := svc.CreateDomainPayment(context.Background(), ports.DomainPaymentInput{
		Domain: "example.com",
		Price:  12.99,
	})
	if err != nil {
		t.Fatalf("CreateDomainPayment returned error: %v", err)
	}
	if result.ClientSecret != "pi_test_123_secret" {
		t.Fatalf("unexpected client secret: %s", result.ClientSecret)
	}
	if !orderIDPattern.MatchString(result.OrderID) {
		t.Fatalf("order id %q does not match order_<timestamp>", result.OrderID)
	}

	// Exactly one pending order, referencing the created intent.
	orders, _ := repo.List(context.Background())
	if len(orders) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(orders))
	}
	order := orders[result.OrderID]
	if order == nil {
		t.Fatalf("order %s not persisted", result.OrderID)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("new order status = %s, want pending", order.Status)
	}
	if order.PaymentRef != "pi_test_123" {
		t.Fatalf("order payment ref = %s, want pi_test_123", order.PaymentRef)
	}
	if order.Domain != "example.com" || order.Price != 12.99 {
		t.Fatalf("order fields not recorded: %+v", order)
	}

	// Gateway receives minor units and the reconciliation metadata.
	if gateway.amount != 1299 {
		t.Fatalf("gateway amount = %d, want 1299", gateway.amount)
	}
	if gateway.currency != "usd" {
		t.Fatalf("default currency = %s, want usd", gateway.currency)
	}
	if gateway.metadata[MetadataTypeKey] != MetadataDomainPayment {
		t.Fatalf("intent metadata missing domain purchase marker: %v", gateway.metadata)
	}
	if gateway.metadata[MetadataDomainKey] != "example.com" {
		t.Fatalf("intent metadata missing domain: %v", gateway.metadata)
	}
}

func TestOrderService_CreateDomainPayment_GatewayError(t *testing.T) {
	repo := newStubOrderRepo()
	gateway := &stubGateway{failWith: errors.New("processor unavailable")}
	svc := NewOrderService(repo, gateway, zerolog.Nop())

	_, err := svc.CreateDomainPayment(context.Background(), ports.DomainPaymentInput{
		Domain: "example.com",
		Price:  9.99,
	})
	if err == nil {
		t.Fatalf("expected error from gateway")
	}

	orders, _ := repo.List(context.Background())
	if len(orders) != 0 {
		t.Fatalf("no order must be persisted when the intent fails, got %d", len(orders))
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := newStubOrderRepo()
	gateway := &stubGateway{intentID: "pi_1", clientSecret: "cs_1"}
	svc := NewOrderService(repo, gateway, zerolog.Nop())

	created, err := svc.CreateDomainPayment(context.Background(), ports.DomainPaymentInput{
		Domain:   "example.org",
		Price:    20,
		Currency: "eur",
	})
	if err != nil {
		t.Fatalf("CreateDomainPayment failed: %v", err)
	}

	orders, err := svc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if _, ok := orders[created.OrderID]; !ok {
		t.Fatalf("ledger missing order %s", created.OrderID)
	}
	if orders[created.OrderID].Currency != "eur" {
		t.Fatalf("currency = %s, want eur", orders[created.OrderID].Currency)
	}
}
