package domain

import (
	"strings"
	"testing"
	"time"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderPaid, true},
		{OrderPaid, OrderRegistered, true},
		{OrderPaid, OrderRegistrationFailed, true},
		{OrderPending, OrderRegistered, false},
		{OrderPending, OrderRegistrationFailed, false},
		{OrderPaid, OrderPending, false},
		{OrderRegistered, OrderPaid, false},
		{OrderRegistered, OrderPending, false},
		{OrderRegistrationFailed, OrderPaid, false},
		{OrderRegistrationFailed, OrderRegistered, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderRegistered, OrderRegistrationFailed} {
		for _, next := range []OrderStatus{OrderPending, OrderPaid, OrderRegistered, OrderRegistrationFailed} {
			if terminal.CanTransitionTo(next) {
				t.Errorf("terminal state %s must not transition to %s", terminal, next)
			}
		}
	}
}

func TestNewOrderID(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	id := NewOrderID(ts)
	if id != "order_1700000000123" {
		t.Fatalf("unexpected order id: %s", id)
	}
	if !strings.HasPrefix(id, "order_") {
		t.Fatalf("order id must carry the order_ prefix: %s", id)
	}
}

func TestNewSiteID(t *testing.T) {
	ts := time.UnixMilli(1700000000456)
	if id := NewSiteID(ts); id != "site_1700000000456" {
		t.Fatalf("unexpected site id: %s", id)
	}
}
