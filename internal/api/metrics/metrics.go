// Package metrics defines and registers all custom Prometheus metrics for
// the site-builder API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at import
// time via promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitebuilder"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts domain-purchase orders created.
// Label:
//   - currency: the order currency (e.g. "usd")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of domain purchase orders created, by currency.",
	},
	[]string{"currency"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookEventsTotal counts processor notifications that passed signature
// verification.
// Label:
//   - type: the processor event type (e.g. "payment_intent.succeeded")
var WebhookEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Total number of verified webhook events received, by event type.",
	},
	[]string{"type"},
)

// WebhookErrorsTotal counts webhook processing failures.
// Label:
//   - reason: short description of the failure (e.g. "invalid_signature", "mark_paid_failed")
var WebhookErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_errors_total",
		Help:      "Total number of webhook events that failed processing, by reason.",
	},
	[]string{"reason"},
)

// ── Registrar metrics ─────────────────────────────────────────────────────────

// DomainChecksTotal counts registrar availability lookups.
// Labels:
//   - registrar: "dynadot" or "namecom"
//   - outcome: "available", "taken", or "error"
var DomainChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domain_checks_total",
		Help:      "Total number of registrar availability checks, by registrar and outcome.",
	},
	[]string{"registrar", "outcome"},
)

// RegistrationsTotal counts registration attempts triggered by paid orders.
// Label:
//   - result: "success" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of domain registration attempts, by result.",
	},
	[]string{"result"},
)
