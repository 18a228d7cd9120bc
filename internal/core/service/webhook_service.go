package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/Mattjhagen/expert-umbrella/internal/api/metrics"
	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// DedupChecker abstracts the webhook idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

// registrationYears is how long a fulfilled purchase registers the domain
// for. The checkout flow sells one-year registrations only.
const registrationYears = 1

type webhookService struct {
	orders        ports.OrderRepository
	registrar     ports.Registrar
	dedup         DedupChecker
	webhookSecret string
	log           zerolog.Logger
}

// NewWebhookService returns a WebhookService implementation backed by the
// given order repository and registrar.
func NewWebhookService(
	orders ports.OrderRepository,
	registrar ports.Registrar,
	dedup DedupChecker,
	webhookSecret string,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		orders:        orders,
		registrar:     registrar,
		dedup:         dedup,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// HandleEvent verifies, deduplicates, and reconciles a single processor
// notification. Only a signature failure is returned to the caller; every
// later failure is logged and swallowed so the acknowledgment to the
// processor always succeeds and no redelivery storm is triggered.
func (s *webhookService) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	// 1. Signature verification — the only hard failure.
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		metrics.WebhookErrorsTotal.WithLabelValues("invalid_signature").Inc()
		s.log.Warn().Err(err).Msg("webhook signature verification failed")
		return domain.ErrInvalidSignature
	}

	metrics.WebhookEventsTotal.WithLabelValues(string(event.Type)).Inc()

	// 2. Idempotency check — silently skip redelivered events.
	isDup, err := s.dedup.IsDuplicate(ctx, event.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("event_id", event.ID).Str("type", string(event.Type)).Msg("duplicate event skipped")
		return nil
	}

	// 3. Dispatch by event kind. Only a succeeded payment intent drives
	// business logic; everything else is acknowledged as received.
	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		s.reconcile(ctx, event)
	case stripe.EventTypePaymentIntentPaymentFailed,
		stripe.EventTypeChargeSucceeded,
		stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		s.log.Info().Str("event_id", event.ID).Str("type", string(event.Type)).Msg("event acknowledged without action")
	default:
		s.log.Debug().Str("event_id", event.ID).Str("type", string(event.Type)).Msg("unhandled event type")
	}

	// 4. Mark as processed (best effort; a lost mark only costs one
	// redundant pass through the status-filtered update below).
	if markErr := s.dedup.Mark(ctx, event.ID); markErr != nil {
		s.log.Warn().Err(markErr).Str("event_id", event.ID).Msg("failed to set dedup key")
	}

	return nil
}

// reconcile advances the order matching a succeeded payment intent and
// attempts domain registration exactly once. Never returns: partial failure
// must not fail the acknowledgment.
func (s *webhookService) reconcile(ctx context.Context, event stripe.Event) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		metrics.WebhookErrorsTotal.WithLabelValues("malformed_intent").Inc()
		s.log.Error().Err(err).Str("event_id", event.ID).Msg("failed to decode payment intent")
		return
	}

	if intent.Metadata[MetadataTypeKey] != MetadataDomainPayment {
		s.log.Debug().Str("payment_ref", intent.ID).Msg("payment intent is not a domain purchase")
		return
	}

	// Correlate by payment reference. The pending-status filter doubles as
	// the replay guard: a second delivery that slips past dedup finds no
	// pending order and stops here.
	order, err := s.orders.MarkPaid(ctx, intent.ID, time.Now().UTC())
	if err != nil {
		if err == domain.ErrOrderNotFound {
			s.log.Warn().Str("payment_ref", intent.ID).Msg("no pending order for payment intent")
			return
		}
		metrics.WebhookErrorsTotal.WithLabelValues("mark_paid_failed").Inc()
		s.log.Error().Err(err).Str("payment_ref", intent.ID).Msg("failed to mark order paid")
		return
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("domain", order.Domain).
		Str("payment_ref", intent.ID).
		Msg("order paid")

	s.register(ctx, order)
}

// register performs the single, synchronous registration attempt for a paid
// order and records the outcome on the order.
func (s *webhookService) register(ctx context.Context, order *domain.Order) {
	result, err := s.registrar.Register(ctx, order.Domain, registrationYears, ports.Contact{})
	if err != nil {
		s.failRegistration(ctx, order, err.Error())
		return
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "registrar rejected registration"
		}
		s.failRegistration(ctx, order, msg)
		return
	}

	if err := s.orders.MarkRegistered(ctx, order.ID, result.Raw); err != nil {
		metrics.WebhookErrorsTotal.WithLabelValues("mark_registered_failed").Inc()
		s.log.Error().Err(err).Str("order_id", order.ID).Msg("failed to mark order registered")
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("order_id", order.ID).Str("domain", order.Domain).Msg("domain registered")
}

func (s *webhookService) failRegistration(ctx context.Context, order *domain.Order, msg string) {
	metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
	s.log.Error().
		Str("order_id", order.ID).
		Str("domain", order.Domain).
		Str("reason", msg).
		Msg("domain registration failed")

	if err := s.orders.MarkRegistrationFailed(ctx, order.ID, msg); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID).Msg("failed to record registration failure")
	}
}
