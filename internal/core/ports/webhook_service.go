package ports

import "context"

// WebhookService processes signed payment-processor notifications.
type WebhookService interface {
	// HandleEvent verifies the signature and reconciles the matching order.
	// It returns domain.ErrInvalidSignature when verification fails; every
	// failure after verification is logged and swallowed so the caller can
	// always acknowledge receipt to the processor.
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}
