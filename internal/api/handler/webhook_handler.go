package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mattjhagen/expert-umbrella/internal/core/domain"
	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// signatureHeader is the processor's signature header on notifications.
const signatureHeader = "Stripe-Signature"

// WebhookHandler receives signed payment-processor notifications.
type WebhookHandler struct {
	service ports.WebhookService
}

func NewWebhookHandler(service ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

type webhookResponse struct {
	Received bool `json:"received"`
}

// Receive handles POST /api/webhook. The raw body is handed to the
// reconciler untouched; once the signature verifies, the response is always
// {"received":true} regardless of downstream outcome, honouring the
// processor's delivery contract.
//
// @Summary      Receive a payment processor notification
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Event signature"
// @Success      200               {object}  webhookResponse
// @Failure      400               {object}  map[string]string
// @Router       /api/webhook [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
	}

	err = h.service.HandleEvent(c.Request().Context(), payload, c.Request().Header.Get(signatureHeader))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid signature")
		}
		// Unreachable with the current service contract; kept so a future
		// error path cannot silently become a 200.
		return err
	}

	return c.JSON(http.StatusOK, webhookResponse{Received: true})
}
