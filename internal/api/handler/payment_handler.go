package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// PaymentHandler exposes the one-time and subscription checkout endpoints.
// Every operation delegates straight to the payment gateway; processor
// errors surface as 500 with the processor's message.
type PaymentHandler struct {
	gateway ports.PaymentGateway
}

func NewPaymentHandler(gateway ports.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

type createPaymentIntentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
	Plan     string  `json:"plan" validate:"required"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent handles POST /api/create-payment-intent.
//
// @Summary      Create a one-time payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentIntentRequest  true  "Payment details"
// @Success      200   {object}  createPaymentIntentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.gateway.CreatePaymentIntent(c.Request().Context(), minorUnits(req.Amount), currencyOrDefault(req.Currency), map[string]string{
		"plan": req.Plan,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, createPaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

type createSubscriptionRequest struct {
	Price    float64 `json:"price" validate:"required,gt=0"`
	Currency string  `json:"currency"`
	Plan     string  `json:"plan" validate:"required"`
}

type createSubscriptionResponse struct {
	ClientSecret string `json:"clientSecret"`
	PriceID      string `json:"priceId"`
}

// CreateSubscription handles POST /api/create-subscription.
//
// @Summary      Create a subscription plan and setup intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createSubscriptionRequest  true  "Subscription details"
// @Success      200   {object}  createSubscriptionResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/create-subscription [post]
func (h *PaymentHandler) CreateSubscription(c echo.Context) error {
	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.gateway.CreateSubscriptionPlan(c.Request().Context(), minorUnits(req.Price), currencyOrDefault(req.Currency), req.Plan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, createSubscriptionResponse{
		ClientSecret: plan.ClientSecret,
		PriceID:      plan.PriceID,
	})
}

type createCustomerRequest struct {
	Email  string `json:"email" validate:"required,email"`
	UserID string `json:"userId" validate:"required"`
}

type createCustomerResponse struct {
	CustomerID string `json:"customerId"`
}

// CreateCustomer handles POST /api/stripe/create-customer.
//
// @Summary      Create a processor customer
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      200   {object}  createCustomerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/stripe/create-customer [post]
func (h *PaymentHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customerID, err := h.gateway.CreateCustomer(c.Request().Context(), req.Email, req.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, createCustomerResponse{CustomerID: customerID})
}

type createCustomerSubscriptionRequest struct {
	CustomerID    string `json:"customerId" validate:"required"`
	PriceID       string `json:"priceId" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}

// CreateCustomerSubscription handles POST /api/stripe/create-subscription.
// The processor's subscription object is passed through verbatim.
//
// @Summary      Subscribe a customer to a price
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerSubscriptionRequest  true  "Subscription details"
// @Success      200   {object}  object
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/stripe/create-subscription [post]
func (h *PaymentHandler) CreateCustomerSubscription(c echo.Context) error {
	var req createCustomerSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.gateway.CreateSubscription(c.Request().Context(), req.CustomerID, req.PriceID, req.PaymentMethod)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, sub)
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "usd"
	}
	return currency
}

// minorUnits converts a major-unit amount to the processor's integer minor
// units (12.99 → 1299).
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
