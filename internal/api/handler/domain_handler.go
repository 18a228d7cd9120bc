package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// DomainHandler exposes availability checks, domain purchase checkout, and
// the direct Name.com operations.
type DomainHandler struct {
	domains ports.DomainService
	orders  ports.OrderService
	namecom ports.Registrar
}

func NewDomainHandler(domains ports.DomainService, orders ports.OrderService, namecom ports.Registrar) *DomainHandler {
	return &DomainHandler{domains: domains, orders: orders, namecom: namecom}
}

type domainRequest struct {
	Domain string `json:"domain" validate:"required,fqdn"`
}

// Check handles POST /api/check-domain — fans out to both registrars and
// always returns both results.
//
// @Summary      Check domain availability on both registrars
// @Tags         domains
// @Accept       json
// @Produce      json
// @Param        body  body      domainRequest  true  "Domain to check"
// @Success      200   {object}  ports.DomainCheck
// @Failure      400   {object}  map[string]string
// @Router       /api/check-domain [post]
func (h *DomainHandler) Check(c echo.Context) error {
	var req domainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, h.domains.Check(c.Request().Context(), req.Domain))
}

type createDomainPaymentRequest struct {
	Domain   string  `json:"domain" validate:"required,fqdn"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

type createDomainPaymentResponse struct {
	ClientSecret string `json:"clientSecret"`
	OrderID      string `json:"orderId"`
}

// CreatePayment handles POST /api/create-domain-payment — creates the
// payment intent and its pending order.
//
// @Summary      Start a domain purchase
// @Tags         domains
// @Accept       json
// @Produce      json
// @Param        body  body      createDomainPaymentRequest  true  "Purchase details"
// @Success      200   {object}  createDomainPaymentResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/create-domain-payment [post]
func (h *DomainHandler) CreatePayment(c echo.Context) error {
	var req createDomainPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.orders.CreateDomainPayment(c.Request().Context(), ports.DomainPaymentInput{
		Domain:   req.Domain,
		Price:    req.Price,
		Currency: req.Currency,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, createDomainPaymentResponse{
		ClientSecret: result.ClientSecret,
		OrderID:      result.OrderID,
	})
}

// NamecomCheck handles POST /api/namecom/check — a single-registrar lookup.
//
// @Summary      Check domain availability on Name.com
// @Tags         domains
// @Accept       json
// @Produce      json
// @Param        body  body      domainRequest  true  "Domain to check"
// @Success      200   {object}  ports.DomainCheckResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/namecom/check [post]
func (h *DomainHandler) NamecomCheck(c echo.Context) error {
	var req domainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.namecom.CheckAvailability(c.Request().Context(), req.Domain)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

type namecomRegisterRequest struct {
	Domain  string        `json:"domain" validate:"required,fqdn"`
	Years   int           `json:"years" validate:"required,min=1"`
	Contact ports.Contact `json:"contact"`
}

// NamecomRegister handles POST /api/namecom/register (authenticated).
//
// @Summary      Register a domain via Name.com
// @Tags         domains
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      namecomRegisterRequest  true  "Registration details"
// @Success      200   {object}  ports.RegistrationResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/namecom/register [post]
func (h *DomainHandler) NamecomRegister(c echo.Context) error {
	var req namecomRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.namecom.Register(c.Request().Context(), req.Domain, req.Years, req.Contact)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}
