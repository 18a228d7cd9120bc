package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Mattjhagen/expert-umbrella/internal/core/ports"
)

// AdminHandler exposes the shared-key-protected order ledger.
type AdminHandler struct {
	orders ports.OrderService
}

func NewAdminHandler(orders ports.OrderService) *AdminHandler {
	return &AdminHandler{orders: orders}
}

// ListOrders handles GET /api/admin/orders — the full ledger keyed by
// order id.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Key  header    string  true  "Shared admin key"
// @Success      200          {object}  map[string]domain.Order
// @Failure      401          {object}  map[string]string
// @Failure      403          {object}  map[string]string
// @Failure      500          {object}  map[string]string
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list orders"})
	}
	return c.JSON(http.StatusOK, orders)
}
