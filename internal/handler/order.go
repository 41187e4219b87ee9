package handler

import (
	"log/slog"
	"net/http"

	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/models"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/domain/services"
	"github.com/yhsunny176/curee-restaurant-management-server-side/internal/httputil"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService services.OrderService
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrder places an order for the caller
// POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if !parseBody(w, r, &order) {
		return
	}

	created, err := h.orderService.CreateOrder(r.Context(), httputil.GetPrincipal(r), &order)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondCreated(w, "Order placed successfully", created.ID.Hex())
}

// ListMyOrders lists the caller's orders
// GET /my-orders/{email}
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrdersByBuyer(r.Context(), httputil.GetPrincipal(r), r.PathValue("email"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, orders)
}

// DeleteOrder deletes one of the caller's orders
// DELETE /orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.DeleteOrder(r.Context(), httputil.GetPrincipal(r), r.PathValue("id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Order deleted successfully")
}
