package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/service"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /orders (admin).
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListByUser handles GET /orders/:userId/get-orders.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	orders, err := h.orders.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/admin/:orderId.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create handles POST /orders/:userId.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Missing order information or userId!"))
		return
	}

	order, err := h.orders.Create(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Update handles PUT /orders/:userId/:orderId.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if _, err := h.orders.Update(c.Request.Context(), c.Param("orderId"), &req); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /orders/:orderId.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("orderId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
