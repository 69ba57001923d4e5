package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders *service.OrderService
	logger *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// Place runs the stock-guarded order placement flow.
func (h *OrderHandler) Place(c *gin.Context) {
	var req domain.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, domain.OKMessage("Item added successfully", order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OK(order))
}

func (h *OrderHandler) GetAll(c *gin.Context) {
	orders, err := h.orders.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OK(orders))
}

func (h *OrderHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	updated, err := h.orders.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, domain.Envelope{
		StatusCode:        http.StatusOK,
		Message:           "Item updated successfully",
		UpdatedAttributes: updated,
	})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OKMessage("Item deleted successfully", nil))
}
