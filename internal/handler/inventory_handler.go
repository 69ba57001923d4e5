package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	inventory *service.InventoryService
	logger    *zap.Logger
}

func NewInventoryHandler(inventory *service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		logger:    logger,
	}
}

func (h *InventoryHandler) AddStocks(c *gin.Context) {
	var req domain.AddStocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	entry, err := h.inventory.AddStocks(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, domain.OKMessage("Item added successfully", entry))
}

func (h *InventoryHandler) Query(c *gin.Context) {
	entries, err := h.inventory.QueryByProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OK(entries))
}

// ApplyDelta folds a signed movement quantity into the product's running
// total.
func (h *InventoryHandler) ApplyDelta(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	updated, err := h.inventory.ApplyStockDelta(c.Request.Context(), c.Param("product_id"), req.Quantity)
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

func (h *InventoryHandler) DeleteForProduct(c *gin.Context) {
	deleted, err := h.inventory.DeleteForProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OKMessage("Item deleted successfully", gin.H{"deleted": deleted}))
}
