package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products *service.ProductService
	logger   *zap.Logger
}

func NewProductHandler(products *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, domain.OKMessage("Item added successfully", product))
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OK(product))
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, err := h.products.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OK(products))
}

func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.products.SearchByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(products) == 0 {
		respond(c, domain.Fail(http.StatusNotFound, "Item does not exist"))
		return
	}
	respond(c, domain.OK(products))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	updated, err := h.products.Update(c.Request.Context(), c.Param("id"), fields)
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

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, domain.OKMessage("Item deleted successfully", nil))
}
