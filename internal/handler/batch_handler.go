package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BatchHandler struct {
	batch  *service.BatchService
	logger *zap.Logger
}

func NewBatchHandler(batch *service.BatchService, logger *zap.Logger) *BatchHandler {
	return &BatchHandler{
		batch:  batch,
		logger: logger,
	}
}

type batchRequest struct {
	Key string `json:"key" binding:"required"`
}

// Import creates products from a CSV object previously uploaded to the batch
// bucket.
func (h *BatchHandler) Import(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	created, err := h.batch.ImportProducts(c.Request.Context(), req.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, domain.OKMessage("Batch import finished", gin.H{"created": created}))
}

// Delete removes products listed in a CSV object.
func (h *BatchHandler) Delete(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, domain.Fail(http.StatusBadRequest, "Invalid request format"))
		return
	}

	deleted, err := h.batch.DeleteProducts(c.Request.Context(), req.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, domain.OKMessage("Batch delete finished", gin.H{"deleted": deleted}))
}
