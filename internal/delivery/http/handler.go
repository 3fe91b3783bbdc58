package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfscan/backend/internal/domain"
	"github.com/shelfscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	receipts *usecase.ReceiptService
}

// NewHandler creates a new HTTP handler
func NewHandler(receipts *usecase.ReceiptService) *Handler {
	return &Handler{receipts: receipts}
}

// classifyRequest is the body of a receipt classification request
type classifyRequest struct {
	Lines []domain.ReceiptLine `json:"lines" binding:"required,min=1,dive"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shelfscan-backend",
		"version": "1.0.0",
	})
}

// ClassifyReceipt classifies a batch of OCR receipt lines into grocery
// items with estimated shelf lives.
func (h *Handler) ClassifyReceipt(c *gin.Context) {
	if h.receipts == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Receipt classification not configured",
		})
		return
	}

	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.receipts.ClassifyLines(c.Request.Context(), req.Lines)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "classification failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetScan returns a previously classified scan by id
func (h *Handler) GetScan(c *gin.Context) {
	if h.receipts == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Receipt classification not configured",
		})
		return
	}

	result, err := h.receipts.GetScan(c.Request.Context(), c.Param("scanId"))
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scan"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCategories returns every product category with its default shelf life
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": usecase.Categories()})
}
