package handler

import (
	"errors"
	"net/http"
	"strconv"

	"invoice-analytics-backend/internal/repository"
	"invoice-analytics-backend/internal/services/analytics"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	service *analytics.Service
}

func NewInvoiceHandler(s *analytics.Service) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// ListInvoices handles GET /api/invoices?page=&limit=&search=
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := repository.InvoiceFilter{
		Search: c.Query("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}

	page, err := h.service.SearchInvoices(filter)
	if err != nil {
		internalError(c, "failed to search invoices", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetInvoice handles GET /api/invoices/:id where :id is the business key.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	detail, err := h.service.GetInvoice(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		internalError(c, "failed to load invoice", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// queryInt parses a positive integer query parameter, falling back to def on
// missing, unparsable or sub-1 values.
func queryInt(c *gin.Context, key string, def int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return def
	}
	return value
}
