package handler

import (
	"net/http"

	"invoice-analytics-backend/internal/logger"
	"invoice-analytics-backend/internal/services/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *analytics.Service
}

func NewDashboardHandler(s *analytics.Service) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Summary()
	if err != nil {
		internalError(c, "failed to compute summary stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetInvoiceTrends(c *gin.Context) {
	trends, err := h.service.MonthlyTrends()
	if err != nil {
		internalError(c, "failed to compute monthly trends", err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

func (h *DashboardHandler) GetTopVendors(c *gin.Context) {
	vendors, err := h.service.TopVendors()
	if err != nil {
		internalError(c, "failed to compute top vendors", err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *DashboardHandler) GetCategorySpend(c *gin.Context) {
	categories, err := h.service.CategorySpend()
	if err != nil {
		internalError(c, "failed to compute category spend", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *DashboardHandler) GetCashOutflow(c *gin.Context) {
	points, err := h.service.CashOutflow()
	if err != nil {
		internalError(c, "failed to compute cash outflow", err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// internalError logs the storage error server-side and returns a generic 500.
func internalError(c *gin.Context, msg string, err error) {
	logger.L().Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
