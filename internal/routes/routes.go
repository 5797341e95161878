package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"invoice-analytics-backend/internal/config"
	handler "invoice-analytics-backend/internal/handlers"
	"invoice-analytics-backend/internal/middleware"
	"invoice-analytics-backend/internal/repository"
	"invoice-analytics-backend/internal/services/analytics"
	"invoice-analytics-backend/internal/services/chat"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	analyticsService := analytics.NewService(invoiceRepo, analyticsRepo)
	chatClient := chat.NewClient(cfg.Chat)

	dashboardHandler := handler.NewDashboardHandler(analyticsService)
	invoiceHandler := handler.NewInvoiceHandler(analyticsService)
	chatHandler := handler.NewChatHandler(chatClient)

	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	api := r.Group("/api")
	api.Use(limiter.Middleware())

	// Dashboard metrics
	api.GET("/stats", dashboardHandler.GetStats)
	api.GET("/invoice-trends", dashboardHandler.GetInvoiceTrends)
	api.GET("/vendors/top10", dashboardHandler.GetTopVendors)
	api.GET("/category-spend", dashboardHandler.GetCategorySpend)
	api.GET("/cash-outflow", dashboardHandler.GetCashOutflow)

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
	}

	// NL-to-SQL proxy
	api.POST("/chat-with-data", chatHandler.ChatWithData)
}
