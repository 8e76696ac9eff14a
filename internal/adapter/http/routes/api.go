package routes

import (
	"github.com/hepsystems/hepeco/internal/adapter/http/handlers"
	"github.com/hepsystems/hepeco/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth  = "/health"
	PathQuote   = "/quote"
	PathPayment = "/payment"
	PathWebhook = "/webhook"
	PathAdmin   = "/admin"
)

func addHealthRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET(PathHealth, h.Health)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuote)
	{
		quotes.POST("/calculate", h.Calculate)
		quotes.POST("/save", h.Save)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayment)
	{
		payments.POST("/generate", h.Generate)
		payments.POST("/verify", h.Verify)
		payments.GET("/:reference", h.GetByReference)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler, secret string) {
	hooks := rg.Group(PathWebhook, middleware.WebhookSecret(secret))
	{
		hooks.POST("/mobile-money", h.MobileMoney)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, token string) {
	admin := rg.Group(PathAdmin, middleware.AdminAuth(token))
	{
		admin.GET("/payments", h.ListPayments)
		admin.GET("/quotes", h.ListQuotes)
	}
}
