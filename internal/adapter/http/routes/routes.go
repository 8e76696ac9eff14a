package routes

import (
	"context"

	_ "github.com/hepsystems/hepeco/docs"
	"github.com/hepsystems/hepeco/internal/adapter/http/handlers"
	"github.com/hepsystems/hepeco/internal/adapter/http/middleware"
	"github.com/hepsystems/hepeco/internal/config"
	"github.com/hepsystems/hepeco/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathAPI = "/api"

// Dependencies are the use cases and settings the router serves.
type Dependencies struct {
	Payments usecase.IPaymentUseCase
	Quotes   usecase.IQuoteUseCase

	StorageName string
	GatewayName string

	AdminToken    string
	WebhookSecret string
}

// Run wires the backends from cfg and serves until the listener fails.
func Run(cfg config.Config) {
	gin.SetMode(cfg.GinMode)

	deps, cleanup, err := BuildDependencies(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Fatal("[routes] failed to wire dependencies")
	}
	defer cleanup()

	router := NewRouter(deps)

	log.WithFields(log.Fields{"port": cfg.Port, "storage": deps.StorageName, "gateway": deps.GatewayName}).
		Info("[routes] listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Error("[routes] failed to startup the application")
	}
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	paymentHandler := handlers.NewPaymentHandler(deps.Payments)
	quoteHandler := handlers.NewQuoteHandler(deps.Quotes)
	adminHandler := handlers.NewAdminHandler(deps.Payments, deps.Quotes)
	webhookHandler := handlers.NewWebhookHandler(deps.Payments)
	healthHandler := handlers.NewHealthHandler(deps.StorageName, deps.GatewayName)

	api := router.Group(PathAPI)
	addHealthRoutes(api, healthHandler)
	addQuoteRoutes(api, quoteHandler)
	addPaymentRoutes(api, paymentHandler)
	addWebhookRoutes(api, webhookHandler, deps.WebhookSecret)
	addAdminRoutes(api, adminHandler, deps.AdminToken)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
