package main

import (
	_ "github.com/hepsystems/hepeco/docs"
	"github.com/hepsystems/hepeco/internal/adapter/http/routes"
	"github.com/hepsystems/hepeco/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Hepeco Digital API
// @version         1.0
// @description     Quote calculation and mobile-money payment references for Hepeco Digital.

// @contact.name   Hepeco Digital
// @contact.email  support@hepecodigital.com

// @host localhost:3000

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin API token.

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	routes.Run(cfg)
}
