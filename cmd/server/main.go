// @title Portfolio Contact API
// @version 1.0
// @description Contact-form relay and visit analytics backend for the portfolio site

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:6001
// @BasePath /
// @schemes http https

package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/portfoliosite/backend/docs" // Import generated docs
	"github.com/portfoliosite/backend/internal/config"
	"github.com/portfoliosite/backend/internal/server"
	"github.com/portfoliosite/backend/internal/services"
	"github.com/portfoliosite/backend/internal/store"
)

func main() {
	cfg := config.Load()

	if !cfg.MailConfigured() {
		log.Println("[contact-backend] Missing ZOHO_USER or ZOHO_PASS in environment. Email sending will fail until set.")
	}

	e := echo.New()
	e.HideBanner = true

	_ = server.New(e, cfg,
		store.NewVisitStore(),
		services.NewSMTPMailer(cfg),
		services.NewIPAPILocator(cfg.GeoAPIURL),
	)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Printf("Contact backend listening on http://0.0.0.0:%s", cfg.Port)
	e.Logger.Fatal(e.Start("0.0.0.0:" + cfg.Port))
}
