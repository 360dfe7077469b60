package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/empyrean-sama/react-aws-ecommerce-sub001/external/razorpay"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/config"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/db"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/repository"
	"github.com/empyrean-sama/react-aws-ecommerce-sub001/internal/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	if cfg.MigrationsDir != "" {
		if err := repository.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
	}

	// ======================
	// EXTERNALS
	// ======================
	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// ======================
	// REPOSITORIES
	// ======================
	catalogRepo := repository.NewCatalogRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	// ======================
	// SERVICES
	// ======================
	pricingSvc := services.NewPricingService(catalogRepo)
	checkoutSvc := services.NewCheckoutService(pricingSvc, orderRepo, gateway, cfg.Currency)
	paymentSvc := services.NewPaymentService(orderRepo, gateway)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerOrderRoutes(api, checkoutSvc)
	registerPaymentRoutes(api, paymentSvc)

	// ======================
	// SERVER
	// ======================
	logger.Info().Str("port", cfg.Port).Msg("starting store api")
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
