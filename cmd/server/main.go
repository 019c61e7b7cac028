package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmoretti/payment-link-gateway/internal/config"
	"github.com/nmoretti/payment-link-gateway/internal/handler"
	"github.com/nmoretti/payment-link-gateway/internal/middleware"
	"github.com/nmoretti/payment-link-gateway/internal/provider"
	"github.com/nmoretti/payment-link-gateway/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	if cfg.StripeSecretKey == "" {
		log.Fatal().Msg("STRIPE_SECRET_KEY environment variable is required")
	}
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.Default())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)

	live := provider.NewStripeClient(cfg.StripeSecretKey)
	setupPaymentRoutes(router.Group("/api/v1"), live, cfg)

	if cfg.TestModeEnabled() {
		test := provider.NewStripeClient(cfg.StripeTestKey)
		setupPaymentRoutes(router.Group("/api/v1/test"), test, cfg)
		log.Info().Msg("test mode routes enabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupPaymentRoutes(api *gin.RouterGroup, client provider.Client, cfg *config.Config) {
	linkService := service.NewLinkService(client)
	paymentService := service.NewPaymentService(client, cfg.PaymentPageLimit, cfg.ResolveConcurrency)

	linkHandler := handler.NewPaymentLinkHandler(linkService)
	paymentsHandler := handler.NewPaymentsHandler(paymentService)

	api.POST("/create-payment-link", linkHandler.Create)
	api.GET("/successful-payments", paymentsHandler.List)
}
