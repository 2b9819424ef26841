package main

import (
	"log"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/controllers"
	"portfolio-backend/database"
	"portfolio-backend/logger"
	"portfolio-backend/repository"
	"portfolio-backend/routes"
	"portfolio-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Sync()

	// An unreachable store is not fatal: content reads degrade to defaults
	// and checkout keeps working (order writes are logged-and-absorbed).
	if err := database.Connect(cfg.MongoURL, cfg.DBName); err != nil {
		logger.Log.Warn("mongo unavailable, continuing in degraded mode", zap.Error(err))
	}
	defer database.Close()

	orderRepo := repository.NewMongoOrderRepository(database.DB)
	contentRepo := repository.NewMongoContentRepository(database.DB)

	stripeGW := services.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.FrontendURL, cfg.GatewayTimeout)
	paypalGW := services.NewPayPalGateway(cfg.PayPalClientID, cfg.PayPalClientSecret, cfg.PayPalMode, cfg.FrontendURL, cfg.GatewayTimeout)
	razorpayGW := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.FrontendURL, 0, cfg.GatewayTimeout)

	payments := services.NewPaymentService(orderRepo, logger.Log, stripeGW, paypalGW, razorpayGW)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	ctrl := &routes.Controllers{
		Auth:      &controllers.AuthController{Cfg: cfg, Logger: logger.Log},
		Portfolio: &controllers.PortfolioController{Content: contentRepo, Logger: logger.Log},
		Contact:   &controllers.ContactController{Content: contentRepo, Logger: logger.Log},
		Cart:      controllers.NewCartController(),
		Checkout: &controllers.CheckoutController{
			Payments: payments,
			Stripe:   stripeGW,
			Razorpay: razorpayGW,
			Orders:   orderRepo,
			Logger:   logger.Log,
		},
		Dashboard: &controllers.DashboardController{Orders: orderRepo, Logger: logger.Log},
	}
	routes.Register(r, cfg, ctrl)

	logger.Log.Info("portfolio backend listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed: ", err)
	}
}
