package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Govind-619/Plug233/config"
	"github.com/Govind-619/Plug233/controllers"
	"github.com/Govind-619/Plug233/events"
	"github.com/Govind-619/Plug233/gateways"
	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/routes"
	"github.com/Govind-619/Plug233/search"
	"github.com/Govind-619/Plug233/services"
	"github.com/Govind-619/Plug233/utils"
	"github.com/gin-gonic/gin"
)

const reaperInterval = 5 * time.Minute

func main() {
	// Initialize logger
	if err := utils.InitLogger("logs"); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.LogError("Error initializing database: %v", err)
		log.Fatal("Error initializing database:", err)
	}
	repos := repository.New(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional integrations stay nil interfaces when unconfigured
	var mailer services.Mailer
	if m := utils.NewMailer(utils.EmailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}); m != nil {
		mailer = m
	}

	var publisher services.EventPublisher
	if p := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic); p != nil {
		publisher = p
		defer p.Close()
		utils.LogInfo("Publishing events to Kafka topic %s", cfg.KafkaTopic)
	}

	var index services.ProductIndex
	es, err := search.NewClient(search.Config{
		URL:      cfg.ElasticURL,
		Username: cfg.ElasticUsername,
		Password: cfg.ElasticPassword,
		Index:    cfg.ElasticIndex,
	})
	if err != nil {
		utils.LogError("Elasticsearch unavailable, search falls back to the database: %v", err)
	} else if es != nil {
		index = es
	}

	notifier := services.NewNotificationService(repos, mailer)
	coupons := services.NewCouponService(repos)
	accounts := services.NewAccountService(repos)
	orders := services.NewOrderService(repos, notifier, publisher)
	checkout := services.NewCheckoutService(repos, coupons, notifier, publisher, cfg.Currency)

	paystack := gateways.NewPaystack(cfg.PaystackSecretKey, cfg.AppURL, cfg.Currency)
	if paystack.Configured() {
		checkout.RegisterGateway(models.PaymentMethodPaystack, paystack)
	}
	stripe := gateways.NewStripe(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.AppURL)
	if stripe.Configured() {
		checkout.RegisterGateway(models.PaymentMethodStripe, stripe)
	}

	h := &controllers.Controller{
		Catalog:       services.NewCatalogService(repos, index, cfg.Currency),
		Coupons:       coupons,
		Checkout:      checkout,
		Payments:      services.NewPaymentService(repos, notifier, publisher),
		Requests:      services.NewRequestService(repos, notifier, publisher, cfg.Currency),
		Orders:        orders,
		Shipments:     services.NewShipmentService(repos, publisher),
		Accounts:      accounts,
		Notifications: notifier,
		Content:       services.NewContentService(repos),
		Dashboard:     services.NewDashboardService(repos),
		SEO:           services.NewSEOService(repos, cfg.AppURL),
		Paystack:      paystack,
		Stripe:        stripe,
	}

	if cfg.PendingOrderTTL > 0 {
		go orders.RunReaper(ctx, cfg.PendingOrderTTL, reaperInterval)
	}

	// Set up router
	router := routes.SetupRouter(routes.Options{
		Controller:    h,
		Accounts:      accounts,
		JWTSecret:     cfg.JWTSecret,
		SessionSecret: cfg.SessionSecret,
		AllowOrigin:   cfg.AppURL,
		SecureCookies: cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		utils.LogInfo("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	// Block until a signal is received
	<-ctx.Done()
	utils.LogInfo("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogError("Server shutdown failed: %v", err)
	}
}
