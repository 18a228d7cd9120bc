package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Mattjhagen/expert-umbrella/docs"
	"github.com/Mattjhagen/expert-umbrella/internal/api/handler"
	"github.com/Mattjhagen/expert-umbrella/internal/api/middleware"
	"github.com/Mattjhagen/expert-umbrella/internal/core/service"
	"github.com/Mattjhagen/expert-umbrella/internal/infrastructure/config"
	mongodb "github.com/Mattjhagen/expert-umbrella/internal/infrastructure/db/mongo"
	redisdb "github.com/Mattjhagen/expert-umbrella/internal/infrastructure/db/redis"
	"github.com/Mattjhagen/expert-umbrella/internal/infrastructure/payment"
	"github.com/Mattjhagen/expert-umbrella/internal/infrastructure/registrar"
	"github.com/Mattjhagen/expert-umbrella/internal/infrastructure/site"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, sites *site.FSStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sitebuilder"))

	// --- Infrastructure adapters ---
	authRepo := mongodb.NewAuthRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey)
	dynadot := registrar.NewDynadotClient(cfg.Dynadot.APIKey, cfg.Dynadot.BaseURL)
	namecom := registrar.NewNamecomClient(cfg.Namecom.Username, cfg.Namecom.Token, cfg.Namecom.BaseURL)

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 0)
	orderService := service.NewOrderService(orderRepo, gateway, log)
	domainService := service.NewDomainService(dynadot, namecom, log)
	siteService := service.NewSiteService(sites, log)
	webhookService := service.NewWebhookService(orderRepo, dynadot, dedup, cfg.Stripe.WebhookSecret, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	paymentHandler := handler.NewPaymentHandler(gateway)
	domainHandler := handler.NewDomainHandler(domainService, orderService, namecom)
	webhookHandler := handler.NewWebhookHandler(webhookService)
	siteHandler := handler.NewSiteHandler(siteService)
	adminHandler := handler.NewAdminHandler(orderService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminRequired := middleware.AdminKey(cfg.AdminKey)

	// --- Auth ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Payments ---
	e.POST("/api/create-payment-intent", paymentHandler.CreatePaymentIntent)
	e.POST("/api/create-subscription", paymentHandler.CreateSubscription)
	e.POST("/api/stripe/create-customer", paymentHandler.CreateCustomer)
	e.POST("/api/stripe/create-subscription", paymentHandler.CreateCustomerSubscription)
	e.POST("/api/webhook", webhookHandler.Receive)

	// --- Domains ---
	e.POST("/api/check-domain", domainHandler.Check)
	e.POST("/api/create-domain-payment", domainHandler.CreatePayment)
	e.POST("/api/namecom/check", domainHandler.NamecomCheck)
	e.POST("/api/namecom/register", domainHandler.NamecomRegister, authRequired)

	// --- Sites ---
	e.POST("/api/site/create", siteHandler.Create, authRequired)
	e.POST("/api/site/publish", siteHandler.Publish, authRequired)
	e.Static("/published", sites.Root())

	// --- Admin ---
	e.GET("/api/admin/orders", adminHandler.ListOrders, adminRequired)

	// --- Probes & tooling ---
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", readinessHandler.Readiness)
	e.GET("/api/status", healthHandler.Status)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
