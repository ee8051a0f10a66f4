package routes

import (
	"context"
	"log"

	_ "wedding_admin/docs"
	"wedding_admin/internal/adapter/http/handlers"
	"wedding_admin/internal/adapter/http/middleware"
	"wedding_admin/internal/adapter/persistence/buffer"
	"wedding_admin/internal/infrastructure/config"
	"wedding_admin/internal/infrastructure/database"
	"wedding_admin/internal/infrastructure/payments"
	"wedding_admin/internal/infrastructure/scheduler"
	"wedding_admin/internal/usecase"
	"wedding_admin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cleanup := getRoutes(cfg)
	defer cleanup()

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) func() {
	repos, err := database.NewRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the %s backend: %v", cfg.DataBackend, err)
	}

	editBuffer := buffer.NewEditBuffer()
	sweeper := scheduler.NewEditBufferSweeper(editBuffer, cfg.EditBufferTTL)
	if err := sweeper.Start(cfg.EditBufferSweepSpec); err != nil {
		log.Fatalf("Failed to schedule the edit buffer sweeper: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoPayerEmail, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	ledgerUseCase := usecase.NewLedgerUseCase(repos.CostItems, repos.Venues, editBuffer)
	editUseCase := usecase.NewCostItemEditUseCase(repos.CostItems, repos.Venues, editBuffer)
	venueUseCase := usecase.NewVenueUseCase(repos.Venues)
	checkoutUseCase := usecase.NewPaymentCheckoutUseCase(repos.CostItems, repos.Checkouts, editBuffer, paymentGateway)

	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)
	editHandler := handlers.NewCostItemEditHandler(editUseCase)
	venueHandler := handlers.NewVenueHandler(venueUseCase)
	checkoutHandler := handlers.NewPaymentCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(middleware.Auth(cfg.JWTSecret))
	addLedgerRoutes(authed, ledgerHandler, editHandler, checkoutHandler)
	addVenueRoutes(authed, venueHandler)

	return func() {
		sweeper.Stop()
		if err := repos.Cleanup(); err != nil {
			log.Printf("Failed to close the %s backend: %v", cfg.DataBackend, err)
		}
	}
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
