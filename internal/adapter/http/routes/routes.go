package routes

import (
	"fmt"

	_ "pcbquote/docs" // swagger definitions
	"pcbquote/internal/adapter/http/handlers"
	"pcbquote/internal/config"
	"pcbquote/internal/domain/pricing"
	"pcbquote/internal/infrastructure/rates"
	"pcbquote/internal/infrastructure/shipping"
	"pcbquote/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the quotation service and starts the HTTP server.
func Run(cfg *config.Config, log *zap.Logger) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, log)

	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	// Rule tables are loaded once and shared read-only by every request.
	engine := pricing.NewEngine(pricing.DefaultTables())

	rateProvider, err := rates.NewFixedRateProvider(cfg.ExchangeRates)
	if err != nil {
		log.Fatal("failed to parse exchange rate configuration", zap.Error(err))
	}
	shippingEstimator := shipping.NewCourierEstimator()

	quoteUseCase := usecase.NewQuoteUseCase(engine, rateProvider, shippingEstimator)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
