package main

import (
	"fmt"

	_ "pcbquote/docs"
	"pcbquote/internal/adapter/http/routes"
	"pcbquote/internal/config"
	"pcbquote/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           PCB Quotation Service API
// @version         1.0
// @description     Deterministic pricing and lead-time quotation for rigid PCB orders.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Sync()

	log.Info("starting quotation service", zap.Int("port", cfg.Port))
	routes.Run(cfg, log)
}
