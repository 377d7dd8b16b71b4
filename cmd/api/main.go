package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/config"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/fetch"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/handler"
	middlewarepkg "github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/middleware"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/router"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/service"
	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cache, err := storage.NewBadgerRepository(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		log.Fatalf("failed to open profile cache: %v", err)
	}
	defer cache.Close()

	validator := service.NewStoreValidator(fetch.New())
	analyzeHandler := handler.NewAnalyzeHandler(validator, cache, cfg.ScrapeTimeout)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{Analyze: analyzeHandler})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Printf("listening on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
