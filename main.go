package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/username/eduplan/backend/src/config"
	"github.com/username/eduplan/backend/src/growth"
	"github.com/username/eduplan/backend/src/handlers"
	"github.com/username/eduplan/backend/src/logger"
	"github.com/username/eduplan/backend/src/parsers"
	"github.com/username/eduplan/backend/src/processors"
	"github.com/username/eduplan/backend/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Education planner backend starting...")

	logger.L.Info("Loading historical datasets...",
		"fees", config.Cfg.FeesDataPath,
		"fx", config.Cfg.FxDataPath,
		"interest", config.Cfg.InterestDataPath)
	accessor, err := processors.LoadFromFiles(
		config.Cfg.FeesDataPath,
		config.Cfg.FxDataPath,
		config.Cfg.InterestDataPath,
	)
	if err != nil {
		logger.L.Error("Failed to load historical datasets", "error", err)
		os.Exit(1)
	}

	logger.L.Info("Initializing services and handlers...")
	priceLoader := parsers.NewAssetPriceLoader(config.Cfg.MarketDataDir)
	growthEngine := growth.NewEngine(priceLoader)
	scenarioService := services.NewScenarioService(accessor, growthEngine, config.Cfg.ScenarioCacheTTL)
	educationHandler := handlers.NewEducationHandler(scenarioService)

	logger.L.Info("Configuring routes...")
	limiter := rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)

	router := chi.NewRouter()
	router.Use(handlers.CORSMiddleware(config.Cfg.CORSAllowedOrigin))
	router.Use(handlers.RateLimitMiddleware(limiter))
	router.Use(handlers.RequestIDMiddleware)

	educationHandler.RegisterRoutes(router)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Education planner backend is running"})
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
