package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api"
	"github.com/immocalc/Immo-Calculator-Backend/internal/config"
	"github.com/immocalc/Immo-Calculator-Backend/internal/database"
	"github.com/immocalc/Immo-Calculator-Backend/internal/repository"
	"github.com/immocalc/Immo-Calculator-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	scenarioRepo := repository.NewScenarioRepository(db)

	var cache repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.Cache.RedisAddr)
		log.Printf("Using Redis report cache at %s", cfg.Cache.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	// Create services
	systemService := service.NewSystemService(db)
	reportService := service.NewReportService(scenarioRepo, cache, cfg.Calc.DefaultEtfReturnPct)
	loanService := service.NewLoanService()
	scenarioService := service.NewScenarioService(scenarioRepo)

	// Create router
	router := api.NewRouter(systemService, reportService, loanService, scenarioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
