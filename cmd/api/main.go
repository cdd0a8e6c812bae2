package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/satyacheck-ai/satyacheck/internal/application"
	appanalysis "github.com/satyacheck-ai/satyacheck/internal/application/analysis"
	"github.com/satyacheck-ai/satyacheck/internal/config"
	aiclient "github.com/satyacheck-ai/satyacheck/internal/infra/ai/openai"
	"github.com/satyacheck-ai/satyacheck/internal/infra/fetch"
	"github.com/satyacheck-ai/satyacheck/internal/infra/httpserver"
	"github.com/satyacheck-ai/satyacheck/internal/middleware"
)

func main() {
	// .env is optional, environment wins either way
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config; halts here when the model credential is missing
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init fetcher
	fetcher := fetch.New(cfg.FetchTimeout())

	// init model client
	model := aiclient.NewClient(cfg.Model.APIKey, cfg.Model.BaseURL, cfg.Model.Name, cfg.Analysis.Region)

	// init service
	svc := &appanalysis.Service{
		Model:   model,
		Fetcher: fetcher,
		Clock:   application.SystemClock{},
	}

	checkers := map[string]middleware.HealthChecker{
		"model": middleware.CheckerFunc(func(ctx context.Context) error {
			if cfg.Model.APIKey == "" {
				return fmt.Errorf("model credential not configured")
			}
			return nil
		}),
	}

	// init router; the browser frontend calls cross-origin
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	mux.Use(middleware.APIKeyAuth(cfg.APIKey))
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Analysis.MaxTextBytes, cfg.Analysis.MaxImageBytes, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model round trips are slow
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
