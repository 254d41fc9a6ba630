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

	"github.com/joho/godotenv"

	"github.com/ptomes1987/regiojet-delays/internal/config"
	"github.com/ptomes1987/regiojet-delays/internal/handlers"
	"github.com/ptomes1987/regiojet-delays/internal/regiojet"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := []regiojet.Option{regiojet.WithLanguage(cfg.Language)}
	if cfg.BaseURL != "" {
		opts = append(opts, regiojet.WithBaseURL(cfg.BaseURL))
	}
	client := regiojet.New(opts...)

	// Each request performs one in-process upstream query; there is no
	// shared state beyond the client's fixed headers.
	delayHandler := handlers.NewDelayHandler(client,
		regiojet.Stations["KARLOVY_VARY_TERMINAL"],
		regiojet.Stations["SOKOLOV_TERMINAL"])

	router := handlers.NewRouter(delayHandler, cfg.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("API server starting on %s", addr)
		log.Println("Endpoints:")
		log.Println("  GET /api/delays")
		log.Println("  GET /healthz")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Println("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
