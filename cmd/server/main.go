package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"healthmate-backend/internal/config"
	"healthmate-backend/internal/database"
	"healthmate-backend/internal/handlers"
	"healthmate-backend/internal/middleware"
	"healthmate-backend/internal/router"
	"healthmate-backend/internal/services"
	"healthmate-backend/internal/session"
	"healthmate-backend/internal/websocket"
	"healthmate-backend/web"
)

func main() {
	log.Println("🚀 Starting HealthMate...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	tmpl, err := web.PageTemplate()
	if err != nil {
		log.Fatalf("✗ Page template failed to parse: %v", err)
	}

	// ──── Step 2: Resolve API Key ────
	apiKey, err := config.ResolveAPIKey(cfg.SecretsFile)
	var handler http.Handler
	var cleanup []func()

	var cfgErr *config.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		log.Printf("✗ %v", cfgErr)
		log.Println("  Serving the configuration error page only")
		handler = router.NewUnconfigured(handlers.NewPageHandler(tmpl, cfgErr), cfgErr.Error(), cfg.FrontendURL)
	case err != nil:
		log.Fatalf("✗ API key resolution failed: %v", err)
	default:
		log.Println("✓ API key resolved")
		handler, cleanup = buildApp(cfg, apiKey, tmpl)
	}

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// No write timeout: a generation call may take as long as the service needs.
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ HealthMate ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}
}

// buildApp wires the interactive application. The returned cleanup funcs run
// after the server stops.
func buildApp(cfg *config.Config, apiKey string, tmpl *template.Template) (http.Handler, []func()) {
	var cleanup []func()

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(apiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	cleanup = append(cleanup, geminiService.Close)
	log.Printf("✓ Gemini client initialized (model %s)", cfg.GeminiModel)

	// ──── Step 4: Optional Redis for transcript push ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		cleanup = append(cleanup, func() { redisClient.Close() })
		log.Println("✓ Redis connected")
	} else {
		log.Println("  Redis not configured, transcript push stays in-process")
	}

	// ──── Step 5: Sessions ────
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatalf("✗ Session secret generation failed: %v", err)
		}
		log.Println("  SESSION_SECRET not set, sessions end with this process")
	}
	sessions := middleware.NewSessions(secret, !cfg.IsDevelopment())

	store := session.NewManager(cfg.SessionIdleTTL)
	ctx, cancel := context.WithCancel(context.Background())
	store.Start(ctx)
	cleanup = append(cleanup, cancel)
	log.Printf("✓ Session store started (idle ttl %s)", cfg.SessionIdleTTL)

	// ──── Step 6: Handlers ────
	wsHub := websocket.NewHub(redisClient, sessions)
	sections := services.NewSections(geminiService)

	r := router.New(
		sessions,
		handlers.NewPageHandler(tmpl, nil),
		handlers.NewSectionHandler(sections, store, wsHub),
		handlers.NewAssessmentHandler(sections),
		wsHub,
		cfg.FrontendURL,
	)

	return r, cleanup
}
