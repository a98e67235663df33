package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tabu/auth"
	"tabu/cocktails"
	"tabu/config"
	"tabu/db"
	"tabu/filemgr"
	"tabu/ingredients"
	"tabu/middleware"
	"tabu/mq"
	"tabu/ratelim"
	"tabu/rdx"
	"tabu/routes"
	"tabu/users"
	"tabu/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func setupRouter(cfg *config.Config, store *db.Store, cache *rdx.Cache) *httprouter.Router {
	tokens := auth.NewTokens(cfg)
	events := mq.NewEmitter(cache)
	mw := middleware.NewAuth(tokens, store)
	rateLimiter := ratelim.NewRateLimiter(5, 10)

	authHandler := auth.NewHandler(cfg, store, cache, tokens, events)
	cocktailHandler := cocktails.NewHandler(cfg, store, events)
	ingredientHandler := ingredients.NewHandler(cfg, store, cache, events)
	userHandler := users.NewHandler(cfg, store)
	uploadHandler := filemgr.NewHandler(cfg)

	router := httprouter.New()
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"error": "Ruta no encontrada"})
	})

	routes.AddHealthRoutes(router)
	routes.AddStaticRoutes(router, cfg)
	routes.AddAuthRoutes(router, authHandler, mw, rateLimiter)
	routes.AddCocktailRoutes(router, cocktailHandler, mw)
	routes.AddIngredientRoutes(router, ingredientHandler, mw)
	routes.AddUserRoutes(router, userHandler, mw)
	routes.AddUploadRoutes(router, uploadHandler, mw)

	return router
}

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := db.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}

	cache := rdx.New(cfg.RedisAddr)

	router := setupRouter(cfg, store, cache)

	// CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s (%s)", cfg.Port, cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
