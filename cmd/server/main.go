package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Blake-Bird/SGA2029/docs"
	"github.com/Blake-Bird/SGA2029/internal/config"
	"github.com/Blake-Bird/SGA2029/internal/database"
	"github.com/Blake-Bird/SGA2029/internal/handlers"
	mW "github.com/Blake-Bird/SGA2029/internal/middleware"
	"github.com/Blake-Bird/SGA2029/internal/seed"
	"github.com/Blake-Bird/SGA2029/internal/services"
)

// @title SGA 2029 Treasury API
// @version 1.0
// @description Query and derivation API for the student government ledger, events, and bills
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.SetEnvPrefix("")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("session.secret_key", "SESSION_SECRET_KEY")
	viper.BindEnv("session.expiry_hours", "SESSION_EXPIRY_HOURS")
	viper.BindEnv("invite.code", "INVITE_CODE")
	viper.BindEnv("invite.code_hash", "INVITE_CODE_HASH")
	viper.BindEnv("argon2.time", "ARGON2_TIME")
	viper.BindEnv("argon2.memory", "ARGON2_MEMORY")
	viper.BindEnv("argon2.threads", "ARGON2_THREADS")
	viper.BindEnv("argon2.key_length", "ARGON2_KEY_LENGTH")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	viper.SetDefault("session.secret_key", "dev-only-session-secret")
	viper.SetDefault("session.expiry_hours", 12)
	viper.SetDefault("invite.code", "sga2029-officers")

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "SGA 2029 Treasury API"
	docs.SwaggerInfo.Description = "Query and derivation API for the student government ledger, events, and bills"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Seed data and stores
	store := seed.New()
	proposals := seed.NewProposalStore()

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	checkinCfg := config.LoadCheckinConfig()

	// Initialize services
	navService := services.NewNavService()
	ledgerService := services.NewLedgerService(store)
	eventService := services.NewEventService(store)
	billService := services.NewBillService(store)
	teamService := services.NewTeamService(store)
	socialService := services.NewSocialService(store)
	authService := services.NewAuthService(store, redisClient)
	proposalService := services.NewProposalService(proposals)
	qrService := services.NewQRService(redisClient, store, checkinCfg)
	qrHandler := handlers.NewQRHandler(qrService)
	voiceService := services.NewVoiceMemoService()
	defer voiceService.Close()

	// Initialize auth middleware with Redis
	mW.InitAuthMiddleware(redisClient)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Static file server for posters, headshots, and receipt scans
	r.Handle("/static/media/*", http.StripPrefix("/static/media/",
		mW.StaticFileServer("./static/media")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/login", authService.Login)
		r.Post("/auth/logout", authService.Logout)

		r.Get("/resolve", navService.ResolvePath)

		r.Get("/team", teamService.ListTeam)
		r.Get("/team/{memberId}", teamService.GetMember)

		r.Get("/events", eventService.ListEvents)
		r.Get("/events/{eventId}", eventService.GetEvent)

		r.Get("/bills", billService.ListBills)
		r.Get("/bills/{billId}", billService.GetBill)

		r.Get("/transactions", ledgerService.ListTransactions)
		r.Get("/transactions/export", ledgerService.ExportTransactions)
		r.Get("/transactions/explain", ledgerService.ExplainTransactions)
		r.Get("/kpis", ledgerService.GetKPIs)

		r.Get("/social", socialService.ListPosts)

		r.Post("/proposals", proposalService.SubmitProposal)
		r.Post("/qr/checkin", qrHandler.ProcessCheckin)

		// Protected endpoints (auth required)
		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/auth/session", authService.GetSession)
			r.Get("/proposals", proposalService.ListProposals)
			r.Post("/proposals/voice-memo", voiceService.TranscribeMemo)
			r.Post("/events/{eventId}/qr", qrHandler.GenerateEventQR)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
