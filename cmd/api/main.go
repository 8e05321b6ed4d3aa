package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/multitool_api/internal/cache"
	"github.com/GTDGit/multitool_api/internal/config"
	"github.com/GTDGit/multitool_api/internal/database"
	"github.com/GTDGit/multitool_api/internal/handler"
	"github.com/GTDGit/multitool_api/internal/middleware"
	"github.com/GTDGit/multitool_api/internal/repository"
	"github.com/GTDGit/multitool_api/internal/service"
	"github.com/GTDGit/multitool_api/pkg/openrouter"
	"github.com/GTDGit/multitool_api/pkg/youtube"
)

// main is the application entrypoint for the Multi-Tool AI Assistance API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting multitool api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := database.Migrate(db.DB, cfg.DB.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Rate limiter, backed by Redis when configured
	var limiter middleware.Limiter
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("redis connection failed")
			fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Info().Msg("redis connected successfully")
		limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	} else {
		memLimiter := middleware.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
		defer memLimiter.Close()
		log.Info().Msg("redis not configured, using in-memory rate limiter")
		limiter = memLimiter
	}

	// 4. External clients
	var llm service.ChatCompleter
	if cfg.OpenRouter.APIKey != "" {
		llm = openrouter.NewClient(openrouter.Config{
			BaseURL: cfg.OpenRouter.BaseURL,
			APIKey:  cfg.OpenRouter.APIKey,
			SiteURL: cfg.OpenRouter.SiteURL,
			AppName: cfg.OpenRouter.AppName,
			Debug:   !cfg.IsProduction(),
		})
	} else {
		log.Warn().Msg("OPENROUTER_API_KEY not set - chat endpoint disabled")
	}

	var yt service.YouTubeSearcher
	if cfg.YouTube.APIKey != "" {
		client, err := youtube.NewClient(context.Background(), cfg.YouTube.APIKey)
		if err != nil {
			log.Warn().Err(err).Msg("YouTube client initialization failed - YouTube search disabled")
		} else {
			yt = client
		}
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set - YouTube search disabled")
	}

	// 5. Repositories and services
	productRepo := repository.NewProductRepository(db)
	productSvc := service.NewProductService(productRepo)
	youtubeSvc := service.NewYouTubeService(yt)
	chatSvc := service.NewChatService(llm, service.NewToolbox(productSvc, youtubeSvc), service.ChatOptions{
		Model:       cfg.OpenRouter.Model,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		MaxSteps:    cfg.OpenRouter.MaxSteps,
	})

	// 6. Handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(cfg.Env, cfg.APIPrefix),
		Database: handler.NewDatabaseHandler(productSvc),
		Product:  handler.NewProductHandler(productSvc, !cfg.IsProduction()),
		Chat:     handler.NewChatHandler(chatSvc),
	}

	// 7. Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := newRouter(cfg, handlers, limiter)
	if err != nil {
		log.Error().Err(err).Msg("router setup failed")
		fmt.Fprintf(os.Stderr, "router setup failed: %v\n", err)
		os.Exit(1)
	}

	// 8. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("prefix", cfg.APIPrefix).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 10. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Database *handler.DatabaseHandler
	Product  *handler.ProductHandler
	Chat     *handler.ChatHandler
}

// newRouter builds the gin engine with middleware and routes.
func newRouter(cfg *config.Config, handlers *Handlers, limiter middleware.Limiter) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	router.Use(middleware.LoggingMiddleware("/health", cfg.APIPrefix+"/health"))
	router.Use(middleware.RateLimitMiddleware(limiter))
	setupRoutes(router, cfg.APIPrefix, handlers)
	return router, nil
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, prefix string, handlers *Handlers) {
	router.GET("/", handlers.Health.Root)

	api := router.Group(prefix)
	{
		api.GET("/health", handlers.Health.GetHealth)
		api.GET("/info", handlers.Health.GetInfo)
		api.GET("/database/health", handlers.Database.GetHealth)

		api.GET("/products/search", handlers.Product.SearchProducts)
		api.GET("/products/categories", handlers.Product.GetCategories)

		api.POST("/chat", handlers.Chat.Chat)
	}

	router.NoRoute(handlers.Health.NotFound)
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
