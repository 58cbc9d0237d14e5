package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"pcpro/api/routes"
	"pcpro/internal/apidoc"
	"pcpro/internal/shared/config"
	"pcpro/internal/shared/database"
	"pcpro/internal/shared/middleware"
	"pcpro/pkg/adage"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"pcpro/pkg/metrics"
	"pcpro/pkg/pro"
	"pcpro/pkg/ratelimit"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	collector := metrics.New()
	client, err := apiclient.NewClient(cfg.ClientConfig(), apiclient.WithMetrics(collector))
	if err != nil {
		appLogger.Error("Invalid backend configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rdb, err := database.InitRedis(context.Background(), cfg)
		if err != nil {
			appLogger.Error("Rate limiting disabled: Redis unavailable", slog.Any("error", err))
		} else {
			defer rdb.Close()
			rateLimiter = ratelimit.NewRateLimiter(rdb, &ratelimit.Config{
				Enabled:           cfg.RateLimit.Enabled,
				WindowDuration:    cfg.RateLimit.WindowDuration,
				DefaultRequests:   cfg.RateLimit.DefaultRequests,
				HealthRequests:    cfg.RateLimit.HealthRequests,
				DocumentRequests:  cfg.RateLimit.DocumentRequests,
				CatalogueRequests: cfg.RateLimit.CatalogueRequests,
				WhitelistedIPs:    cfg.RateLimit.WhitelistedIPs,
			})
			appLogger.Info("Rate limiter initialized",
				slog.Duration("window", cfg.RateLimit.WindowDuration),
				slog.Int("health_requests", cfg.RateLimit.HealthRequests),
			)
		}
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	router := setupRouter(cfg, client, collector, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.Docs.ReadTimeout,
		WriteTimeout:   cfg.Docs.WriteTimeout,
		IdleTimeout:    cfg.Docs.IdleTimeout,
		MaxHeaderBytes: cfg.Docs.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("🚀 Documentation server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("openapi", cfg.GetDocsURL()),
			slog.String("swagger_ui", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Docs.Port)),
			slog.String("backend", cfg.API.BaseURL),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, client *apiclient.Client, collector *metrics.Collector, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())
	engine.Use(middleware.CORS(cfg))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter := routes.NewRouter(cfg, client, collector,
		apidoc.Group{Name: "pro", Operations: pro.Operations()},
		apidoc.Group{Name: "adage", Operations: adage.Operations()},
	)
	appRouter.SetupRoutes(engine)

	return engine
}
