package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/auth"
	"github.com/justsurfingit/job-platform/internal/cache"
	"github.com/justsurfingit/job-platform/internal/config"
	"github.com/justsurfingit/job-platform/internal/database"
	"github.com/justsurfingit/job-platform/internal/events"
	"github.com/justsurfingit/job-platform/internal/handlers"
	"github.com/justsurfingit/job-platform/internal/logger"
	"github.com/justsurfingit/job-platform/internal/middleware"
	"github.com/justsurfingit/job-platform/internal/repository"
	"github.com/justsurfingit/job-platform/internal/services"
	"github.com/justsurfingit/job-platform/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("main", "load config", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("main", "connect database", err)
	}
	defer database.Close(db)

	apps := repository.NewApplicationRepository(db)
	jobs := repository.NewJobPostRepository(db)
	users := repository.NewUserRepository(db)

	// 3. Infrastructure: login limiter, events, notifications
	var limiter services.LoginLimiter
	if cfg.RedisAddr != "" {
		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("main", "redis unreachable at %s, login throttling fails open: %v", cfg.RedisAddr, err)
		}
		limiter = cache.NewLoginLimiter(rdb)
	}

	publisher := events.NewNopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info("main", "publishing application events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	var notifier services.Notifier = services.NewLogNotifier(nil)
	gmailService, err := auth.NewGmailService(ctx, cfg.GmailCredentialsFile, cfg.GmailTokenFile)
	if err != nil {
		logger.Warn("main", "gmail disabled, notifications go to the log: %v", err)
	} else {
		notifier = services.NewGmailNotifier(gmailService, "")
		logger.Info("main", "gmail notifier connected")
	}

	pool := worker.NewPool(cfg.NotifyWorkers, 100, 3)
	pool.Start()

	// 4. Services
	tokens := services.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	var extractor handlers.JobExtractor
	if cfg.GeminiAPIKey != "" {
		llm, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("main", "job extraction disabled: %v", err)
		} else {
			extractor = llm
		}
	}

	applicationService := services.NewApplicationService(apps, jobs, users, publisher, notifier, pool)
	authService := services.NewAuthService(users, tokens, limiter)
	jobService := services.NewJobPostService(jobs)
	adminService := services.NewAdminService(users, jobs, apps)
	profileService := services.NewProfileService(users)

	// 5. Router
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	handlers.Routes{
		Applications: handlers.NewApplicationHandler(applicationService),
		Auth:         handlers.NewAuthHandler(authService),
		Jobs:         handlers.NewJobHandler(extractor, jobService),
		Admin:        handlers.NewAdminHandler(adminService),
		Profiles:     handlers.NewProfileHandler(profileService),
		Tokens:       tokens,
	}.Mount(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("main", "server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main", "server failed", err)
		}
	}()

	<-ctx.Done()
	logger.Info("main", "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main", "http shutdown", err)
	}
	if err := pool.Shutdown(10 * time.Second); err != nil {
		logger.Error("main", "worker pool shutdown", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("main", "close event publisher", err)
	}
}
