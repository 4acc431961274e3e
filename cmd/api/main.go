package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"ai-task-manager/config"
	_ "ai-task-manager/docs" // Swagger docs
	aiUseCase "ai-task-manager/internal/ai/usecase"
	"ai-task-manager/internal/events"
	"ai-task-manager/internal/httpserver"
	"ai-task-manager/internal/scheduler"
	"ai-task-manager/internal/stats"
	taskRepo "ai-task-manager/internal/task/repository/postgre"
	taskUseCase "ai-task-manager/internal/task/usecase"
	"ai-task-manager/pkg/datemath"
	"ai-task-manager/pkg/gcalendar"
	"ai-task-manager/pkg/llmprovider"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/mailer"
	"ai-task-manager/pkg/postgres"
	"ai-task-manager/pkg/qdrant"
	"ai-task-manager/pkg/scope"
	"ai-task-manager/pkg/voyage"
)

const statsCacheSize = 1024

// @title       AI Task Manager API
// @description Task management with JWT auth, AI-assisted capture, semantic search, and email reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgres.Connect(postgres.Config{
		DSN:             cfg.Postgres.DSN(),
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	// 4. Redis event publisher (optional)
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf(ctx, "Redis not available, task events disabled: %v", err)
		} else {
			publisher = events.NewRedisPublisher(rdb, logger)
			logger.Info(ctx, "Redis event publisher initialized")
		}
	}

	// 5. Auth tokens
	jwtManager := scope.New(cfg.Auth.Secret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)

	// 6. Stats cache
	statsCache, err := stats.NewCache(statsCacheSize)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create stats cache: %v", err)
	}

	// 7. Google Calendar (optional)
	var calendar taskUseCase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewFromCredentialsFile(ctx,
			cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. SMTP mailer (optional)
	var mail mailer.Mailer
	if cfg.SMTP.Host != "" {
		m, mailErr := mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if mailErr != nil {
			logger.Warnf(ctx, "Mailer not available (optional): %v", mailErr)
		} else {
			mail = m
			logger.Info(ctx, "SMTP mailer initialized")
		}
	}

	// 9. LLM providers (optional)
	var llm *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM providers not available (optional): %v", err)
	} else if len(providers) > 0 {
		llm = llmprovider.NewManager(providers, llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelay,
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
		}, logger)
		logger.Infof(ctx, "LLM manager initialized with %d providers", len(providers))
	}

	// 10. Semantic search: Voyage embeddings + Qdrant index (optional)
	var embedder voyage.Embedder
	var vectors aiUseCase.VectorStore
	if cfg.Voyage.APIKey != "" && cfg.Qdrant.URL != "" {
		vc, vErr := voyage.New(cfg.Voyage.APIKey, cfg.Voyage.Model)
		if vErr != nil {
			logger.Warnf(ctx, "Voyage not available (optional): %v", vErr)
		} else {
			qc := qdrant.NewClient(cfg.Qdrant.URL)
			vectorSize := cfg.Qdrant.VectorSize
			if vectorSize <= 0 {
				vectorSize = 1024
			}
			collection := cfg.Qdrant.CollectionName
			if collection == "" {
				collection = "tasks"
			}
			if qErr := qc.EnsureCollection(ctx, qdrant.CreateCollectionRequest{
				Name:    collection,
				Vectors: qdrant.VectorsConfig{Size: vectorSize, Distance: "Cosine"},
			}); qErr != nil {
				logger.Warnf(ctx, "Qdrant not available (optional): %v", qErr)
			} else {
				embedder = vc
				vectors = qc
				logger.Info(ctx, "Semantic search initialized")
			}
		}
	}

	// 11. DateMath parser
	timezone := cfg.GoogleCalendar.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 12. Reminder scheduler (optional)
	if cfg.Scheduler.Enabled && mail != nil {
		sched := scheduler.New(logger, taskRepo.New(db, logger), mail,
			cfg.Scheduler.Interval, cfg.Scheduler.ReminderWindow)
		go sched.Run(ctx)
	} else {
		logger.Info(ctx, "Reminder scheduler disabled")
	}

	// 13. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		DB:          db,
		JWTManager:  jwtManager,
		Publisher:   publisher,
		StatsCache:  statsCache,
		Calendar:    calendar,
		Mailer:      mail,
		LLM:         llm,
		Embedder:    embedder,
		Vectors:     vectors,
		Dates:       dates,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 14. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
