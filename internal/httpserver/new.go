package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"ai-task-manager/config"
	aiUC "ai-task-manager/internal/ai/usecase"
	"ai-task-manager/internal/events"
	"ai-task-manager/internal/stats"
	taskUC "ai-task-manager/internal/task/usecase"
	"ai-task-manager/pkg/datemath"
	"ai-task-manager/pkg/llmprovider"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/mailer"
	"ai-task-manager/pkg/scope"
	"ai-task-manager/pkg/voyage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Shared infrastructure
	db         *sql.DB
	jwtManager scope.Manager
	publisher  events.Publisher
	statsCache *stats.Cache

	// Optional integrations; nil disables the feature.
	calendar taskUC.Calendar
	mailer   mailer.Mailer
	llm      *llmprovider.Manager
	embedder voyage.Embedder
	vectors  aiUC.VectorStore
	dates    *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	DB         *sql.DB
	JWTManager scope.Manager
	Publisher  events.Publisher
	StatsCache *stats.Cache

	Calendar taskUC.Calendar
	Mailer   mailer.Mailer
	LLM      *llmprovider.Manager
	Embedder voyage.Embedder
	Vectors  aiUC.VectorStore
	Dates    *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		publisher:   cfg.Publisher,
		statsCache:  cfg.StatsCache,
		calendar:    cfg.Calendar,
		mailer:      cfg.Mailer,
		llm:         cfg.LLM,
		embedder:    cfg.Embedder,
		vectors:     cfg.Vectors,
		dates:       cfg.Dates,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.publisher == nil {
		return errors.New("event publisher is required")
	}
	if srv.statsCache == nil {
		return errors.New("stats cache is required")
	}
	return nil
}
