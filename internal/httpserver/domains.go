package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	adminHTTP "ai-task-manager/internal/admin/delivery/http"
	adminUseCase "ai-task-manager/internal/admin/usecase"
	aiHTTP "ai-task-manager/internal/ai/delivery/http"
	aiUseCase "ai-task-manager/internal/ai/usecase"
	authHTTP "ai-task-manager/internal/auth/delivery/http"
	authRepo "ai-task-manager/internal/auth/repository/postgre"
	authUseCase "ai-task-manager/internal/auth/usecase"
	"ai-task-manager/internal/middleware"
	notifHTTP "ai-task-manager/internal/notification/delivery/http"
	notifUseCase "ai-task-manager/internal/notification/usecase"
	taskHTTP "ai-task-manager/internal/task/delivery/http"
	taskRepo "ai-task-manager/internal/task/repository/postgre"
	taskUseCase "ai-task-manager/internal/task/usecase"
)

// registerDomainRoutes wires every domain: repository, use case, HTTP
// handler, routes. Domains share the repositories built here.
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup, mw middleware.Middleware) error {
	ctx := context.Background()

	// Repositories
	tasks := taskRepo.New(srv.db, srv.l)
	users := authRepo.New(srv.db, srv.l)

	// Task domain
	taskUC := taskUseCase.New(srv.l, tasks, srv.publisher, srv.calendar, srv.statsCache)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUC), mw)
	srv.l.Infof(ctx, "task domain registered")

	// Auth domain
	authUC := authUseCase.New(srv.l, users, srv.jwtManager)
	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, authUC), mw)
	srv.l.Infof(ctx, "auth domain registered")

	// Admin domain
	adminUC := adminUseCase.New(srv.l, users, tasks)
	adminHTTP.RegisterRoutes(api, adminHTTP.New(srv.l, adminUC), mw)
	srv.l.Infof(ctx, "admin domain registered")

	// AI domain (built on the task use case; feeds its search index back
	// into it)
	if srv.llm != nil {
		aiUC := aiUseCase.New(srv.l, srv.llm, srv.embedder, srv.vectors, taskUC, srv.dates,
			srv.cfg.Qdrant.CollectionName)
		taskUC.SetIndexer(aiUC)
		aiHTTP.RegisterRoutes(api, aiHTTP.New(srv.l, aiUC), mw)
		srv.l.Infof(ctx, "ai domain registered")
	} else {
		srv.l.Warnf(ctx, "ai domain skipped: no LLM providers configured")
	}

	// Notification domain
	notifUC := notifUseCase.New(srv.l, tasks, srv.mailer)
	notifHTTP.RegisterRoutes(api, notifHTTP.New(srv.l, notifUC), mw)
	srv.l.Infof(ctx, "notification domain registered")

	return nil
}
