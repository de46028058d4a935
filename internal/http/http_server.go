package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/learnhub-grader.net/internal/config"
	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/services/history"
	"gitlab.com/learnhub-grader.net/internal/core/services/submission"
	"gitlab.com/learnhub-grader.net/internal/handlers"
	"gitlab.com/learnhub-grader.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService submission.ISubmissionService
	historyService    history.IHistoryService
}

func NewServiceProvider(
	submissionService submission.ISubmissionService,
	historyService history.IHistoryService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
		historyService:    historyService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	cfg             *config.HTTPConfig
	middleware      *handlers.MiddlewareProvider
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(cfg *config.HTTPConfig, serviceProvider ServiceProvider, middleware *handlers.MiddlewareProvider, logger primary.Logger) *Server {
	return &Server{
		cfg:             cfg,
		ServiceProvider: serviceProvider,
		middleware:      middleware,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	if s.ServiceProvider.submissionService == nil || s.ServiceProvider.historyService == nil {
		return errors.New("http server: services not provided")
	}

	r := mux.NewRouter()
	r.Use(handlers.RequestLogger(s.logger))
	handlers.NewHealthHandler(s.cfg.ServiceName).RegisterRoutes(r)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.middleware.JWTMiddleware)
	submissions.
		NewSubmissionHandler(s.ServiceProvider.submissionService, s.ServiceProvider.historyService, s.logger).
		RegisterRoutes(api)

	s.router = r
	return nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) <-chan error {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.cfg.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
