package router

import (
	"context"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmw "github.com/dtroode/notekeeper-server/internal/api/http/middleware"
	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

const (
	graphqlPath   = "/graphql"
	healthTimeout = 2 * time.Second
)

// Router wires HTTP routes and middleware for the notekeeper API.
type Router struct {
	graphqlHandler http.Handler
	tokenParser    httpmw.TokenParser
	contextManager model.ContextManager
	health         model.HealthChecker
	logger         *logger.Logger
	playground     bool
}

// New creates new HTTP Router instance.
func New(
	graphqlHandler http.Handler,
	tokenParser httpmw.TokenParser,
	contextManager model.ContextManager,
	health model.HealthChecker,
	logger *logger.Logger,
	playground bool,
) *Router {
	return &Router{
		graphqlHandler: graphqlHandler,
		tokenParser:    tokenParser,
		contextManager: contextManager,
		health:         health,
		logger:         logger,
		playground:     playground,
	}
}

// Register builds the handler tree.
func (r *Router) Register() http.Handler {
	logging := httpmw.NewLogging(r.logger)
	authenticate := httpmw.NewAuthenticate(r.tokenParser, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(middleware.Recoverer)

	mux.Get("/health", r.healthHandler)

	mux.Group(func(gr chi.Router) {
		gr.Use(authenticate.Handle)
		gr.Post(graphqlPath, r.graphqlHandler.ServeHTTP)
		gr.Options(graphqlPath, r.graphqlHandler.ServeHTTP)
	})

	if r.playground {
		mux.Get(graphqlPath, playground.Handler("Notekeeper GraphQL", graphqlPath))
	}

	return mux
}

// healthHandler answers OK, or 503 when the health checker fails. A nil checker always passes.
func (r *Router) healthHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if r.health != nil {
		ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
		defer cancel()

		if err := r.health.Ping(ctx); err != nil {
			r.logger.Error("health check failed", "error", err.Error())
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("UNAVAILABLE"))
			return
		}
	}

	_, _ = w.Write([]byte("OK"))
}
