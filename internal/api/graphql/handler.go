package graphql

import (
	"context"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"

	"github.com/dtroode/notekeeper-server/internal/logger"
)

// maxUploadMemory bounds how much of a multipart body is held in memory before spilling to disk.
const maxUploadMemory = 32 << 20

// NewHandler creates the GraphQL endpoint: JSON POST and multipart uploads.
func NewHandler(es graphql.ExecutableSchema, maxUploadSize int64, logger *logger.Logger) *handler.Server {
	srv := handler.New(es)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.POST{})
	srv.AddTransport(transport.MultipartForm{
		MaxUploadSize: maxUploadSize,
		MaxMemory:     min(maxUploadSize, maxUploadMemory),
	})

	srv.AroundOperations(func(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
		opCtx := graphql.GetOperationContext(ctx)
		start := time.Now()
		logger.Debug("GraphQL operation started",
			"operation", opCtx.OperationName,
			"type", string(opCtx.Operation.Operation))

		handle := next(ctx)
		return func(ctx context.Context) *graphql.Response {
			resp := handle(ctx)
			if resp == nil {
				return nil
			}
			logger.Info("GraphQL operation completed",
				"operation", opCtx.OperationName,
				"type", string(opCtx.Operation.Operation),
				"duration_ms", time.Since(start).Milliseconds(),
				"errors", len(resp.Errors))
			return resp
		}
	})

	return srv
}
