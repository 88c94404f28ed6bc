package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// TokenParser resolves the caller identity from a bearer token.
type TokenParser interface {
	ParseToken(token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller identity into the request context.
// Requests without a valid token pass through unauthenticated.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Handle is the http middleware.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r.Header.Get("Authorization"))
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.tokenParser.ParseToken(tokenString)
		if err != nil || identity.IsZero() {
			m.logger.Debug("invalid authorization token",
				"path", r.URL.Path,
				"error", errString(err))
			next.ServeHTTP(w, r)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(header)
}

func errString(err error) string {
	if err == nil {
		return "empty identity"
	}
	return err.Error()
}
