package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"otbasy/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionContextKey ContextKey = "session"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions *service.SessionService
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessions *service.SessionService) *Middleware {
	return &Middleware{sessions: sessions}
}

// RequireAuth rejects requests that do not carry a valid session token.
// The token comes from the Authorization header, or from the token query
// parameter for websocket upgrades where browsers cannot set headers.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
			return
		}

		claims, err := m.sessions.ValidateToken(token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid session", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// SessionFromContext retrieves the session claims from the request context
func SessionFromContext(ctx context.Context) *service.SessionClaims {
	claims, ok := ctx.Value(SessionContextKey).(*service.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
