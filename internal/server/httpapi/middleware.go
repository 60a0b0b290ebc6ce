package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/coinkeeper/internal/server/models"
	"github.com/google/uuid"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	tokenKey     ctxKey = "token"
	requestIDKey ctxKey = "requestID"
)

// requestID tags every request with a generated id and makes it available to
// handlers and logs.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withUser guards the protected subtree. The session token is the raw value
// of the Authorization header (no "Bearer " scheme). The user is loaded once
// here, transactions included, and handed to handlers via the context.
func (s *Server) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, "You are not signed in!")
			return
		}

		user, err := s.users.CurrentUser(r.Context(), token)
		if err != nil {
			he := toHTTPError(err)
			s.logger.Warn(r.Context(), "rejected token", "path", r.URL.Path, "code", he.Code)
			respondWithError(w, he.Code, he.Message)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
