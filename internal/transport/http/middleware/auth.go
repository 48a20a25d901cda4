package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/dfspolti/agenda-voluntarios/internal/domain"
	"github.com/dfspolti/agenda-voluntarios/internal/security"
	"github.com/dfspolti/agenda-voluntarios/internal/transport/http/response"
)

type ctxKey string

const (
	ctxEmail ctxKey = "email"
	ctxRole  ctxKey = "role"
)

type AuthMiddleware struct {
	tokens *security.TokenManager
}

func NewAuth(tokens *security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate extracts the bearer token, verifies it and attaches the claims
// to the request context. Missing token is 401; invalid or expired is 403.
// Every failure is terminal: the client must log in again.
func (a *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			zlog.Warn().Str("path", r.URL.Path).Msg("request without token")
			response.Err(w, domain.ErrUnauthorized("Token não fornecido"))
			return
		}

		claims, err := a.tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, security.ErrTokenExpired) {
				zlog.Warn().Str("path", r.URL.Path).Msg("expired token")
			} else {
				zlog.Warn().Str("path", r.URL.Path).Msg("invalid token")
			}
			response.Err(w, domain.ErrForbidden("Token inválido ou expirado"))
			return
		}

		ctx := context.WithValue(r.Context(), ctxEmail, claims.Email)
		ctx = context.WithValue(ctx, ctxRole, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route on an exact role match. Authenticate must run
// first; decode success alone never implies authorization.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if Role(r) != string(role) {
				zlog.Warn().
					Str("email", Email(r)).
					Str("required_role", string(role)).
					Str("role", Role(r)).
					Msg("access denied")
				response.Err(w, domain.ErrForbidden("Acesso negado"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func Email(r *http.Request) string {
	if v, ok := r.Context().Value(ctxEmail).(string); ok {
		return v
	}
	return ""
}

func Role(r *http.Request) string {
	if v, ok := r.Context().Value(ctxRole).(string); ok {
		return v
	}
	return ""
}
