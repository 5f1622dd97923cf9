package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/loadouthq/setups/internal/model"
	"github.com/loadouthq/setups/pkg/jwt"
)

// TokenVerifier resolves a bearer token to its claims. The concrete
// implementation lives outside this API; jwt.Service satisfies it.
type TokenVerifier interface {
	Validate(token string) (*jwt.Claims, error)
}

// ClaimsKey is the context key for verified token claims.
const ClaimsKey contextKey = "claims"

// Auth returns a middleware that requires a valid bearer token and stores
// the caller identity in the request context.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, pd := bearerToken(r)
			if pd != nil {
				pd.WriteJSON(w)
				return
			}

			claims, err := verifier.Validate(token)
			if err != nil {
				switch err {
				case jwt.ErrTokenExpired:
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				case jwt.ErrInvalidSignature:
					model.NewUnauthorizedError("invalid token signature").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth is like Auth but never rejects: when a valid token is present
// the identity is stored in context, otherwise the request proceeds
// anonymously.
func OptionalAuth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, pd := bearerToken(r)
			if pd != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Validate(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. The scheme
// comparison is case-insensitive.
func bearerToken(r *http.Request) (string, *model.ProblemDetails) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", model.NewUnauthorizedError("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", model.NewUnauthorizedError("invalid authorization header format")
	}

	return parts[1], nil
}

// GetUserID extracts the authenticated user ID from context.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the verified token claims from context.
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
