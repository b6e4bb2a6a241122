package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/orcahelper/orcahelper/internal/domain"
	"github.com/orcahelper/orcahelper/internal/service"
	"github.com/orcahelper/orcahelper/internal/utils"
	"github.com/orcahelper/orcahelper/internal/utils/jwt"
)

// Keys to store identity values in the request context
type key int

const (
	claimsKey key = iota
	userKey
)

// Identity holds dependencies for the request identity middleware.
type Identity struct {
	jwtService jwt.JwtService
	auth       service.AuthService
}

func NewIdentity(jwtService jwt.JwtService, auth service.AuthService) *Identity {
	return &Identity{jwtService: jwtService, auth: auth}
}

// Optional attaches decoded token claims to the request context when a
// valid bearer token is present. It never touches storage and never fails
// the request: a missing, malformed or undecodable token just leaves the
// identity absent. Strict enforcement belongs to RequireUser.
func (i *Identity) Optional() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := i.jwtService.DecodeToken(tokenString)
			if err != nil {
				// deliberately swallowed: absence of identity is a
				// valid request state
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser is the gate for protected routes: it resolves the bearer
// token to a persisted user and rejects the request with 401 otherwise.
func (i *Identity) RequireUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			user, err := i.auth.Resolve(tokenString)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Missing header or missing second field yields "".
func bearerToken(r *http.Request) string {
	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return fields[1]
}

// ClaimsFromContext returns the claims attached by Optional, or nil.
func ClaimsFromContext(r *http.Request) *jwt.Claims {
	claims, ok := r.Context().Value(claimsKey).(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

// UserFromContext returns the user attached by RequireUser, or nil.
func UserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
