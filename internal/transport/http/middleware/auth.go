package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shinonome-inc/backend-final-assignment-koya/internal/httputil"
	"github.com/shinonome-inc/backend-final-assignment-koya/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey contextKey = "user_id"
)

// TokenDenylist answers whether an access token's jti has been revoked.
// A nil denylist disables the check.
type TokenDenylist interface {
	IsAccessTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware validates bearer JWTs and rejects tokens that logout has
// denylisted. Checks the Authorization header first, then falls back to the
// access_token cookie.
func AuthMiddleware(jwtSecret string, denylist TokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				httputil.WriteUnauthorized(w, "Missing authentication token")
				return
			}

			userID, jti, ok := validateToken(w, tokenString, jwtSecret)
			if !ok {
				return
			}

			if denylist != nil && jti != "" {
				revoked, err := denylist.IsAccessTokenRevoked(r.Context(), jti)
				if err != nil {
					log.Printf("[AuthMiddleware] Denylist check failed: %v", err)
					httputil.WriteInternalError(w, "Failed to validate session")
					return
				}
				if revoked {
					httputil.WriteUnauthorizedWithCode(w, model.CodeTokenRevoked, "Session has been logged out")
					return
				}
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware attaches the user ID when a valid token is present
// but lets unauthenticated requests through untouched.
func OptionalAuthMiddleware(jwtSecret string, denylist TokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, jti, err := parseToken(tokenString, jwtSecret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if denylist != nil && jti != "" {
				if revoked, err := denylist.IsAccessTokenRevoked(r.Context(), jti); err != nil || revoked {
					next.ServeHTTP(w, r)
					return
				}
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the user ID from the request context
// Returns the user ID and true if found, or 0 and false if not found
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// ExtractBearerToken returns the raw access token carried by the request, or
// "" when none is present. Exposed for logout, which denylists the token it
// was called with.
func ExtractBearerToken(r *http.Request) string {
	return extractToken(r)
}

func extractToken(r *http.Request) string {
	// Authorization header first (API clients)
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	// Cookie fallback (web browsers)
	cookie, err := r.Cookie("access_token")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

func parseToken(tokenString, jwtSecret string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	jti, _ := claims["jti"].(string)
	return int64(userIDFloat), jti, nil
}

// validateToken parses the token and writes the appropriate 401 itself when
// validation fails.
func validateToken(w http.ResponseWriter, tokenString, jwtSecret string) (int64, string, bool) {
	userID, jti, err := parseToken(tokenString, jwtSecret)
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			httputil.WriteUnauthorizedWithCode(w, model.CodeTokenExpired, "Access token has expired")
			return 0, "", false
		}
		httputil.WriteUnauthorizedWithCode(w, model.CodeTokenInvalid, "Invalid authentication token")
		return 0, "", false
	}
	return userID, jti, true
}
