package auth

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const establishmentKey contextKey = "establishment_id"

// EstablishmentAuthMiddleware validates the Bearer token issued at login
// and injects the establishment scope into the request context. Every
// protected handler reads the establishment from there, never from the
// request body.
func EstablishmentAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		establishmentID, ok := claims["establishment_id"].(float64)
		if !ok || establishmentID <= 0 {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), establishmentKey, int(establishmentID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EstablishmentID returns the establishment scope set by the middleware,
// or 0 when the request is unauthenticated.
func EstablishmentID(r *http.Request) int {
	id, _ := r.Context().Value(establishmentKey).(int)
	return id
}
