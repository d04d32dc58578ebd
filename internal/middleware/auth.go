package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

var sessionRedis *redis.Client

// InitAuthMiddleware wires the optional Redis client used for the
// sign-out blacklist. A nil client disables blacklist checks only;
// token validation still runs.
func InitAuthMiddleware(redisClient *redis.Client) {
	sessionRedis = redisClient
}

// AuthMiddleware guards the officer-only endpoints behind the invite
// gate session token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}

		token := parts[1]

		if sessionRedis != nil {
			key := fmt.Sprintf("blacklist:%s", token)
			if exists, err := sessionRedis.Exists(r.Context(), key).Result(); err == nil && exists > 0 {
				http.Error(w, "Session revoked", http.StatusUnauthorized)
				return
			}
		}

		memberID, err := validateToken(token)
		if err != nil || memberID == "" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), "memberID", memberID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(viper.GetString("session.secret_key")), nil
	})

	if err != nil || !token.Valid {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", err
	}

	memberID := claims["member_id"]
	return fmt.Sprintf("%v", memberID), nil
}
