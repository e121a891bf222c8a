package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/lexihq/lexi/internal/api"
	"github.com/lexihq/lexi/internal/domain"
)

// BearerAuth guards requests with a static bearer token. The comparison is
// constant-time so the token cannot be probed byte by byte.
func BearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("unauthorized access attempt from %s", r.RemoteAddr)
				api.HandleError(w, domain.ErrInvalidAPIToken)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Printf("unauthorized access attempt from %s", r.RemoteAddr)
				api.HandleError(w, domain.ErrInvalidAPIToken)
				return
			}

			presented := strings.TrimPrefix(authHeader, "Bearer ")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Printf("unauthorized access attempt from %s", r.RemoteAddr)
				api.HandleError(w, domain.ErrInvalidAPIToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
