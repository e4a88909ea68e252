package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/albenaa/albenaa-api/internal/infra/auth"
)

// RequireSession rejects requests without a valid admin session and stores the
// session on the context for handlers that need the acting user.
func RequireSession(store *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.FromRequest(r)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
