package session

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey struct{}

// FromContext returns the session injected by RequireRole.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}

// RequireRole gates a route on a valid session with the given role.
// Missing or foreign sessions get a 401 JSON body; the web frontend
// turns that into a redirect to the matching login page.
func RequireRole(store *Store, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := store.FromRequest(r)
			if !ok || s.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "login required",
					"role":  role,
				})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, s)))
		})
	}
}
