package middleware

import (
	"net/http"

	"github.com/lulu-kitchen/recipe-hub/internal/config"
)

// APIKeyAuth middleware validates the "api_key" header against the
// configured keys. With no keys configured it is a pass-through, which
// is the default for a household deployment.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(cfg.APIKeys) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("api_key")
			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			for _, validKey := range cfg.APIKeys {
				if apiKey == validKey {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
		})
	}
}
