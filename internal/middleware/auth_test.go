package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lulu-kitchen/recipe-hub/internal/config"
)

func TestAPIKeyAuth(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		keys       []string
		headerKey  string
		wantStatus int
	}{
		{
			name:       "no keys configured passes through",
			keys:       nil,
			headerKey:  "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key rejected",
			keys:       []string{"secret"},
			headerKey:  "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key forbidden",
			keys:       []string{"secret"},
			headerKey:  "nope",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid key accepted",
			keys:       []string{"secret", "other"},
			headerKey:  "other",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := APIKeyAuth(config.AuthConfig{APIKeys: tt.keys})

			req := httptest.NewRequest(http.MethodPost, "/api/pantry", nil)
			if tt.headerKey != "" {
				req.Header.Set("api_key", tt.headerKey)
			}
			w := httptest.NewRecorder()

			mw(okHandler).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
