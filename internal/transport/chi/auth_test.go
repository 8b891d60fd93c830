package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func authTestHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth_Disabled(t *testing.T) {
	mw := BearerAuthMiddleware(nil)
	h := mw(authTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/strings", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("no keys configured: status = %d, want 200", rr.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret-key"})
	h := mw(authTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/strings", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-key")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", rr.Code)
	}
}

func TestBearerAuth_Rejections(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret-key"})
	h := mw(authTestHandler())

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic secret-key"},
		{"wrong token", "Bearer wrong-key"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/strings", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rr.Code)
			}
		})
	}
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	mw := BearerAuthMiddleware([]string{"secret-key"})
	h := mw(authTestHandler())

	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200 without auth", path, rr.Code)
		}
	}
}

func TestBearerAuth_IgnoresEmptyKeys(t *testing.T) {
	// Blank entries in the key list must not become valid tokens.
	mw := BearerAuthMiddleware([]string{""})
	h := mw(authTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/strings", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("only empty keys: status = %d, want pass-through 200", rr.Code)
	}
}
