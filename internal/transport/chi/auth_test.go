package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveAuth(t *testing.T, keys []string, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	handler := BearerAuthMiddleware(keys)(okHandler())

	req := httptest.NewRequest(http.MethodPost, path, http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware_EmptyKeys_PassThrough(t *testing.T) {
	if rr := serveAuth(t, nil, "/v1/query", ""); rr.Code != http.StatusOK {
		t.Errorf("empty keys: got %d, want %d", rr.Code, http.StatusOK)
	}
	if rr := serveAuth(t, []string{"", ""}, "/v1/query", ""); rr.Code != http.StatusOK {
		t.Errorf("empty string keys: got %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestAuthMiddleware_MissingHeader_401(t *testing.T) {
	rr := serveAuth(t, []string{"secret"}, "/v1/query", "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("missing header: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != ErrorCodeUnauthorized {
		t.Errorf("error code: got %s, want %s", errResp.Code, ErrorCodeUnauthorized)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := map[string]string{
		"basic scheme":  "Basic dXNlcjpwYXNz",
		"invalid token": "Bearer wrong-key",
		"empty token":   "Bearer ",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			if rr := serveAuth(t, []string{"secret"}, "/v1/query", header); rr.Code != http.StatusUnauthorized {
				t.Errorf("got %d, want %d", rr.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthMiddleware_MultipleKeys(t *testing.T) {
	for _, key := range []string{"key1", "key2"} {
		if rr := serveAuth(t, []string{"key1", "key2"}, "/v1/query", "Bearer "+key); rr.Code != http.StatusOK {
			t.Errorf("key %s: got %d, want %d", key, rr.Code, http.StatusOK)
		}
	}
}

func TestAuthMiddleware_ExemptPaths(t *testing.T) {
	for _, path := range []string{"/health", "/metrics", "/v1/meta"} {
		if rr := serveAuth(t, []string{"secret"}, path, ""); rr.Code != http.StatusOK {
			t.Errorf("exempt path %s: got %d, want %d", path, rr.Code, http.StatusOK)
		}
	}
}
