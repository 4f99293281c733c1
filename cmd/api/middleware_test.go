// cmd/api/middleware_test.go
package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDHeader(t *testing.T) {
	app, _, _, _ := newTestApplication(t)
	handler := app.routes()

	t.Run("generated when absent", func(t *testing.T) {
		rr := send(t, handler, http.MethodGet, "/v1/healthcheck", "")
		if rr.Header().Get("X-Request-ID") == "" {
			t.Error("expected a generated X-Request-ID header")
		}
	})

	t.Run("client value preserved", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
		req.Header.Set("X-Request-ID", "trace-me-123")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if got := rr.Header().Get("X-Request-ID"); got != "trace-me-123" {
			t.Errorf("X-Request-ID = %q, want the client-supplied value", got)
		}
	})
}

func TestEnableCORS(t *testing.T) {
	app, _, _, _ := newTestApplication(t)
	handler := app.routes()

	t.Run("simple request", func(t *testing.T) {
		rr := send(t, handler, http.MethodGet, "/v1/healthcheck", "")
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/books", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if rr.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected Access-Control-Allow-Methods on a preflight response")
		}
	})
}

func TestRateLimit(t *testing.T) {
	app, _, _, _ := newTestApplication(t)
	app.config.limiter.enabled = true
	app.config.limiter.rps = 0.01
	app.config.limiter.burst = 1
	handler := app.routes()

	rr := send(t, handler, http.MethodGet, "/v1/healthcheck", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", rr.Code, http.StatusOK)
	}

	rr = send(t, handler, http.MethodGet, "/v1/healthcheck", "")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
}

func TestRecoverPanic(t *testing.T) {
	app, _, _, _ := newTestApplication(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	rr := httptest.NewRecorder()
	app.recoverPanic(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if got := rr.Header().Get("Connection"); got != "close" {
		t.Errorf("Connection header = %q, want close", got)
	}
}
