package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChain_AppliesInOrder(t *testing.T) {
	t.Parallel()
	var order []string

	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	chained := Chain(handler, tag("first"), tag("second"))
	chained.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	t.Parallel()
	handler := &captureHandler{}

	rr := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rr.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if GetRequestID(handler.ctx) != id {
		t.Errorf("expected context request id %q, got %q", id, GetRequestID(handler.ctx))
	}
}

func TestRequestID_HonorsInboundHeader(t *testing.T) {
	t.Parallel()
	handler := &captureHandler{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("expected 'req-42', got %q", got)
	}
	if GetRequestID(handler.ctx) != "req-42" {
		t.Errorf("expected context request id 'req-42', got %q", GetRequestID(handler.ctx))
	}
}

func TestRecovery_ConvertsPanicTo500Problem(t *testing.T) {
	t.Parallel()
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom: secret internals")
	})

	rr := httptest.NewRecorder()
	Recovery(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
	if strings.Contains(rr.Body.String(), "secret internals") {
		t.Error("panic value must not leak to the client")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	t.Parallel()
	mw := CORS([]string{"http://localhost:3000"})
	handler := &captureHandler{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin to be echoed, got %q", got)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()
	mw := CORS([]string{"http://localhost:3000"})
	handler := &captureHandler{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	t.Parallel()
	mw := CORS([]string{"*"})
	handler := &captureHandler{}

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status 204 for preflight, got %d", rr.Code)
	}
	if handler.called {
		t.Error("handler should not run for preflight")
	}
}
