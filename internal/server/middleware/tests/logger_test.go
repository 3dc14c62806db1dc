package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IvanChernomyrdin/go-userhub/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-userhub/internal/shared/logger"
)

// ResponseWriter должен запоминать статус и размер ответа
func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	wr := &middleware.ResponseWriter{ResponseWriter: rec}

	wr.WriteHeader(http.StatusCreated)
	n, err := wr.Write([]byte(`{"message":"ok"}`))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if wr.Status != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, wr.Status)
	}
	if wr.Size != n {
		t.Fatalf("expected size %d, got %d", n, wr.Size)
	}
}

// Если хендлер пишет тело без явного WriteHeader — статус 200
func TestResponseWriter_ImplicitOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	wr := &middleware.ResponseWriter{ResponseWriter: rec}

	if _, err := wr.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if wr.Status != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, wr.Status)
	}
}

// Middleware прозрачен для ответа хендлера
func TestLoggerMiddleware_PassesThrough(t *testing.T) {
	h := middleware.LoggerMiddleware(logger.NewHTTPLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			w.Write([]byte("short and stout"))
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected %d, got %d", http.StatusTeapot, rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
