package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentecare-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRequireProfessional(t *testing.T) {
	tests := []struct {
		name     string
		userType *entity.UserType
		want     int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"patient", ptr(entity.UserTypePatient), http.StatusForbidden},
		{"professional", ptr(entity.UserTypeProfessional), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/professionals/user/x", nil)
			if tt.userType != nil {
				req = req.WithContext(context.WithValue(req.Context(), UserTypeKey, *tt.userType))
			}
			rec := httptest.NewRecorder()

			RequireProfessional(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

type fakeCounter struct {
	counts map[string]int64
	err    error
}

func (c *fakeCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if c.err != nil {
		return 0, 0, c.err
	}
	c.counts[key]++
	return c.counts[key], window, nil
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int64{}}
	h := RateLimit(discardLogger(), counter, "search", 2, time.Minute)(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/professionals/search", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)

		if i < 2 && last.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, last.Code)
		}
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.Code)
	}
	if got := last.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Fatalf("X-RateLimit-Remaining = %q, want 0", got)
	}
	if got := last.Header().Get("Retry-After"); got != "60" {
		t.Fatalf("Retry-After = %q, want 60", got)
	}
	if _, ok := counter.counts["rl:search:ip:203.0.113.7"]; !ok {
		t.Fatalf("unexpected keys: %v", counter.counts)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	counter := &fakeCounter{err: errors.New("redis down")}
	h := RateLimit(discardLogger(), counter, "search", 1, time.Minute)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/professionals/search", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequestIDPropagatesOrAssigns(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if seen == "" || seen == "abc-123" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("request id not assigned: ctx=%q header=%q", seen, rec.Header().Get(RequestIDHeader))
	}
}
