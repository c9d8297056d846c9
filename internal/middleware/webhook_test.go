package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid secret passes", func(t *testing.T) {
		mw := NewWebhookAuth("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/voice/tool", nil)
		req.Header.Set("X-Webhook-Secret", "topsecret")
		rec := httptest.NewRecorder()

		mw.WebhookAuth(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		mw := NewWebhookAuth("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/voice/tool", nil)
		req.Header.Set("X-Webhook-Secret", "guess")
		rec := httptest.NewRecorder()

		mw.WebhookAuth(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		mw := NewWebhookAuth("topsecret")
		req := httptest.NewRequest(http.MethodPost, "/voice/tool", nil)
		rec := httptest.NewRecorder()

		mw.WebhookAuth(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("empty configured secret disables check", func(t *testing.T) {
		mw := NewWebhookAuth("")
		req := httptest.NewRequest(http.MethodPost, "/voice/tool", nil)
		rec := httptest.NewRecorder()

		mw.WebhookAuth(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})
}
