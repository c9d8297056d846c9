package middleware

import (
	"crypto/subtle"
	"net/http"
)

// WebhookAuth verifies the shared secret the voice platform sends with every
// tool invocation. An empty configured secret disables the check (local dev).
type webhookAuth struct {
	secret string
}

func NewWebhookAuth(secret string) *webhookAuth {
	return &webhookAuth{secret: secret}
}

func (m *webhookAuth) WebhookAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.secret != "" {
			provided := r.Header.Get("X-Webhook-Secret")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) != 1 {
				http.Error(w, "invalid webhook secret", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
