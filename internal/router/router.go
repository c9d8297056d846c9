package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/connexcu/voice-backend/internal/handlers"
	"github.com/connexcu/voice-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, webhookSecret string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)

	logm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(logm.LoggerMiddleware)

	vh := handlers.NewVoiceHandlers(deps)
	th := handlers.NewTenantHandlers(deps)

	webhook := middleware.NewWebhookAuth(webhookSecret)
	r.Route("/voice", func(r chi.Router) {
		r.Use(webhook.WebhookAuth)
		r.Mount("/", vh.VoiceRoutes())
	})

	authm := middleware.NewMiddleware(deps.Firebase)
	r.Route("/tenants", func(r chi.Router) {
		r.Use(authm.FirebaseAuth)
		r.Mount("/", th.TenantRoutes())
	})

	return r
}
