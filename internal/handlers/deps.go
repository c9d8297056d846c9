package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/connexcu/voice-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ToolSvc         ToolService
	TenantSvc       TenantService
	Firebase        *auth.Client
}
