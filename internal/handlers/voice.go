package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/response"
	"github.com/connexcu/voice-backend/pkg/logger"
)

type ToolService interface {
	Execute(ctx context.Context, inv dto.ToolInvocation) (any, error)
}

type voiceHandlers struct {
	ResponseHandler response.ResponseHandler
	ToolSvc         ToolService
}

func NewVoiceHandlers(deps *Deps) *voiceHandlers {
	return &voiceHandlers{
		ResponseHandler: deps.ResponseHandler,
		ToolSvc:         deps.ToolSvc,
	}
}

func (h *voiceHandlers) VoiceRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/tool", h.InvokeTool)
	return r
}

// InvokeTool is the single webhook the voice platform calls. Decode failures
// are a distinct 400 class; everything past the dispatcher comes back as a
// speech-shaped result, even on core-banking failure.
func (h *voiceHandlers) InvokeTool(w http.ResponseWriter, r *http.Request) {
	var inv dto.ToolInvocation
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewMalformedRequestError())
		return
	}
	if inv.ToolName == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewUnknownToolError(""))
		return
	}

	log := logger.FromContext(r.Context())
	log.Debug("decoded tool invocation",
		"tool", inv.ToolName,
		"session_id", inv.SessionID,
		"call_sid", inv.CallSID,
		"tenant_id", inv.TenantID,
		"cu_id", inv.CUID)

	result, err := h.ToolSvc.Execute(r.Context(), inv)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteToolSuccess(w, r, inv.ToolName, result)
}
