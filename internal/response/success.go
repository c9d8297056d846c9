package response

import (
	"encoding/json"
	"net/http"

	"github.com/connexcu/voice-backend/pkg/logger"
)

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ToolEnvelope wraps a completed tool invocation. Result always carries a
// "message" field the voice layer reads aloud.
type ToolEnvelope struct {
	Success bool   `json:"success"`
	Tool    string `json:"tool"`
	Result  any    `json:"result"`
}

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	h.write(w, r, status, SuccessEnvelope{
		Success: true,
		Data:    data,
	})
}

func (h *responseHandler) WriteToolSuccess(w http.ResponseWriter, r *http.Request, tool string, result any) {
	h.write(w, r, http.StatusOK, ToolEnvelope{
		Success: true,
		Tool:    tool,
		Result:  result,
	})
}

func (h *responseHandler) write(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Last-ditch logging; can't return an error now
		log := logger.FromContext(r.Context())
		log.Error("failed to encode success response", "error", err, "status", status)
	}
}
