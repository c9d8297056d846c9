package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/pkg/logger"
)

// Apology is the fallback utterance for any failure path. The voice layer
// reads the message field verbatim, so it must always be populated.
const Apology = "I'm sorry, I'm having trouble completing that request right now. Please try again in a moment."

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, errText, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errText,
		Message: message,
	}); err != nil {
		// Use context logger if encoding fails
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.UnknownToolError:
		log.Warn("unknown tool requested", "tool", e.Tool)
		h.WriteError(w, r, http.StatusBadRequest, e.Message,
			"I'm sorry, I can't help with that request.")

	case *errs.MalformedRequestError:
		log.Warn("malformed request body")
		h.WriteError(w, r, http.StatusBadRequest, e.Message, Apology)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, e.Message, e.Message)

	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, e.Message, e.Message)

	case *errs.AlreadyExistsError:
		log.Warn("resource already exists", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, e.Message, e.Message)

	case *errs.DatabaseError:
		log.Error("database error",
			"operation", e.Operation,
			"error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "Tool execution failed", Apology)

	case *errs.ExternalServiceError:
		level := slog.LevelError
		if e.Transient {
			level = slog.LevelWarn
		}
		log.Log(r.Context(), level, "external service error",
			"service", e.Service,
			"transient", e.Transient,
			"error", e.Message)

		status := http.StatusBadGateway
		if e.Transient {
			status = http.StatusServiceUnavailable
		}
		h.WriteError(w, r, status, "Tool execution failed", Apology)

	case *errs.EncryptionError:
		log.Error("encryption error", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "Tool execution failed", Apology)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "Tool execution failed", Apology)
	}
}
