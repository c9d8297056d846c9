package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/internal/response"
)

type TenantService interface {
	GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest) (*models.Tenant, error)
	UpdateCoreCredentials(ctx context.Context, tenantID string, req dto.UpdateCoreCredentialsRequest) error
	DeleteCoreCredentials(ctx context.Context, tenantID string) error
	ListAuditEvents(ctx context.Context, memberID string, limit int) ([]models.AuditEvent, error)
}

type tenantHandlers struct {
	ResponseHandler response.ResponseHandler
	TenantSvc       TenantService
}

func NewTenantHandlers(deps *Deps) *tenantHandlers {
	return &tenantHandlers{
		ResponseHandler: deps.ResponseHandler,
		TenantSvc:       deps.TenantSvc,
	}
}

func (h *tenantHandlers) TenantRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{tenantId}", h.GetTenant)
	r.Put("/{tenantId}", h.UpdateTenant)
	r.Put("/{tenantId}/core-credentials", h.UpdateCoreCredentials)
	r.Delete("/{tenantId}/core-credentials", h.DeleteCoreCredentials)
	r.Get("/{tenantId}/audit-events", h.ListAuditEvents)
	return r
}

func (h *tenantHandlers) GetTenant(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	tenant, err := h.TenantSvc.GetTenant(r.Context(), tenantID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tenant)
}

func (h *tenantHandlers) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	var req dto.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewMalformedRequestError())
		return
	}

	tenant, err := h.TenantSvc.UpdateTenant(r.Context(), tenantID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tenant)
}

func (h *tenantHandlers) UpdateCoreCredentials(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	var req dto.UpdateCoreCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewMalformedRequestError())
		return
	}

	if err := h.TenantSvc.UpdateCoreCredentials(r.Context(), tenantID, req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *tenantHandlers) DeleteCoreCredentials(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")

	if err := h.TenantSvc.DeleteCoreCredentials(r.Context(), tenantID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *tenantHandlers) ListAuditEvents(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("memberId")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.TenantSvc.ListAuditEvents(r.Context(), memberID, limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, events)
}
