// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/onboarding-service/internal/identity"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/institution/draft", a.createDraft)
	mux.Get("/api/v0/institution/draft", a.getDraft)
	mux.Patch("/api/v0/institution/draft", a.updateDraft)
	mux.Post("/api/v0/institution/draft/submit", a.submitDraft)
	mux.Get("/api/v0/institution/status", a.getStatus)
}

// RegisterAdminEndpoints registers the review-queue routes. They expose every
// tenant's draft, so callers mount them behind a registry role check.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Get("/api/v0/admin/institution/drafts", a.listPendingDrafts)
	mux.Post("/api/v0/admin/institution/{tenantID}/transition", a.adminTransition)
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type draftResponse struct {
	TenantID        string `json:"tenant_id"`
	Status          string `json:"status"`
	StatusText      string `json:"status_text"`
	InstitutionName string `json:"institution_name,omitempty"`
	Website         string `json:"website,omitempty"`
	Description     string `json:"description,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	UpdatedAt       string `json:"updated_at"`
}

func newDraftResponse(draft *types.InstitutionDraft) draftResponse {
	return draftResponse{
		TenantID:        draft.TenantID,
		Status:          string(draft.Status),
		StatusText:      StatusDescription(draft.Status),
		InstitutionName: draft.InstitutionName,
		Website:         draft.Website,
		Description:     draft.Description,
		ContactPhone:    draft.ContactPhone,
		UpdatedAt:       draft.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (identity.Principal, bool) {
	p, ok := identity.PrincipalFromContext(r.Context())
	if !ok || p.TenantID == "" {
		http.Error(w, "missing tenant identity", http.StatusBadRequest)
		return identity.Principal{}, false
	}
	return p, true
}

func (a *API) createDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.createDraft")
	defer span.End()

	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	draft, err := a.service.CreateOrGetDraft(ctx, p.TenantID, p.UserID, p.Email)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newDraftResponse(draft))
}

func (a *API) getDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.getDraft")
	defer span.End()

	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	draft, err := a.service.GetDraft(ctx, p.TenantID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newDraftResponse(draft))
}

func (a *API) updateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.updateDraft")
	defer span.End()

	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var patch types.DraftPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := a.service.UpdateDraft(ctx, p.TenantID, p.UserID, &patch)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newDraftResponse(draft))
}

func (a *API) submitDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.submitDraft")
	defer span.End()

	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	draft, err := a.service.SubmitDraft(ctx, p.TenantID, p.UserID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newDraftResponse(draft))
}

func (a *API) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.getStatus")
	defer span.End()

	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	data, err := a.service.GetStatus(ctx, p.TenantID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, data)
}

func (a *API) listPendingDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.listPendingDrafts")
	defer span.End()

	drafts, err := a.service.ListPendingDrafts(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	responses := make([]draftResponse, 0, len(drafts))
	for _, draft := range drafts {
		responses = append(responses, newDraftResponse(draft))
	}

	a.writeJSON(w, http.StatusOK, responses)
}

func (a *API) adminTransition(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "institution.API.adminTransition")
	defer span.End()

	p, ok := identity.PrincipalFromContext(r.Context())
	if !ok || p.UserID == "" {
		http.Error(w, "missing caller identity", http.StatusBadRequest)
		return
	}

	tenantID := chi.URLParam(r, "tenantID")
	if tenantID == "" {
		http.Error(w, "tenant ID is required", http.StatusBadRequest)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	draft, err := a.service.AdminTransition(ctx, tenantID, p.UserID, types.Status(req.Status))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newDraftResponse(draft))
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, registry.ErrNotAnAdmin), errors.Is(err, ErrPermissionDenied):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrIncompleteDraft):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrStoreUnavailable), errors.Is(err, ErrShuttingDown):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		a.logger.Errorf("unhandled institution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
