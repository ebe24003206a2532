// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
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
	mux.Get("/api/v0/admin/registry", a.list)
	mux.Post("/api/v0/admin/registry", a.grant)
	mux.Delete("/api/v0/admin/registry/{adminID}", a.revoke)
}

type grantRequest struct {
	AdminID     string `json:"admin_id" validate:"required"`
	TenantScope string `json:"tenant_scope"`
	Role        string `json:"role" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registry.API.list")
	defer span.End()

	entries, err := a.service.List(ctx, r.URL.Query().Get("scope"))
	if err != nil {
		a.logger.Errorf("failed to list registry entries: %v", err)
		http.Error(w, "failed to list registry entries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		a.logger.Errorf("failed to encode registry entries: %v", err)
	}
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registry.API.grant")
	defer span.End()

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.StructCtx(ctx, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := a.service.Grant(ctx, req.AdminID, req.TenantScope, Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrAlreadyGranted):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			a.logger.Errorf("failed to grant admin role: %v", err)
			http.Error(w, "failed to grant admin role", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		a.logger.Errorf("failed to encode registry entry: %v", err)
	}
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registry.API.revoke")
	defer span.End()

	adminID := chi.URLParam(r, "adminID")
	if adminID == "" {
		http.Error(w, "admin ID is required", http.StatusBadRequest)
		return
	}

	if err := a.service.Revoke(ctx, adminID, r.URL.Query().Get("scope")); err != nil {
		if errors.Is(err, ErrNotAnAdmin) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to revoke admin role: %v", err)
		http.Error(w, "failed to revoke admin role", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
