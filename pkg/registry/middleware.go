// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"errors"
	"net/http"
	"slices"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/onboarding-service/internal/identity"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
)

// Middleware gates admin endpoints on the caller's registry role. Routes
// carrying a {tenantID} URL parameter are authorized against that tenant's
// scope; routes without one are cross-tenant and require a wildcard-scope
// entry.
type Middleware struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RequireRole rejects requests whose principal does not hold one of the
// given roles for the route's scope. Registry lookup failures deny the
// request, the same fail-closed stance the transition path takes.
func (m *Middleware) RequireRole(roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "registry.Middleware.RequireRole")
			defer span.End()

			principal, ok := identity.PrincipalFromContext(ctx)
			if !ok || principal.UserID == "" {
				m.forbidden(w, "", r.URL.Path)
				return
			}

			scope := storage.WildcardScope
			if tenantID := chi.URLParam(r, "tenantID"); tenantID != "" {
				scope = tenantID
			}

			role, err := m.service.LookupRole(ctx, principal.UserID, scope)
			if err != nil {
				if !errors.Is(err, ErrNotAnAdmin) {
					m.logger.Errorf("registry lookup failed, denying %s: %v", r.URL.Path, err)
				}
				m.forbidden(w, principal.UserID, r.URL.Path)
				return
			}

			if !slices.Contains(roles, role) {
				m.forbidden(w, principal.UserID, r.URL.Path)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) forbidden(w http.ResponseWriter, subject, action string) {
	m.logger.Security().AuthzFailure(subject, action)
	http.Error(w, "forbidden", http.StatusForbidden)
}
