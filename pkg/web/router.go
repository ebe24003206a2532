// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/onboarding-service/internal/identity"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/institution"
	"github.com/canonical/onboarding-service/pkg/metrics"
	"github.com/canonical/onboarding-service/pkg/registry"
	"github.com/canonical/onboarding-service/pkg/status"
)

func NewRouter(
	institutionService institution.ServiceInterface,
	registryService registry.ServiceInterface,
	identityMiddleware *identity.Middleware,
	authMiddleware *authentication.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	// Unauthenticated operational endpoints.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware.Authenticate())
		}
		r.Use(identityMiddleware.HTTPMiddleware)

		institutionAPI := institution.NewAPI(institutionService, tracer, logger)
		institutionAPI.RegisterEndpoints(r)

		adminGate := registry.NewMiddleware(registryService, tracer, monitor, logger)

		// Review queue: any registered admin for the route's scope.
		r.Group(func(ar chi.Router) {
			ar.Use(adminGate.RequireRole(registry.RoleAdmin, registry.RoleSuperadmin))
			institutionAPI.RegisterAdminEndpoints(ar)
		})

		// Registry provisioning: wildcard-scope superadmins only.
		r.Group(func(pr chi.Router) {
			pr.Use(adminGate.RequireRole(registry.RoleSuperadmin))
			registry.NewAPI(registryService, tracer, logger).RegisterEndpoints(pr)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
