// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

const (
	// UserIDHeader carries the authenticated user ID, set by the gateway.
	UserIDHeader = "X-Authenticated-User-Id"
	// UserEmailHeader carries the authenticated user's email.
	UserEmailHeader = "X-Authenticated-User-Email"
	// TenantIDHeader carries the tenant the request acts on.
	TenantIDHeader = "X-Authenticated-Tenant-Id"
)

type contextKey struct{}

var principalContextKey = contextKey{}

// Principal is the identity the upstream auth layer attaches to every
// request. The service trusts it as already verified.
type Principal struct {
	UserID   string
	Email    string
	TenantID string
}

// PrincipalFromContext retrieves the request principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}

// ContextWithPrincipal returns a new context with the principal attached.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		p := Principal{
			UserID:   r.Header.Get(UserIDHeader),
			Email:    r.Header.Get(UserEmailHeader),
			TenantID: r.Header.Get(TenantIDHeader),
		}

		ctx = ContextWithPrincipal(ctx, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
