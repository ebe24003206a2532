// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// ServiceInterface is the admin registry consulted to authorize status
// transitions. It is process-wide, not per-tenant, since admins span tenants.
type ServiceInterface interface {
	// LookupRole resolves the role an admin holds for a tenant. Returns
	// ErrNotAnAdmin when no entry exists; any other error means the registry
	// was unavailable and callers must fail closed.
	LookupRole(ctx context.Context, adminID, tenantID string) (Role, error)
	Grant(ctx context.Context, adminID, tenantScope string, role Role) (*types.AdminRegistryEntry, error)
	Revoke(ctx context.Context, adminID, tenantScope string) error
	List(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error)
}

// StorageInterface is the subset of the registry store the service needs.
type StorageInterface interface {
	GetRegistryEntry(ctx context.Context, adminID, tenantID string) (*types.AdminRegistryEntry, error)
	InsertRegistryEntry(ctx context.Context, entry *types.AdminRegistryEntry) (*types.AdminRegistryEntry, error)
	DeleteRegistryEntry(ctx context.Context, adminID, tenantScope string) error
	ListRegistryEntries(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error)
}
