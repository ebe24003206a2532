// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
)

// StorageInterface is the draft actor's backing store. Every row is addressed
// by tenant ID and is only ever written by that tenant's actor.
type StorageInterface interface {
	GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error)
	InsertDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error)
	UpdateDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error)
	ListDraftsByStatus(ctx context.Context, statuses ...types.Status) ([]*types.InstitutionDraft, error)
}

// RegistryStorageInterface is the admin registry's backing store, written
// exclusively by the registry service.
type RegistryStorageInterface interface {
	GetRegistryEntry(ctx context.Context, adminID, tenantID string) (*types.AdminRegistryEntry, error)
	InsertRegistryEntry(ctx context.Context, entry *types.AdminRegistryEntry) (*types.AdminRegistryEntry, error)
	DeleteRegistryEntry(ctx context.Context, adminID, tenantScope string) error
	ListRegistryEntries(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error)
}
