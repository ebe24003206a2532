// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"context"

	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

// ServiceInterface is the onboarding draft service. All operations for the
// same tenant are serialized by that tenant's actor; operations for different
// tenants run in parallel.
type ServiceInterface interface {
	// CreateOrGetDraft returns the tenant's draft, creating an empty one in
	// status draft if none exists. The second call with the same tenant is a
	// pure read.
	CreateOrGetDraft(ctx context.Context, tenantID, userID, userEmail string) (*types.InstitutionDraft, error)
	GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error)
	// UpdateDraft applies a partial profile update, subject to the edit policy
	// for the draft's current status.
	UpdateDraft(ctx context.Context, tenantID, userID string, patch *types.DraftPatch) (*types.InstitutionDraft, error)
	// SubmitDraft moves the draft to pending_verification once the required
	// profile fields are present.
	SubmitDraft(ctx context.Context, tenantID, userID string) (*types.InstitutionDraft, error)
	// AdminTransition moves the draft along the admin portion of the lifecycle
	// graph. The caller's role is resolved through the admin registry; a
	// registry failure denies the transition.
	AdminTransition(ctx context.Context, tenantID, adminID string, requested types.Status) (*types.InstitutionDraft, error)
	// GetStatus returns the derived status view for the tenant, including the
	// not_started projection when no draft exists.
	GetStatus(ctx context.Context, tenantID string) (*types.InstitutionStatusData, error)
	// ListPendingDrafts returns drafts awaiting admin review.
	ListPendingDrafts(ctx context.Context) ([]*types.InstitutionDraft, error)
	// Drain stops accepting new operations and waits for in-flight ones.
	Drain(ctx context.Context) error
}

// StorageInterface is the subset of the draft store the service needs.
type StorageInterface interface {
	GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error)
	InsertDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error)
	UpdateDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error)
	ListDraftsByStatus(ctx context.Context, statuses ...types.Status) ([]*types.InstitutionDraft, error)
}

// RegistryInterface is the admin registry lookup consulted on admin
// transitions. Kept minimal so tests can substitute a fake registry.
type RegistryInterface interface {
	LookupRole(ctx context.Context, adminID, tenantID string) (registry.Role, error)
}

// DispatcherInterface delivers the approval notification. Failures are soft;
// the service never rolls back a transition over a failed send.
type DispatcherInterface interface {
	DispatchApproval(ctx context.Context, draft *types.InstitutionDraft) error
}
