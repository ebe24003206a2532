// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Status is the lifecycle state of an institution draft.
type Status string

const (
	// StatusNotStarted is never stored; it is projected when no draft exists.
	StatusNotStarted          Status = "not_started"
	StatusDraft               Status = "draft"
	StatusPendingVerification Status = "pending_verification"
	StatusVerifying           Status = "verifying"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	// StatusCreated is injected by the downstream organization-creation step.
	// This service never produces it but must treat it as terminal.
	StatusCreated Status = "created"
)

// InstitutionDraft is the authoritative onboarding record for one tenant.
// It is exclusively owned by that tenant's draft actor.
type InstitutionDraft struct {
	TenantID        string    `db:"tenant_id"`
	Status          Status    `db:"status"`
	InstitutionName string    `db:"institution_name"`
	Website         string    `db:"website"`
	Description     string    `db:"description"`
	ContactPhone    string    `db:"contact_phone"`
	UserID          string    `db:"user_id"`
	UserEmail       string    `db:"user_email"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// DraftPatch carries partial profile updates. Nil fields are left untouched.
type DraftPatch struct {
	InstitutionName *string `json:"institution_name,omitempty"`
	Website         *string `json:"website,omitempty"`
	Description     *string `json:"description,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
}

// AdminRegistryEntry maps an admin identity to a role within a tenant scope.
type AdminRegistryEntry struct {
	ID          string    `db:"id"`
	AdminID     string    `db:"admin_id"`
	TenantScope string    `db:"tenant_scope"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

// CompletionStatus reports which parts of the application are filled in.
type CompletionStatus struct {
	OrganizationCompleted bool `json:"organization_completed"`
	VerificationCompleted bool `json:"verification_completed"`
	ReadyForSubmission    bool `json:"ready_for_submission"`
}

// InstitutionStatusData is the derived read-only view of a draft. It is
// recomputed on every read and never persisted.
type InstitutionStatusData struct {
	Status           Status           `json:"status"`
	LastUpdated      *time.Time       `json:"last_updated,omitempty"`
	CanEdit          bool             `json:"can_edit"`
	CompletionStatus CompletionStatus `json:"completion_status"`
}
