// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"github.com/canonical/onboarding-service/internal/types"
)

// Project computes the read-only status view for a draft. It is recomputed
// on every read and never persisted, so it cannot drift from the
// authoritative record.
//
// A nil draft maps to the not_started view with editing allowed. The
// `created` status is reachable only through a downstream organization
// creation step, never through this service's transition graph, but the
// projection still treats it as terminal for editing.
func Project(draft *types.InstitutionDraft) types.InstitutionStatusData {
	if draft == nil {
		return types.InstitutionStatusData{
			Status:  types.StatusNotStarted,
			CanEdit: true,
		}
	}

	organizationCompleted := draft.InstitutionName != ""
	verificationCompleted := draft.Website != ""

	updatedAt := draft.UpdatedAt

	return types.InstitutionStatusData{
		Status:      draft.Status,
		LastUpdated: &updatedAt,
		CanEdit:     draft.Status != types.StatusApproved && draft.Status != types.StatusCreated,
		CompletionStatus: types.CompletionStatus{
			OrganizationCompleted: organizationCompleted,
			VerificationCompleted: verificationCompleted,
			ReadyForSubmission:    organizationCompleted && verificationCompleted,
		},
	}
}
