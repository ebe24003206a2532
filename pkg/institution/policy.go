// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"fmt"

	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

// Decision is a policy verdict. Reason is set only when the action is denied
// and is returned to the caller verbatim.
type Decision struct {
	CanUpdate bool
	Reason    string
}

// transitions is the single authoritative edge list of the draft lifecycle.
// Approved and rejected are terminal; there is no resurrection path.
var transitions = map[types.Status][]types.Status{
	types.StatusDraft:               {types.StatusPendingVerification},
	types.StatusPendingVerification: {types.StatusVerifying},
	types.StatusVerifying:           {types.StatusApproved, types.StatusRejected},
}

// adminStatuses are the targets an admin may request.
var adminStatuses = map[types.Status]struct{}{
	types.StatusVerifying: {},
	types.StatusApproved:  {},
	types.StatusRejected:  {},
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to types.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanUserUpdate reports whether the submitting user may still modify the
// draft's profile fields in the given status. Every mutation path must
// consult this before touching state.
func CanUserUpdate(status types.Status) Decision {
	switch status {
	case types.StatusDraft, types.StatusPendingVerification:
		return Decision{CanUpdate: true}
	case types.StatusVerifying:
		return Decision{Reason: "currently being reviewed"}
	case types.StatusApproved:
		return Decision{Reason: "approved application"}
	case types.StatusRejected:
		return Decision{Reason: "rejected application"}
	default:
		return Decision{Reason: "application cannot be modified"}
	}
}

// CanAdminChangeStatus checks whether an admin holding the given role may
// move a draft from current to requested. It returns nil when the change is
// allowed, ErrPermissionDenied when the role is insufficient, and
// ErrInvalidTransition when the requested status is not reachable.
func CanAdminChangeStatus(current, requested types.Status, role registry.Role) error {
	if !role.CanReview() {
		return fmt.Errorf("%w: role %q cannot review applications", ErrPermissionDenied, role)
	}

	if _, ok := adminStatuses[requested]; !ok {
		return fmt.Errorf("%w: %s is not an admin-assignable status", ErrInvalidTransition, requested)
	}

	if !CanTransition(current, requested) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, current, requested)
	}

	return nil
}

// StatusDescription returns the fixed human-readable text for a status, used
// by the UI and audit logs. It plays no part in authorization.
func StatusDescription(status types.Status) string {
	switch status {
	case types.StatusNotStarted:
		return "Application not started"
	case types.StatusDraft:
		return "Application in progress"
	case types.StatusPendingVerification:
		return "Application submitted and awaiting review"
	case types.StatusVerifying:
		return "Application under review"
	case types.StatusApproved:
		return "Application approved"
	case types.StatusRejected:
		return "Application rejected"
	case types.StatusCreated:
		return "Organization created"
	default:
		return "Unknown status"
	}
}
