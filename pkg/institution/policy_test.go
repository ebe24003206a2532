// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"errors"
	"testing"

	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

func TestCanTransition(t *testing.T) {
	allStatuses := []types.Status{
		types.StatusNotStarted,
		types.StatusDraft,
		types.StatusPendingVerification,
		types.StatusVerifying,
		types.StatusApproved,
		types.StatusRejected,
		types.StatusCreated,
	}

	allowed := map[[2]types.Status]bool{
		{types.StatusDraft, types.StatusPendingVerification}:     true,
		{types.StatusPendingVerification, types.StatusVerifying}: true,
		{types.StatusVerifying, types.StatusApproved}:            true,
		{types.StatusVerifying, types.StatusRejected}:            true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got := CanTransition(from, to)
			want := allowed[[2]types.Status{from, to}]
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanUserUpdate(t *testing.T) {
	testCases := []struct {
		status    types.Status
		canUpdate bool
		reason    string
	}{
		{types.StatusDraft, true, ""},
		{types.StatusPendingVerification, true, ""},
		{types.StatusVerifying, false, "currently being reviewed"},
		{types.StatusApproved, false, "approved application"},
		{types.StatusRejected, false, "rejected application"},
		{types.StatusCreated, false, "application cannot be modified"},
		{types.Status("bogus"), false, "application cannot be modified"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			decision := CanUserUpdate(tc.status)

			if decision.CanUpdate != tc.canUpdate {
				t.Errorf("CanUserUpdate(%s).CanUpdate = %v, want %v", tc.status, decision.CanUpdate, tc.canUpdate)
			}
			if decision.Reason != tc.reason {
				t.Errorf("CanUserUpdate(%s).Reason = %q, want %q", tc.status, decision.Reason, tc.reason)
			}
			if !decision.CanUpdate && decision.Reason == "" {
				t.Errorf("denied update for %s must carry a reason", tc.status)
			}
		})
	}
}

func TestCanAdminChangeStatus(t *testing.T) {
	testCases := []struct {
		name        string
		current     types.Status
		requested   types.Status
		role        registry.Role
		expectedErr error
	}{
		{
			name:      "admin moves submitted draft to verifying",
			current:   types.StatusPendingVerification,
			requested: types.StatusVerifying,
			role:      registry.RoleAdmin,
		},
		{
			name:      "admin approves",
			current:   types.StatusVerifying,
			requested: types.StatusApproved,
			role:      registry.RoleAdmin,
		},
		{
			name:      "superadmin rejects",
			current:   types.StatusVerifying,
			requested: types.StatusRejected,
			role:      registry.RoleSuperadmin,
		},
		{
			name:        "unknown role denied",
			current:     types.StatusVerifying,
			requested:   types.StatusApproved,
			role:        registry.Role("viewer"),
			expectedErr: ErrPermissionDenied,
		},
		{
			name:        "draft is not admin-assignable",
			current:     types.StatusPendingVerification,
			requested:   types.StatusDraft,
			role:        registry.RoleAdmin,
			expectedErr: ErrInvalidTransition,
		},
		{
			name:        "approve from pending skips verifying",
			current:     types.StatusPendingVerification,
			requested:   types.StatusApproved,
			role:        registry.RoleAdmin,
			expectedErr: ErrInvalidTransition,
		},
		{
			name:        "approved is terminal",
			current:     types.StatusApproved,
			requested:   types.StatusRejected,
			role:        registry.RoleSuperadmin,
			expectedErr: ErrInvalidTransition,
		},
		{
			name:        "rejected is terminal",
			current:     types.StatusRejected,
			requested:   types.StatusVerifying,
			role:        registry.RoleAdmin,
			expectedErr: ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanAdminChangeStatus(tc.current, tc.requested, tc.role)

			if tc.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestStatusDescription(t *testing.T) {
	statuses := []types.Status{
		types.StatusNotStarted,
		types.StatusDraft,
		types.StatusPendingVerification,
		types.StatusVerifying,
		types.StatusApproved,
		types.StatusRejected,
		types.StatusCreated,
	}

	seen := make(map[string]types.Status)
	for _, status := range statuses {
		text := StatusDescription(status)
		if text == "" {
			t.Errorf("StatusDescription(%s) is empty", status)
		}
		if prev, ok := seen[text]; ok {
			t.Errorf("StatusDescription(%s) collides with %s", status, prev)
		}
		seen[text] = status
	}
}
