// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

// Service coordinates institution onboarding drafts. Each tenant's draft is
// owned by a single actor, so every read-modify-write for that tenant is
// linearized regardless of how many callers race on it.
type Service struct {
	store      StorageInterface
	registry   RegistryInterface
	dispatcher DispatcherInterface
	pool       *actorPool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type opResult struct {
	draft *types.InstitutionDraft
	err   error
}

// perform runs op on the tenant's actor and waits for its result. The op is
// detached from the caller's cancellation: once enqueued it runs to
// completion so an abandoned request can never leave a write half-applied.
// A caller that gives up gets ctx.Err while the op still finishes.
func (s *Service) perform(ctx context.Context, tenantID string, op func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error)) (*types.InstitutionDraft, error) {
	results := make(chan opResult, 1)
	opCtx := context.WithoutCancel(ctx)

	if err := s.pool.submit(tenantID, func(st *actorState) {
		draft, err := op(opCtx, st)
		results <- opResult{draft: draft, err: err}
	}); err != nil {
		return nil, err
	}

	select {
	case r := <-results:
		return r.draft, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ensureLoaded rehydrates the actor's state from the store when it is not
// resident or a previous write left it in doubt. A missing row is a valid
// loaded state with a nil draft.
func (s *Service) ensureLoaded(ctx context.Context, tenantID string, st *actorState) error {
	if st.loaded && !st.stale {
		return nil
	}

	draft, err := s.store.GetDraft(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			st.draft = nil
			st.loaded = true
			st.stale = false
			return nil
		}

		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	st.draft = draft
	st.loaded = true
	st.stale = false

	return nil
}

// persistUpdate writes the draft back and refreshes the resident state. On
// error the outcome is unknown, so the state is marked stale and the next
// operation re-reads before trusting it.
func (s *Service) persistUpdate(ctx context.Context, st *actorState, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	stored, err := s.store.UpdateDraft(ctx, draft)
	if err != nil {
		st.stale = true
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	st.draft = stored

	return stored, nil
}

// CreateOrGetDraft returns the tenant's draft, creating an empty one when
// none exists. Repeated calls with the same tenant are pure reads.
func (s *Service) CreateOrGetDraft(ctx context.Context, tenantID, userID, userEmail string) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.CreateOrGetDraft")
	defer span.End()

	return s.perform(ctx, tenantID, func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error) {
		if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
			return nil, err
		}

		if st.draft != nil {
			return st.draft, nil
		}

		stored, err := s.store.InsertDraft(ctx, &types.InstitutionDraft{
			TenantID:  tenantID,
			Status:    types.StatusDraft,
			UserID:    userID,
			UserEmail: userEmail,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				// Another replica created the row. Re-read it.
				st.stale = true
				if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
					return nil, err
				}
				return st.draft, nil
			}

			st.stale = true
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		st.draft = stored

		s.logger.Debugf("created onboarding draft for tenant %s", tenantID)

		return stored, nil
	})
}

// GetDraft returns the tenant's draft or ErrDraftNotFound.
func (s *Service) GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.GetDraft")
	defer span.End()

	return s.perform(ctx, tenantID, func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error) {
		if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
			return nil, err
		}

		if st.draft == nil {
			return nil, ErrDraftNotFound
		}

		return st.draft, nil
	})
}

// UpdateDraft applies a partial profile update. The edit policy for the
// draft's current status decides whether the caller may still modify it.
func (s *Service) UpdateDraft(ctx context.Context, tenantID, userID string, patch *types.DraftPatch) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.UpdateDraft")
	defer span.End()

	return s.perform(ctx, tenantID, func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error) {
		if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
			return nil, err
		}

		if st.draft == nil {
			return nil, ErrDraftNotFound
		}

		if decision := CanUserUpdate(st.draft.Status); !decision.CanUpdate {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, decision.Reason)
		}

		updated := *st.draft
		applyPatch(&updated, patch)

		persisted, err := s.persistUpdate(ctx, st, &updated)
		if err != nil {
			return nil, err
		}

		s.logger.Security().DraftModified(userID, tenantID)

		return persisted, nil
	})
}

// SubmitDraft moves the draft from draft to pending_verification once the
// required profile fields are present.
func (s *Service) SubmitDraft(ctx context.Context, tenantID, userID string) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.SubmitDraft")
	defer span.End()

	return s.perform(ctx, tenantID, func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error) {
		if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
			return nil, err
		}

		if st.draft == nil {
			return nil, ErrDraftNotFound
		}

		if !CanTransition(st.draft.Status, types.StatusPendingVerification) {
			return nil, fmt.Errorf("%w: cannot submit from %s", ErrInvalidTransition, st.draft.Status)
		}

		if st.draft.InstitutionName == "" || st.draft.Website == "" {
			return nil, fmt.Errorf("%w: institution name and website are required", ErrIncompleteDraft)
		}

		updated := *st.draft
		updated.Status = types.StatusPendingVerification

		stored, err := s.persistUpdate(ctx, st, &updated)
		if err != nil {
			return nil, err
		}

		s.logger.Security().StatusTransition(userID, tenantID, string(types.StatusDraft), string(types.StatusPendingVerification))

		return stored, nil
	})
}

// AdminTransition moves the draft along the admin portion of the lifecycle
// graph. The caller's role is resolved through the admin registry before the
// actor state is touched; a registry outage denies the transition rather
// than letting it through.
func (s *Service) AdminTransition(ctx context.Context, tenantID, adminID string, requested types.Status) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.AdminTransition")
	defer span.End()

	return s.perform(ctx, tenantID, func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error) {
		role, err := s.registry.LookupRole(ctx, adminID, tenantID)
		if err != nil {
			if errors.Is(err, registry.ErrNotAnAdmin) {
				s.logger.Security().AuthzFailure(adminID, fmt.Sprintf("transition tenant %s to %s", tenantID, requested))
				return nil, fmt.Errorf("%w: %s is not a registered admin", registry.ErrNotAnAdmin, adminID)
			}

			s.logger.Errorf("admin registry lookup failed for %s: %v", adminID, err)

			return nil, fmt.Errorf("%w: authorization could not be verified", ErrPermissionDenied)
		}

		if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
			return nil, err
		}

		if st.draft == nil {
			return nil, ErrDraftNotFound
		}

		current := st.draft.Status

		if err := CanAdminChangeStatus(current, requested, role); err != nil {
			if errors.Is(err, ErrPermissionDenied) {
				s.logger.Security().AuthzFailure(adminID, fmt.Sprintf("transition tenant %s to %s", tenantID, requested))
			}
			return nil, err
		}

		updated := *st.draft
		updated.Status = requested

		stored, err := s.persistUpdate(ctx, st, &updated)
		if err != nil {
			return nil, err
		}

		s.logger.Security().StatusTransition(adminID, tenantID, string(current), string(requested))

		if current == types.StatusVerifying && requested == types.StatusApproved {
			// The transition is already durable. A failed send is logged and
			// recovered manually, never rolled back.
			if err := s.dispatcher.DispatchApproval(ctx, stored); err != nil {
				s.logger.Errorf("approval notification failed for tenant %s: %v", tenantID, err)
			}
		}

		return stored, nil
	})
}

// GetStatus returns the derived status view for the tenant. A tenant with no
// draft yet projects to not_started with editing allowed.
func (s *Service) GetStatus(ctx context.Context, tenantID string) (*types.InstitutionStatusData, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.GetStatus")
	defer span.End()

	var data types.InstitutionStatusData

	_, err := s.perform(ctx, tenantID, func(ctx context.Context, st *actorState) (*types.InstitutionDraft, error) {
		if err := s.ensureLoaded(ctx, tenantID, st); err != nil {
			return nil, err
		}

		data = Project(st.draft)

		return st.draft, nil
	})
	if err != nil {
		return nil, err
	}

	return &data, nil
}

// ListPendingDrafts returns drafts awaiting admin review across all tenants.
// This is a cross-tenant read of committed rows, so it bypasses the actors.
func (s *Service) ListPendingDrafts(ctx context.Context) ([]*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "institution.Service.ListPendingDrafts")
	defer span.End()

	drafts, err := s.store.ListDraftsByStatus(ctx, types.StatusPendingVerification, types.StatusVerifying)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return drafts, nil
}

// Drain stops accepting operations and waits for in-flight ones to finish.
func (s *Service) Drain(ctx context.Context) error {
	return s.pool.drain(ctx)
}

func applyPatch(draft *types.InstitutionDraft, patch *types.DraftPatch) {
	if patch == nil {
		return
	}

	if patch.InstitutionName != nil {
		draft.InstitutionName = *patch.InstitutionName
	}
	if patch.Website != nil {
		draft.Website = *patch.Website
	}
	if patch.Description != nil {
		draft.Description = *patch.Description
	}
	if patch.ContactPhone != nil {
		draft.ContactPhone = *patch.ContactPhone
	}
}

// NewService returns a Service backed by the given store, registry and
// dispatcher.
func NewService(store StorageInterface, reg RegistryInterface, dispatcher DispatcherInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.store = store
	s.registry = reg
	s.dispatcher = dispatcher
	s.pool = newActorPool()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
