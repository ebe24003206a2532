// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

// The concurrency properties below need a store whose call pattern can be
// observed across goroutines, so these tests use hand-rolled fakes instead
// of generated mocks.

type fakeStore struct {
	mu     sync.Mutex
	drafts map[string]types.InstitutionDraft

	getCalls    int
	insertCalls int
	updateCalls int

	failUpdates bool
	updateGate  chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{drafts: make(map[string]types.InstitutionDraft)}
}

func (f *fakeStore) GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++

	draft, ok := f.drafts[tenantID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	record := draft
	return &record, nil
}

func (f *fakeStore) InsertDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++

	if _, ok := f.drafts[draft.TenantID]; ok {
		return nil, storage.ErrDuplicateKey
	}

	stored := *draft
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.drafts[draft.TenantID] = stored

	record := stored
	return &record, nil
}

func (f *fakeStore) UpdateDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	if gate := f.gate(); gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.updateCalls++

	if f.failUpdates {
		return nil, errors.New("connection reset")
	}

	if _, ok := f.drafts[draft.TenantID]; !ok {
		return nil, storage.ErrNotFound
	}

	stored := *draft
	stored.UpdatedAt = time.Now()
	f.drafts[draft.TenantID] = stored

	record := stored
	return &record, nil
}

func (f *fakeStore) ListDraftsByStatus(ctx context.Context, statuses ...types.Status) ([]*types.InstitutionDraft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*types.InstitutionDraft
	for _, draft := range f.drafts {
		for _, status := range statuses {
			if draft.Status == status {
				record := draft
				out = append(out, &record)
			}
		}
	}
	return out, nil
}

func (f *fakeStore) gate() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateGate
}

func (f *fakeStore) seed(draft types.InstitutionDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	draft.UpdatedAt = time.Now()
	f.drafts[draft.TenantID] = draft
}

func (f *fakeStore) status(tenantID string) types.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.drafts[tenantID].Status
}

type fakeRegistry struct {
	roles map[string]registry.Role
	err   error
}

func (f *fakeRegistry) LookupRole(ctx context.Context, adminID, tenantID string) (registry.Role, error) {
	if f.err != nil {
		return "", f.err
	}
	role, ok := f.roles[adminID]
	if !ok {
		return "", registry.ErrNotAnAdmin
	}
	return role, nil
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeDispatcher) DispatchApproval(ctx context.Context, draft *types.InstitutionDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeDispatcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestService(store StorageInterface, reg RegistryInterface, dispatcher DispatcherInterface) *Service {
	return NewService(store, reg, dispatcher, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceCreateOrGetDraftIdempotent(t *testing.T) {
	store := newFakeStore()
	s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})
	ctx := context.Background()

	first, err := s.CreateOrGetDraft(ctx, "tenant-1", "user-1", "user@acme.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != types.StatusDraft {
		t.Errorf("expected status %s, got %s", types.StatusDraft, first.Status)
	}

	second, err := s.CreateOrGetDraft(ctx, "tenant-1", "user-1", "user@acme.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.insertCalls != 1 {
		t.Errorf("expected 1 insert, got %d", store.insertCalls)
	}
	if !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Errorf("second call mutated the draft: %v != %v", second.UpdatedAt, first.UpdatedAt)
	}
}

func TestServiceGetDraftNotFound(t *testing.T) {
	s := newTestService(newFakeStore(), &fakeRegistry{}, &fakeDispatcher{})

	if _, err := s.GetDraft(context.Background(), "tenant-unknown"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestServiceUpdateDraft(t *testing.T) {
	name := "Acme University"
	website := "acme.example"

	testCases := []struct {
		name        string
		status      types.Status
		expectedErr error
	}{
		{name: "editable in draft", status: types.StatusDraft},
		{name: "editable in pending_verification", status: types.StatusPendingVerification},
		{name: "locked while verifying", status: types.StatusVerifying, expectedErr: ErrPermissionDenied},
		{name: "locked once approved", status: types.StatusApproved, expectedErr: ErrPermissionDenied},
		{name: "locked once rejected", status: types.StatusRejected, expectedErr: ErrPermissionDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: tc.status, UserID: "user-1"})
			s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})

			draft, err := s.UpdateDraft(context.Background(), "tenant-1", "user-1", &types.DraftPatch{
				InstitutionName: &name,
				Website:         &website,
			})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.InstitutionName != name || draft.Website != website {
				t.Errorf("patch not applied: %+v", draft)
			}
		})
	}
}

// auditLogger is a noop logger whose audit channel is observable.
type auditLogger struct {
	logging.LoggerInterface
	security *logging.SecurityLogger
}

func (l *auditLogger) Security() *logging.SecurityLogger {
	return l.security
}

func TestServiceUpdateDraftAuditsAcceptedPatch(t *testing.T) {
	name := "Acme University"
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := &auditLogger{
		LoggerInterface: logging.NewNoopLogger(),
		security:        logging.NewSecurityLogger(zap.New(core)),
	}

	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, UserID: "user-1"})
	store.seed(types.InstitutionDraft{TenantID: "tenant-2", Status: types.StatusApproved, UserID: "user-2"})
	s := NewService(store, &fakeRegistry{}, &fakeDispatcher{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logger)
	ctx := context.Background()

	if _, err := s.UpdateDraft(ctx, "tenant-1", "user-1", &types.DraftPatch{InstitutionName: &name}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A denied patch leaves no audit trail.
	if _, err := s.UpdateDraft(ctx, "tenant-2", "user-2", &types.DraftPatch{InstitutionName: &name}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	entries := recorded.FilterField(zap.String("event", "draft_modified")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one draft_modified audit entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["subject"] != "user-1" || fields["tenant_id"] != "tenant-1" {
		t.Errorf("unexpected audit fields: %v", fields)
	}
}

func TestServiceSubmitDraft(t *testing.T) {
	testCases := []struct {
		name        string
		draft       types.InstitutionDraft
		expectedErr error
	}{
		{
			name:  "complete draft submits",
			draft: types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, InstitutionName: "Acme", Website: "acme.example"},
		},
		{
			name:        "missing website",
			draft:       types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, InstitutionName: "Acme"},
			expectedErr: ErrIncompleteDraft,
		},
		{
			name:        "missing name",
			draft:       types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, Website: "acme.example"},
			expectedErr: ErrIncompleteDraft,
		},
		{
			name:        "already submitted",
			draft:       types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusPendingVerification, InstitutionName: "Acme", Website: "acme.example"},
			expectedErr: ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.seed(tc.draft)
			s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})

			draft, err := s.SubmitDraft(context.Background(), "tenant-1", "user-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				if got := store.status("tenant-1"); got != tc.draft.Status {
					t.Errorf("failed submit changed stored status to %s", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.Status != types.StatusPendingVerification {
				t.Errorf("expected status %s, got %s", types.StatusPendingVerification, draft.Status)
			}
		})
	}
}

func TestServiceAdminTransition(t *testing.T) {
	admins := map[string]registry.Role{"admin-1": registry.RoleAdmin}

	testCases := []struct {
		name        string
		current     types.Status
		requested   types.Status
		adminID     string
		registryErr error
		expectedErr error
	}{
		{
			name:      "move to verifying",
			current:   types.StatusPendingVerification,
			requested: types.StatusVerifying,
			adminID:   "admin-1",
		},
		{
			name:        "non-admin denied",
			current:     types.StatusPendingVerification,
			requested:   types.StatusVerifying,
			adminID:     "intruder",
			expectedErr: registry.ErrNotAnAdmin,
		},
		{
			name:        "registry outage fails closed",
			current:     types.StatusPendingVerification,
			requested:   types.StatusVerifying,
			adminID:     "admin-1",
			registryErr: errors.New("registry timeout"),
			expectedErr: ErrPermissionDenied,
		},
		{
			name:        "unreachable status",
			current:     types.StatusPendingVerification,
			requested:   types.StatusApproved,
			adminID:     "admin-1",
			expectedErr: ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: tc.current, UserEmail: "user@acme.example"})
			reg := &fakeRegistry{roles: admins, err: tc.registryErr}
			s := newTestService(store, reg, &fakeDispatcher{})

			draft, err := s.AdminTransition(context.Background(), "tenant-1", tc.adminID, tc.requested)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				if got := store.status("tenant-1"); got != tc.current {
					t.Errorf("failed transition changed stored status to %s", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if draft.Status != tc.requested {
				t.Errorf("expected status %s, got %s", tc.requested, draft.Status)
			}
		})
	}
}

func TestServiceApprovalDispatchedOnce(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusVerifying, UserEmail: "user@acme.example"})
	dispatcher := &fakeDispatcher{}
	s := newTestService(store, &fakeRegistry{roles: map[string]registry.Role{"admin-1": registry.RoleAdmin}}, dispatcher)
	ctx := context.Background()

	if _, err := s.AdminTransition(ctx, "tenant-1", "admin-1", types.StatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dispatcher.count() != 1 {
		t.Errorf("expected 1 dispatch, got %d", dispatcher.count())
	}

	// A repeated approval is rejected by the graph and must not re-send.
	if _, err := s.AdminTransition(ctx, "tenant-1", "admin-1", types.StatusApproved); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if dispatcher.count() != 1 {
		t.Errorf("expected dispatch count to stay at 1, got %d", dispatcher.count())
	}
}

func TestServiceApprovalSurvivesDispatchFailure(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusVerifying, UserEmail: "user@acme.example"})
	dispatcher := &fakeDispatcher{err: errors.New("provider 500")}
	s := newTestService(store, &fakeRegistry{roles: map[string]registry.Role{"admin-1": registry.RoleAdmin}}, dispatcher)

	draft, err := s.AdminTransition(context.Background(), "tenant-1", "admin-1", types.StatusApproved)
	if err != nil {
		t.Fatalf("dispatch failure must not fail the transition: %v", err)
	}
	if draft.Status != types.StatusApproved {
		t.Errorf("expected status %s, got %s", types.StatusApproved, draft.Status)
	}
}

func TestServiceConcurrentTransitionRace(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusVerifying, UserEmail: "user@acme.example"})
	s := newTestService(store, &fakeRegistry{roles: map[string]registry.Role{"admin-1": registry.RoleAdmin}}, &fakeDispatcher{})
	ctx := context.Background()

	results := make(chan error, 2)
	outcomes := map[types.Status]error{}
	var mu sync.Mutex

	for _, requested := range []types.Status{types.StatusApproved, types.StatusRejected} {
		go func(requested types.Status) {
			_, err := s.AdminTransition(ctx, "tenant-1", "admin-1", requested)
			mu.Lock()
			outcomes[requested] = err
			mu.Unlock()
			results <- err
		}(requested)
	}

	var successes, conflicts int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrInvalidTransition):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one winner, got %d successes and %d conflicts", successes, conflicts)
	}

	final := store.status("tenant-1")
	if outcomes[final] != nil {
		t.Errorf("stored status %s does not match the winning transition", final)
	}
}

func TestServiceRereadsAfterFailedWrite(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, UserID: "user-1"})
	s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})
	ctx := context.Background()

	// Warm the actor's resident state.
	if _, err := s.GetDraft(ctx, "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reads := store.getCalls

	// A cached read does not touch the store.
	if _, err := s.GetDraft(ctx, "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.getCalls != reads {
		t.Fatalf("expected cached read, store was hit %d more times", store.getCalls-reads)
	}

	store.failUpdates = true
	name := "Acme"
	if _, err := s.UpdateDraft(ctx, "tenant-1", "user-1", &types.DraftPatch{InstitutionName: &name}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	store.failUpdates = false

	// The write outcome was unknown, so the next operation re-reads.
	if _, err := s.GetDraft(ctx, "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.getCalls != reads+1 {
		t.Errorf("expected a re-read after a failed write, got %d extra reads", store.getCalls-reads)
	}
}

func TestServiceAbandonedCallerCompletes(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, UserID: "user-1"})
	store.updateGate = make(chan struct{})
	s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})

	ctx, cancel := context.WithCancel(context.Background())
	name := "Acme"

	errs := make(chan error, 1)
	go func() {
		_, err := s.UpdateDraft(ctx, "tenant-1", "user-1", &types.DraftPatch{InstitutionName: &name})
		errs <- err
	}()

	// Abandon the caller while the write is still in flight.
	cancel()
	if err := <-errs; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	close(store.updateGate)

	// The detached write still completed.
	draft, err := s.GetDraft(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.InstitutionName != name {
		t.Errorf("expected abandoned write to complete, got %+v", draft)
	}
}

func TestServiceGetStatus(t *testing.T) {
	store := newFakeStore()
	s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})
	ctx := context.Background()

	data, err := s.GetStatus(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Status != types.StatusNotStarted || !data.CanEdit {
		t.Errorf("expected not_started editable projection, got %+v", data)
	}

	store.seed(types.InstitutionDraft{TenantID: "tenant-2", Status: types.StatusApproved, InstitutionName: "Acme", Website: "acme.example"})

	data, err = s.GetStatus(ctx, "tenant-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Status != types.StatusApproved || data.CanEdit {
		t.Errorf("expected locked approved projection, got %+v", data)
	}
	if !data.CompletionStatus.ReadyForSubmission {
		t.Errorf("expected completion flags set, got %+v", data.CompletionStatus)
	}
}

func TestServiceListPendingDrafts(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusPendingVerification})
	store.seed(types.InstitutionDraft{TenantID: "tenant-2", Status: types.StatusVerifying})
	store.seed(types.InstitutionDraft{TenantID: "tenant-3", Status: types.StatusApproved})
	s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})

	drafts, err := s.ListPendingDrafts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 2 {
		t.Errorf("expected 2 pending drafts, got %d", len(drafts))
	}
}

func TestServiceDrain(t *testing.T) {
	store := newFakeStore()
	store.seed(types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft})
	s := newTestService(store, &fakeRegistry{}, &fakeDispatcher{})
	ctx := context.Background()

	if _, err := s.GetDraft(ctx, "tenant-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Drain(ctx); err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}

	if _, err := s.GetDraft(ctx, "tenant-1"); !errors.Is(err, ErrShuttingDown) {
		t.Errorf("expected ErrShuttingDown, got %v", err)
	}
}
