// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

// Role is the administrative role an admin holds within a tenant scope.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// CanReview reports whether the role may move drafts through verification.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Valid reports whether the role is one this service provisions.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

var (
	// ErrNotAnAdmin indicates the identity holds no registry entry for the tenant.
	ErrNotAnAdmin = errors.New("identity is not a registered admin")
	// ErrInvalidRole indicates an unknown role was requested at provisioning.
	ErrInvalidRole = errors.New("invalid admin role")
	// ErrAlreadyGranted indicates the admin already holds an entry for the scope.
	ErrAlreadyGranted = errors.New("admin entry already exists for scope")
)

var _ ServiceInterface = (*Service)(nil)

// Service owns the admin registry. Lookups are read-mostly; Grant and Revoke
// are serialized by a single mutex so the registry has exactly one writer.
type Service struct {
	storage StorageInterface

	mu sync.Mutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) LookupRole(ctx context.Context, adminID, tenantID string) (Role, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.LookupRole")
	defer span.End()

	entry, err := s.storage.GetRegistryEntry(ctx, adminID, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNotAnAdmin
		}
		return "", fmt.Errorf("registry lookup failed: %w", err)
	}

	return Role(entry.Role), nil
}

func (s *Service) Grant(ctx context.Context, adminID, tenantScope string, role Role) (*types.AdminRegistryEntry, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Grant")
	defer span.End()

	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if tenantScope == "" {
		tenantScope = storage.WildcardScope
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.storage.InsertRegistryEntry(ctx, &types.AdminRegistryEntry{
		AdminID:     adminID,
		TenantScope: tenantScope,
		Role:        string(role),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrAlreadyGranted
		}
		return nil, fmt.Errorf("failed to grant admin role: %w", err)
	}

	s.logger.Security().AuthzGrant(adminID, tenantScope, string(role))
	return entry, nil
}

func (s *Service) Revoke(ctx context.Context, adminID, tenantScope string) error {
	ctx, span := s.tracer.Start(ctx, "registry.Service.Revoke")
	defer span.End()

	if tenantScope == "" {
		tenantScope = storage.WildcardScope
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.DeleteRegistryEntry(ctx, adminID, tenantScope); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotAnAdmin
		}
		return fmt.Errorf("failed to revoke admin role: %w", err)
	}

	s.logger.Security().AuthzRevoke(adminID, tenantScope)
	return nil
}

func (s *Service) List(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error) {
	ctx, span := s.tracer.Start(ctx, "registry.Service.List")
	defer span.End()

	entries, err := s.storage.ListRegistryEntries(ctx, tenantScope)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry entries: %w", err)
	}

	return entries, nil
}
