// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/onboarding-service/internal/db"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

var (
	_ StorageInterface         = (*Storage)(nil)
	_ RegistryStorageInterface = (*Storage)(nil)
)

const (
	draftColumns    = "tenant_id, status, institution_name, website, description, contact_phone, user_id, user_email, created_at, updated_at"
	registryColumns = "id, admin_id, tenant_scope, role, created_at"
)

// WildcardScope marks a registry entry valid for every tenant.
const WildcardScope = "*"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDraft")
	defer span.End()

	var d types.InstitutionDraft
	err := s.db.Statement(ctx).
		Select(draftColumns).
		From("institution_drafts").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&d.TenantID, &d.Status, &d.InstitutionName, &d.Website, &d.Description, &d.ContactPhone, &d.UserID, &d.UserEmail, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	return &d, nil
}

func (s *Storage) InsertDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertDraft")
	defer span.End()

	var d types.InstitutionDraft
	err := s.db.Statement(ctx).
		Insert("institution_drafts").
		Columns("tenant_id", "status", "institution_name", "website", "description", "contact_phone", "user_id", "user_email").
		Values(draft.TenantID, draft.Status, draft.InstitutionName, draft.Website, draft.Description, draft.ContactPhone, draft.UserID, draft.UserEmail).
		Suffix("RETURNING " + draftColumns).
		QueryRowContext(ctx).
		Scan(&d.TenantID, &d.Status, &d.InstitutionName, &d.Website, &d.Description, &d.ContactPhone, &d.UserID, &d.UserEmail, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert draft: %w", err)
	}

	return &d, nil
}

// UpdateDraft replaces the mutable fields of the tenant's row and bumps
// updated_at. The draft actor serializes callers, so no compare-and-set is
// needed here.
func (s *Storage) UpdateDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDraft")
	defer span.End()

	var d types.InstitutionDraft
	err := s.db.Statement(ctx).
		Update("institution_drafts").
		SetMap(map[string]interface{}{
			"status":           draft.Status,
			"institution_name": draft.InstitutionName,
			"website":          draft.Website,
			"description":      draft.Description,
			"contact_phone":    draft.ContactPhone,
		}).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"tenant_id": draft.TenantID}).
		Suffix("RETURNING " + draftColumns).
		QueryRowContext(ctx).
		Scan(&d.TenantID, &d.Status, &d.InstitutionName, &d.Website, &d.Description, &d.ContactPhone, &d.UserID, &d.UserEmail, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}

	return &d, nil
}

func (s *Storage) ListDraftsByStatus(ctx context.Context, statuses ...types.Status) ([]*types.InstitutionDraft, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDraftsByStatus")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(draftColumns).
		From("institution_drafts").
		OrderBy("created_at")

	if len(statuses) > 0 {
		query = query.Where(sq.Eq{"status": statuses})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*types.InstitutionDraft
	for rows.Next() {
		var d types.InstitutionDraft
		if err := rows.Scan(&d.TenantID, &d.Status, &d.InstitutionName, &d.Website, &d.Description, &d.ContactPhone, &d.UserID, &d.UserEmail, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return drafts, nil
}

// GetRegistryEntry resolves the entry for an admin within a tenant. An exact
// tenant scope wins over a wildcard scope.
func (s *Storage) GetRegistryEntry(ctx context.Context, adminID, tenantID string) (*types.AdminRegistryEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRegistryEntry")
	defer span.End()

	var e types.AdminRegistryEntry
	err := s.db.Statement(ctx).
		Select(registryColumns).
		From("admin_registry").
		Where(sq.And{
			sq.Eq{"admin_id": adminID},
			sq.Or{sq.Eq{"tenant_scope": tenantID}, sq.Eq{"tenant_scope": WildcardScope}},
		}).
		OrderBy("tenant_scope = '" + WildcardScope + "'").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&e.ID, &e.AdminID, &e.TenantScope, &e.Role, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get registry entry: %w", err)
	}

	return &e, nil
}

func (s *Storage) InsertRegistryEntry(ctx context.Context, entry *types.AdminRegistryEntry) (*types.AdminRegistryEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertRegistryEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate registry entry ID: %w", err)
	}

	var e types.AdminRegistryEntry
	err = s.db.Statement(ctx).
		Insert("admin_registry").
		Columns("id", "admin_id", "tenant_scope", "role").
		Values(id.String(), entry.AdminID, entry.TenantScope, entry.Role).
		Suffix("RETURNING " + registryColumns).
		QueryRowContext(ctx).
		Scan(&e.ID, &e.AdminID, &e.TenantScope, &e.Role, &e.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert registry entry: %w", err)
	}

	return &e, nil
}

func (s *Storage) DeleteRegistryEntry(ctx context.Context, adminID, tenantScope string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRegistryEntry")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("admin_registry").
		Where(sq.Eq{
			"admin_id":     adminID,
			"tenant_scope": tenantScope,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete registry entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListRegistryEntries(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRegistryEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(registryColumns).
		From("admin_registry").
		OrderBy("created_at")

	if tenantScope != "" {
		query = query.Where(sq.Eq{"tenant_scope": tenantScope})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.AdminRegistryEntry
	for rows.Next() {
		var e types.AdminRegistryEntry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.TenantScope, &e.Role, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan registry entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
