// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package institution

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/onboarding-service/internal/identity"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/pkg/registry"
)

//go:generate mockgen -build_flags=--mod=mod -package institution -destination ./mock_institution.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package institution -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package institution -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package institution -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newAPIRouter(service ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	api := NewAPI(service, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)
	api.RegisterAdminEndpoints(mux)
	return mux
}

func requestWithPrincipal(method, target, body string, p identity.Principal) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(identity.ContextWithPrincipal(r.Context(), p))
}

func TestAPI_CreateDraft(t *testing.T) {
	principal := identity.Principal{UserID: "user-1", Email: "user@acme.example", TenantID: "tenant-1"}
	draft := &types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, UserID: "user-1"}

	tests := []struct {
		name       string
		principal  identity.Principal
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name:      "success",
			principal: principal,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateOrGetDraft(gomock.Any(), "tenant-1", "user-1", "user@acme.example").
					Return(draft, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing tenant identity",
			principal:  identity.Principal{UserID: "user-1"},
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "store unavailable",
			principal: principal,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateOrGetDraft(gomock.Any(), "tenant-1", "user-1", "user@acme.example").
					Return(nil, fmt.Errorf("%w: connection refused", ErrStoreUnavailable))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			w := httptest.NewRecorder()
			newAPIRouter(mockSvc).ServeHTTP(w, requestWithPrincipal(http.MethodPost, "/api/v0/institution/draft", "", tt.principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAPI_UpdateDraft(t *testing.T) {
	principal := identity.Principal{UserID: "user-1", TenantID: "tenant-1"}

	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"institution_name": "Acme"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateDraft(gomock.Any(), "tenant-1", "user-1", gomock.Any()).
					Return(&types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusDraft, InstitutionName: "Acme"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"institution_name"`,
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "draft not found",
			body: `{"institution_name": "Acme"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateDraft(gomock.Any(), "tenant-1", "user-1", gomock.Any()).
					Return(nil, ErrDraftNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "locked draft",
			body: `{"institution_name": "Acme"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateDraft(gomock.Any(), "tenant-1", "user-1", gomock.Any()).
					Return(nil, fmt.Errorf("%w: currently being reviewed", ErrPermissionDenied))
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			w := httptest.NewRecorder()
			newAPIRouter(mockSvc).ServeHTTP(w, requestWithPrincipal(http.MethodPatch, "/api/v0/institution/draft", tt.body, principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAPI_SubmitDraft(t *testing.T) {
	principal := identity.Principal{UserID: "user-1", TenantID: "tenant-1"}

	tests := []struct {
		name       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SubmitDraft(gomock.Any(), "tenant-1", "user-1").
					Return(&types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusPendingVerification}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "incomplete draft",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SubmitDraft(gomock.Any(), "tenant-1", "user-1").
					Return(nil, fmt.Errorf("%w: institution name and website are required", ErrIncompleteDraft))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "already submitted",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().SubmitDraft(gomock.Any(), "tenant-1", "user-1").
					Return(nil, fmt.Errorf("%w: cannot submit from pending_verification", ErrInvalidTransition))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			w := httptest.NewRecorder()
			newAPIRouter(mockSvc).ServeHTTP(w, requestWithPrincipal(http.MethodPost, "/api/v0/institution/draft/submit", "", principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAPI_AdminTransition(t *testing.T) {
	principal := identity.Principal{UserID: "admin-1"}

	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"status": "verifying"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AdminTransition(gomock.Any(), "tenant-1", "admin-1", types.StatusVerifying).
					Return(&types.InstitutionDraft{TenantID: "tenant-1", Status: types.StatusVerifying}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing status",
			body:       `{}`,
			setupMocks: func(mockSvc *MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not an admin",
			body: `{"status": "verifying"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AdminTransition(gomock.Any(), "tenant-1", "admin-1", types.StatusVerifying).
					Return(nil, fmt.Errorf("%w: admin-1 is not a registered admin", registry.ErrNotAnAdmin))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "invalid transition",
			body: `{"status": "approved"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AdminTransition(gomock.Any(), "tenant-1", "admin-1", types.StatusApproved).
					Return(nil, fmt.Errorf("%w: cannot move from pending_verification to approved", ErrInvalidTransition))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "unexpected error",
			body: `{"status": "verifying"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AdminTransition(gomock.Any(), "tenant-1", "admin-1", types.StatusVerifying).
					Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			w := httptest.NewRecorder()
			newAPIRouter(mockSvc).ServeHTTP(w, requestWithPrincipal(http.MethodPost, "/api/v0/admin/institution/tenant-1/transition", tt.body, principal))

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAPI_GetStatus(t *testing.T) {
	principal := identity.Principal{UserID: "user-1", TenantID: "tenant-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().GetStatus(gomock.Any(), "tenant-1").
		Return(&types.InstitutionStatusData{Status: types.StatusNotStarted, CanEdit: true}, nil)

	w := httptest.NewRecorder()
	newAPIRouter(mockSvc).ServeHTTP(w, requestWithPrincipal(http.MethodGet, "/api/v0/institution/status", "", principal))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), string(types.StatusNotStarted)) {
		t.Errorf("expected projection in response, got %s", w.Body.String())
	}
}
