// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package institution -destination ./mock_institution.go -source=./interfaces.go
//

// Package institution is a generated GoMock package.
package institution

import (
	context "context"
	reflect "reflect"

	types "github.com/canonical/onboarding-service/internal/types"
	registry "github.com/canonical/onboarding-service/pkg/registry"
	gomock "go.uber.org/mock/gomock"
)

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// AdminTransition mocks base method.
func (m *MockServiceInterface) AdminTransition(ctx context.Context, tenantID, adminID string, requested types.Status) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminTransition", ctx, tenantID, adminID, requested)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminTransition indicates an expected call of AdminTransition.
func (mr *MockServiceInterfaceMockRecorder) AdminTransition(ctx, tenantID, adminID, requested any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminTransition", reflect.TypeOf((*MockServiceInterface)(nil).AdminTransition), ctx, tenantID, adminID, requested)
}

// CreateOrGetDraft mocks base method.
func (m *MockServiceInterface) CreateOrGetDraft(ctx context.Context, tenantID, userID, userEmail string) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrGetDraft", ctx, tenantID, userID, userEmail)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrGetDraft indicates an expected call of CreateOrGetDraft.
func (mr *MockServiceInterfaceMockRecorder) CreateOrGetDraft(ctx, tenantID, userID, userEmail any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrGetDraft", reflect.TypeOf((*MockServiceInterface)(nil).CreateOrGetDraft), ctx, tenantID, userID, userEmail)
}

// Drain mocks base method.
func (m *MockServiceInterface) Drain(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Drain", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Drain indicates an expected call of Drain.
func (mr *MockServiceInterfaceMockRecorder) Drain(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Drain", reflect.TypeOf((*MockServiceInterface)(nil).Drain), ctx)
}

// GetDraft mocks base method.
func (m *MockServiceInterface) GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDraft", ctx, tenantID)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDraft indicates an expected call of GetDraft.
func (mr *MockServiceInterfaceMockRecorder) GetDraft(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDraft", reflect.TypeOf((*MockServiceInterface)(nil).GetDraft), ctx, tenantID)
}

// GetStatus mocks base method.
func (m *MockServiceInterface) GetStatus(ctx context.Context, tenantID string) (*types.InstitutionStatusData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStatus", ctx, tenantID)
	ret0, _ := ret[0].(*types.InstitutionStatusData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStatus indicates an expected call of GetStatus.
func (mr *MockServiceInterfaceMockRecorder) GetStatus(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStatus", reflect.TypeOf((*MockServiceInterface)(nil).GetStatus), ctx, tenantID)
}

// ListPendingDrafts mocks base method.
func (m *MockServiceInterface) ListPendingDrafts(ctx context.Context) ([]*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPendingDrafts", ctx)
	ret0, _ := ret[0].([]*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPendingDrafts indicates an expected call of ListPendingDrafts.
func (mr *MockServiceInterfaceMockRecorder) ListPendingDrafts(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPendingDrafts", reflect.TypeOf((*MockServiceInterface)(nil).ListPendingDrafts), ctx)
}

// SubmitDraft mocks base method.
func (m *MockServiceInterface) SubmitDraft(ctx context.Context, tenantID, userID string) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitDraft", ctx, tenantID, userID)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitDraft indicates an expected call of SubmitDraft.
func (mr *MockServiceInterfaceMockRecorder) SubmitDraft(ctx, tenantID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitDraft", reflect.TypeOf((*MockServiceInterface)(nil).SubmitDraft), ctx, tenantID, userID)
}

// UpdateDraft mocks base method.
func (m *MockServiceInterface) UpdateDraft(ctx context.Context, tenantID, userID string, patch *types.DraftPatch) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDraft", ctx, tenantID, userID, patch)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDraft indicates an expected call of UpdateDraft.
func (mr *MockServiceInterfaceMockRecorder) UpdateDraft(ctx, tenantID, userID, patch any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDraft", reflect.TypeOf((*MockServiceInterface)(nil).UpdateDraft), ctx, tenantID, userID, patch)
}

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// GetDraft mocks base method.
func (m *MockStorageInterface) GetDraft(ctx context.Context, tenantID string) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDraft", ctx, tenantID)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDraft indicates an expected call of GetDraft.
func (mr *MockStorageInterfaceMockRecorder) GetDraft(ctx, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDraft", reflect.TypeOf((*MockStorageInterface)(nil).GetDraft), ctx, tenantID)
}

// InsertDraft mocks base method.
func (m *MockStorageInterface) InsertDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertDraft", ctx, draft)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertDraft indicates an expected call of InsertDraft.
func (mr *MockStorageInterfaceMockRecorder) InsertDraft(ctx, draft any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertDraft", reflect.TypeOf((*MockStorageInterface)(nil).InsertDraft), ctx, draft)
}

// ListDraftsByStatus mocks base method.
func (m *MockStorageInterface) ListDraftsByStatus(ctx context.Context, statuses ...types.Status) ([]*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range statuses {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ListDraftsByStatus", varargs...)
	ret0, _ := ret[0].([]*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListDraftsByStatus indicates an expected call of ListDraftsByStatus.
func (mr *MockStorageInterfaceMockRecorder) ListDraftsByStatus(ctx any, statuses ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, statuses...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDraftsByStatus", reflect.TypeOf((*MockStorageInterface)(nil).ListDraftsByStatus), varargs...)
}

// UpdateDraft mocks base method.
func (m *MockStorageInterface) UpdateDraft(ctx context.Context, draft *types.InstitutionDraft) (*types.InstitutionDraft, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDraft", ctx, draft)
	ret0, _ := ret[0].(*types.InstitutionDraft)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateDraft indicates an expected call of UpdateDraft.
func (mr *MockStorageInterfaceMockRecorder) UpdateDraft(ctx, draft any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDraft", reflect.TypeOf((*MockStorageInterface)(nil).UpdateDraft), ctx, draft)
}

// MockRegistryInterface is a mock of RegistryInterface interface.
type MockRegistryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRegistryInterfaceMockRecorder
	isgomock struct{}
}

// MockRegistryInterfaceMockRecorder is the mock recorder for MockRegistryInterface.
type MockRegistryInterfaceMockRecorder struct {
	mock *MockRegistryInterface
}

// NewMockRegistryInterface creates a new mock instance.
func NewMockRegistryInterface(ctrl *gomock.Controller) *MockRegistryInterface {
	mock := &MockRegistryInterface{ctrl: ctrl}
	mock.recorder = &MockRegistryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRegistryInterface) EXPECT() *MockRegistryInterfaceMockRecorder {
	return m.recorder
}

// LookupRole mocks base method.
func (m *MockRegistryInterface) LookupRole(ctx context.Context, adminID, tenantID string) (registry.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LookupRole", ctx, adminID, tenantID)
	ret0, _ := ret[0].(registry.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LookupRole indicates an expected call of LookupRole.
func (mr *MockRegistryInterfaceMockRecorder) LookupRole(ctx, adminID, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LookupRole", reflect.TypeOf((*MockRegistryInterface)(nil).LookupRole), ctx, adminID, tenantID)
}

// MockDispatcherInterface is a mock of DispatcherInterface interface.
type MockDispatcherInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDispatcherInterfaceMockRecorder
	isgomock struct{}
}

// MockDispatcherInterfaceMockRecorder is the mock recorder for MockDispatcherInterface.
type MockDispatcherInterfaceMockRecorder struct {
	mock *MockDispatcherInterface
}

// NewMockDispatcherInterface creates a new mock instance.
func NewMockDispatcherInterface(ctrl *gomock.Controller) *MockDispatcherInterface {
	mock := &MockDispatcherInterface{ctrl: ctrl}
	mock.recorder = &MockDispatcherInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDispatcherInterface) EXPECT() *MockDispatcherInterfaceMockRecorder {
	return m.recorder
}

// DispatchApproval mocks base method.
func (m *MockDispatcherInterface) DispatchApproval(ctx context.Context, draft *types.InstitutionDraft) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DispatchApproval", ctx, draft)
	ret0, _ := ret[0].(error)
	return ret0
}

// DispatchApproval indicates an expected call of DispatchApproval.
func (mr *MockDispatcherInterfaceMockRecorder) DispatchApproval(ctx, draft any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DispatchApproval", reflect.TypeOf((*MockDispatcherInterface)(nil).DispatchApproval), ctx, draft)
}
