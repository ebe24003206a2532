// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package registry -destination ./mock_registry.go -source=./interfaces.go
//

// Package registry is a generated GoMock package.
package registry

import (
	context "context"
	reflect "reflect"

	types "github.com/canonical/onboarding-service/internal/types"
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

// Grant mocks base method.
func (m *MockServiceInterface) Grant(ctx context.Context, adminID, tenantScope string, role Role) (*types.AdminRegistryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Grant", ctx, adminID, tenantScope, role)
	ret0, _ := ret[0].(*types.AdminRegistryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Grant indicates an expected call of Grant.
func (mr *MockServiceInterfaceMockRecorder) Grant(ctx, adminID, tenantScope, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Grant", reflect.TypeOf((*MockServiceInterface)(nil).Grant), ctx, adminID, tenantScope, role)
}

// List mocks base method.
func (m *MockServiceInterface) List(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, tenantScope)
	ret0, _ := ret[0].([]*types.AdminRegistryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockServiceInterfaceMockRecorder) List(ctx, tenantScope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockServiceInterface)(nil).List), ctx, tenantScope)
}

// LookupRole mocks base method.
func (m *MockServiceInterface) LookupRole(ctx context.Context, adminID, tenantID string) (Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LookupRole", ctx, adminID, tenantID)
	ret0, _ := ret[0].(Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LookupRole indicates an expected call of LookupRole.
func (mr *MockServiceInterfaceMockRecorder) LookupRole(ctx, adminID, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LookupRole", reflect.TypeOf((*MockServiceInterface)(nil).LookupRole), ctx, adminID, tenantID)
}

// Revoke mocks base method.
func (m *MockServiceInterface) Revoke(ctx context.Context, adminID, tenantScope string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", ctx, adminID, tenantScope)
	ret0, _ := ret[0].(error)
	return ret0
}

// Revoke indicates an expected call of Revoke.
func (mr *MockServiceInterfaceMockRecorder) Revoke(ctx, adminID, tenantScope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockServiceInterface)(nil).Revoke), ctx, adminID, tenantScope)
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

// DeleteRegistryEntry mocks base method.
func (m *MockStorageInterface) DeleteRegistryEntry(ctx context.Context, adminID, tenantScope string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRegistryEntry", ctx, adminID, tenantScope)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRegistryEntry indicates an expected call of DeleteRegistryEntry.
func (mr *MockStorageInterfaceMockRecorder) DeleteRegistryEntry(ctx, adminID, tenantScope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRegistryEntry", reflect.TypeOf((*MockStorageInterface)(nil).DeleteRegistryEntry), ctx, adminID, tenantScope)
}

// GetRegistryEntry mocks base method.
func (m *MockStorageInterface) GetRegistryEntry(ctx context.Context, adminID, tenantID string) (*types.AdminRegistryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRegistryEntry", ctx, adminID, tenantID)
	ret0, _ := ret[0].(*types.AdminRegistryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRegistryEntry indicates an expected call of GetRegistryEntry.
func (mr *MockStorageInterfaceMockRecorder) GetRegistryEntry(ctx, adminID, tenantID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRegistryEntry", reflect.TypeOf((*MockStorageInterface)(nil).GetRegistryEntry), ctx, adminID, tenantID)
}

// InsertRegistryEntry mocks base method.
func (m *MockStorageInterface) InsertRegistryEntry(ctx context.Context, entry *types.AdminRegistryEntry) (*types.AdminRegistryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertRegistryEntry", ctx, entry)
	ret0, _ := ret[0].(*types.AdminRegistryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertRegistryEntry indicates an expected call of InsertRegistryEntry.
func (mr *MockStorageInterfaceMockRecorder) InsertRegistryEntry(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertRegistryEntry", reflect.TypeOf((*MockStorageInterface)(nil).InsertRegistryEntry), ctx, entry)
}

// ListRegistryEntries mocks base method.
func (m *MockStorageInterface) ListRegistryEntries(ctx context.Context, tenantScope string) ([]*types.AdminRegistryEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRegistryEntries", ctx, tenantScope)
	ret0, _ := ret[0].([]*types.AdminRegistryEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRegistryEntries indicates an expected call of ListRegistryEntries.
func (mr *MockStorageInterfaceMockRecorder) ListRegistryEntries(ctx, tenantScope any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRegistryEntries", reflect.TypeOf((*MockStorageInterface)(nil).ListRegistryEntries), ctx, tenantScope)
}
