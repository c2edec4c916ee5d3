// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_test
//

// Package maintenance_test is a generated GoMock package.
package maintenance_test

import (
	context "context"
	entities "fleetops/internal/entities"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CodeExists mocks base method.
func (m *MockRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CodeExists", ctx, code)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CodeExists indicates an expected call of CodeExists.
func (mr *MockRepositoryMockRecorder) CodeExists(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CodeExists", reflect.TypeOf((*MockRepository)(nil).CodeExists), ctx, code)
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, code string, create entities.MaintenanceCreate, actorID *int64) (*entities.MaintenanceLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, code, create, actorID)
	ret0, _ := ret[0].(*entities.MaintenanceLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, code, create, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, code, create, actorID)
}

// GetAll mocks base method.
func (m *MockRepository) GetAll(ctx context.Context, filter entities.MaintenanceFilter, page entities.Page) ([]entities.MaintenanceLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, filter, page)
	ret0, _ := ret[0].([]entities.MaintenanceLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetAll indicates an expected call of GetAll.
func (mr *MockRepositoryMockRecorder) GetAll(ctx, filter, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockRepository)(nil).GetAll), ctx, filter, page)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, id int64) (*entities.MaintenanceLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.MaintenanceLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, id)
}

// SoftDelete mocks base method.
func (m *MockRepository) SoftDelete(ctx context.Context, id int64, actorID *int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SoftDelete", ctx, id, actorID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SoftDelete indicates an expected call of SoftDelete.
func (mr *MockRepositoryMockRecorder) SoftDelete(ctx, id, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SoftDelete", reflect.TypeOf((*MockRepository)(nil).SoftDelete), ctx, id, actorID)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, maintenanceModify entities.MaintenanceModify) (*entities.MaintenanceLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, maintenanceModify)
	ret0, _ := ret[0].(*entities.MaintenanceLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, maintenanceModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, maintenanceModify)
}

// UpdateStatus mocks base method.
func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, from, to entities.MaintenanceStatusType, completion entities.MaintenanceCompletion, actorID *int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, from, to, completion, actorID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRepositoryMockRecorder) UpdateStatus(ctx, id, from, to, completion, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRepository)(nil).UpdateStatus), ctx, id, from, to, completion, actorID)
}

// MockVehicleService is a mock of VehicleService interface.
type MockVehicleService struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleServiceMockRecorder
	isgomock struct{}
}

// MockVehicleServiceMockRecorder is the mock recorder for MockVehicleService.
type MockVehicleServiceMockRecorder struct {
	mock *MockVehicleService
}

// NewMockVehicleService creates a new mock instance.
func NewMockVehicleService(ctrl *gomock.Controller) *MockVehicleService {
	mock := &MockVehicleService{ctrl: ctrl}
	mock.recorder = &MockVehicleServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleService) EXPECT() *MockVehicleServiceMockRecorder {
	return m.recorder
}

// GetVehicle mocks base method.
func (m *MockVehicleService) GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVehicle", ctx, id)
	ret0, _ := ret[0].(*entities.Vehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVehicle indicates an expected call of GetVehicle.
func (mr *MockVehicleServiceMockRecorder) GetVehicle(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVehicle", reflect.TypeOf((*MockVehicleService)(nil).GetVehicle), ctx, id)
}

// UpdateVehicleStatus mocks base method.
func (m *MockVehicleService) UpdateVehicleStatus(ctx context.Context, id int64, from, to entities.VehicleStatusType, actorID *int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateVehicleStatus", ctx, id, from, to, actorID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateVehicleStatus indicates an expected call of UpdateVehicleStatus.
func (mr *MockVehicleServiceMockRecorder) UpdateVehicleStatus(ctx, id, from, to, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateVehicleStatus", reflect.TypeOf((*MockVehicleService)(nil).UpdateVehicleStatus), ctx, id, from, to, actorID)
}

// MockVehicleLogger is a mock of VehicleLogger interface.
type MockVehicleLogger struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleLoggerMockRecorder
	isgomock struct{}
}

// MockVehicleLoggerMockRecorder is the mock recorder for MockVehicleLogger.
type MockVehicleLoggerMockRecorder struct {
	mock *MockVehicleLogger
}

// NewMockVehicleLogger creates a new mock instance.
func NewMockVehicleLogger(ctrl *gomock.Controller) *MockVehicleLogger {
	mock := &MockVehicleLogger{ctrl: ctrl}
	mock.recorder = &MockVehicleLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleLogger) EXPECT() *MockVehicleLoggerMockRecorder {
	return m.recorder
}

// CreateVehicleLog mocks base method.
func (m *MockVehicleLogger) CreateVehicleLog(ctx context.Context, logModify entities.VehicleStatusLogModify) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateVehicleLog", ctx, logModify)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateVehicleLog indicates an expected call of CreateVehicleLog.
func (mr *MockVehicleLoggerMockRecorder) CreateVehicleLog(ctx, logModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateVehicleLog", reflect.TypeOf((*MockVehicleLogger)(nil).CreateVehicleLog), ctx, logModify)
}

// MockCodeFactory is a mock of CodeFactory interface.
type MockCodeFactory struct {
	ctrl     *gomock.Controller
	recorder *MockCodeFactoryMockRecorder
	isgomock struct{}
}

// MockCodeFactoryMockRecorder is the mock recorder for MockCodeFactory.
type MockCodeFactoryMockRecorder struct {
	mock *MockCodeFactory
}

// NewMockCodeFactory creates a new mock instance.
func NewMockCodeFactory(ctrl *gomock.Controller) *MockCodeFactory {
	mock := &MockCodeFactory{ctrl: ctrl}
	mock.recorder = &MockCodeFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCodeFactory) EXPECT() *MockCodeFactoryMockRecorder {
	return m.recorder
}

// NewCode mocks base method.
func (m *MockCodeFactory) NewCode(prefix string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewCode", prefix)
	ret0, _ := ret[0].(string)
	return ret0
}

// NewCode indicates an expected call of NewCode.
func (mr *MockCodeFactoryMockRecorder) NewCode(prefix any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewCode", reflect.TypeOf((*MockCodeFactory)(nil).NewCode), prefix)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
