// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipmentevents_test
//

// Package shipmentevents_test is a generated GoMock package.
package shipmentevents_test

import (
	context "context"
	entities "fleetops/internal/entities"
	shipmentevents "fleetops/internal/service/shipmentevents"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockShipmentService is a mock of ShipmentService interface.
type MockShipmentService struct {
	ctrl     *gomock.Controller
	recorder *MockShipmentServiceMockRecorder
	isgomock struct{}
}

// MockShipmentServiceMockRecorder is the mock recorder for MockShipmentService.
type MockShipmentServiceMockRecorder struct {
	mock *MockShipmentService
}

// NewMockShipmentService creates a new mock instance.
func NewMockShipmentService(ctrl *gomock.Controller) *MockShipmentService {
	mock := &MockShipmentService{ctrl: ctrl}
	mock.recorder = &MockShipmentServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockShipmentService) EXPECT() *MockShipmentServiceMockRecorder {
	return m.recorder
}

// GetShipment mocks base method.
func (m *MockShipmentService) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetShipment", ctx, id)
	ret0, _ := ret[0].(*entities.Shipment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetShipment indicates an expected call of GetShipment.
func (mr *MockShipmentServiceMockRecorder) GetShipment(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetShipment", reflect.TypeOf((*MockShipmentService)(nil).GetShipment), ctx, id)
}

// MockTripService is a mock of TripService interface.
type MockTripService struct {
	ctrl     *gomock.Controller
	recorder *MockTripServiceMockRecorder
	isgomock struct{}
}

// MockTripServiceMockRecorder is the mock recorder for MockTripService.
type MockTripServiceMockRecorder struct {
	mock *MockTripService
}

// NewMockTripService creates a new mock instance.
func NewMockTripService(ctrl *gomock.Controller) *MockTripService {
	mock := &MockTripService{ctrl: ctrl}
	mock.recorder = &MockTripServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTripService) EXPECT() *MockTripServiceMockRecorder {
	return m.recorder
}

// CancelTrip mocks base method.
func (m *MockTripService) CancelTrip(ctx context.Context, tripID int64, reason string, actorID *int64) (*entities.Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelTrip", ctx, tripID, reason, actorID)
	ret0, _ := ret[0].(*entities.Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CancelTrip indicates an expected call of CancelTrip.
func (mr *MockTripServiceMockRecorder) CancelTrip(ctx, tripID, reason, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelTrip", reflect.TypeOf((*MockTripService)(nil).CancelTrip), ctx, tripID, reason, actorID)
}

// CompleteTrip mocks base method.
func (m *MockTripService) CompleteTrip(ctx context.Context, tripID int64, completion entities.TripCompletion, actorID *int64) (*entities.Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteTrip", ctx, tripID, completion, actorID)
	ret0, _ := ret[0].(*entities.Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompleteTrip indicates an expected call of CompleteTrip.
func (mr *MockTripServiceMockRecorder) CompleteTrip(ctx, tripID, completion, actorID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteTrip", reflect.TypeOf((*MockTripService)(nil).CompleteTrip), ctx, tripID, completion, actorID)
}

// GetTripByShipmentID mocks base method.
func (m *MockTripService) GetTripByShipmentID(ctx context.Context, shipmentID int64) (*entities.Trip, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTripByShipmentID", ctx, shipmentID)
	ret0, _ := ret[0].(*entities.Trip)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTripByShipmentID indicates an expected call of GetTripByShipmentID.
func (mr *MockTripServiceMockRecorder) GetTripByShipmentID(ctx, shipmentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTripByShipmentID", reflect.TypeOf((*MockTripService)(nil).GetTripByShipmentID), ctx, shipmentID)
}

// MockHandlerFactory is a mock of HandlerFactory interface.
type MockHandlerFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerFactoryMockRecorder
	isgomock struct{}
}

// MockHandlerFactoryMockRecorder is the mock recorder for MockHandlerFactory.
type MockHandlerFactoryMockRecorder struct {
	mock *MockHandlerFactory
}

// NewMockHandlerFactory creates a new mock instance.
func NewMockHandlerFactory(ctrl *gomock.Controller) *MockHandlerFactory {
	mock := &MockHandlerFactory{ctrl: ctrl}
	mock.recorder = &MockHandlerFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandlerFactory) EXPECT() *MockHandlerFactoryMockRecorder {
	return m.recorder
}

// GetHandler mocks base method.
func (m *MockHandlerFactory) GetHandler(status entities.ShipmentStatusType) (shipmentevents.ExecuteFn, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHandler", status)
	ret0, _ := ret[0].(shipmentevents.ExecuteFn)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHandler indicates an expected call of GetHandler.
func (mr *MockHandlerFactoryMockRecorder) GetHandler(status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHandler", reflect.TypeOf((*MockHandlerFactory)(nil).GetHandler), status)
}
