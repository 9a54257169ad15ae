// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/core/ports/services.go
//
// Generated by this command:
//
//	mockgen -source=../../internal/core/ports/services.go -destination=services_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	domain "github.com/jsalcedo/boxtrack-be/internal/core/domain"
	ports "github.com/jsalcedo/boxtrack-be/internal/core/ports"
	gomock "go.uber.org/mock/gomock"
)

// MockEventService is a mock of EventService interface.
type MockEventService struct {
	ctrl     *gomock.Controller
	recorder *MockEventServiceMockRecorder
	isgomock struct{}
}

// MockEventServiceMockRecorder is the mock recorder for MockEventService.
type MockEventServiceMockRecorder struct {
	mock *MockEventService
}

// NewMockEventService creates a new mock instance.
func NewMockEventService(ctrl *gomock.Controller) *MockEventService {
	mock := &MockEventService{ctrl: ctrl}
	mock.recorder = &MockEventServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventService) EXPECT() *MockEventServiceMockRecorder {
	return m.recorder
}

// CreateEvent mocks base method.
func (m *MockEventService) CreateEvent(ctx context.Context, params ports.CreateEventParams) (*ports.EventResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEvent", ctx, params)
	ret0, _ := ret[0].(*ports.EventResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateEvent indicates an expected call of CreateEvent.
func (mr *MockEventServiceMockRecorder) CreateEvent(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEvent", reflect.TypeOf((*MockEventService)(nil).CreateEvent), ctx, params)
}

// ListEvents mocks base method.
func (m *MockEventService) ListEvents(ctx context.Context, params ports.EventListParams) ([]domain.Event, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEvents", ctx, params)
	ret0, _ := ret[0].([]domain.Event)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListEvents indicates an expected call of ListEvents.
func (mr *MockEventServiceMockRecorder) ListEvents(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEvents", reflect.TypeOf((*MockEventService)(nil).ListEvents), ctx, params)
}

// ReconcileStale mocks base method.
func (m *MockEventService) ReconcileStale(ctx context.Context, limit int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReconcileStale", ctx, limit)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReconcileStale indicates an expected call of ReconcileStale.
func (mr *MockEventServiceMockRecorder) ReconcileStale(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReconcileStale", reflect.TypeOf((*MockEventService)(nil).ReconcileStale), ctx, limit)
}

// Reproject mocks base method.
func (m *MockEventService) Reproject(ctx context.Context, boxID string) (*domain.InventoryState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reproject", ctx, boxID)
	ret0, _ := ret[0].(*domain.InventoryState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reproject indicates an expected call of Reproject.
func (mr *MockEventServiceMockRecorder) Reproject(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reproject", reflect.TypeOf((*MockEventService)(nil).Reproject), ctx, boxID)
}

// UndoEvent mocks base method.
func (m *MockEventService) UndoEvent(ctx context.Context, eventID uuid.UUID) (*ports.UndoResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UndoEvent", ctx, eventID)
	ret0, _ := ret[0].(*ports.UndoResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UndoEvent indicates an expected call of UndoEvent.
func (mr *MockEventServiceMockRecorder) UndoEvent(ctx, eventID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UndoEvent", reflect.TypeOf((*MockEventService)(nil).UndoEvent), ctx, eventID)
}

// MockRulesEngine is a mock of RulesEngine interface.
type MockRulesEngine struct {
	ctrl     *gomock.Controller
	recorder *MockRulesEngineMockRecorder
	isgomock struct{}
}

// MockRulesEngineMockRecorder is the mock recorder for MockRulesEngine.
type MockRulesEngineMockRecorder struct {
	mock *MockRulesEngine
}

// NewMockRulesEngine creates a new mock instance.
func NewMockRulesEngine(ctrl *gomock.Controller) *MockRulesEngine {
	mock := &MockRulesEngine{ctrl: ctrl}
	mock.recorder = &MockRulesEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRulesEngine) EXPECT() *MockRulesEngineMockRecorder {
	return m.recorder
}

// Validate mocks base method.
func (m *MockRulesEngine) Validate(ctx context.Context, mode domain.Mode, eventType domain.EventType, boxID string, locationID *uuid.UUID) (*domain.ExceptionType, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", ctx, mode, eventType, boxID, locationID)
	ret0, _ := ret[0].(*domain.ExceptionType)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Validate indicates an expected call of Validate.
func (mr *MockRulesEngineMockRecorder) Validate(ctx, mode, eventType, boxID, locationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockRulesEngine)(nil).Validate), ctx, mode, eventType, boxID, locationID)
}

// MockSequenceAllocator is a mock of SequenceAllocator interface.
type MockSequenceAllocator struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceAllocatorMockRecorder
	isgomock struct{}
}

// MockSequenceAllocatorMockRecorder is the mock recorder for MockSequenceAllocator.
type MockSequenceAllocatorMockRecorder struct {
	mock *MockSequenceAllocator
}

// NewMockSequenceAllocator creates a new mock instance.
func NewMockSequenceAllocator(ctrl *gomock.Controller) *MockSequenceAllocator {
	mock := &MockSequenceAllocator{ctrl: ctrl}
	mock.recorder = &MockSequenceAllocatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSequenceAllocator) EXPECT() *MockSequenceAllocatorMockRecorder {
	return m.recorder
}

// AllocateBoxID mocks base method.
func (m *MockSequenceAllocator) AllocateBoxID(ctx context.Context, date time.Time) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllocateBoxID", ctx, date)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AllocateBoxID indicates an expected call of AllocateBoxID.
func (mr *MockSequenceAllocatorMockRecorder) AllocateBoxID(ctx, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllocateBoxID", reflect.TypeOf((*MockSequenceAllocator)(nil).AllocateBoxID), ctx, date)
}

// MockLocationResolver is a mock of LocationResolver interface.
type MockLocationResolver struct {
	ctrl     *gomock.Controller
	recorder *MockLocationResolverMockRecorder
	isgomock struct{}
}

// MockLocationResolverMockRecorder is the mock recorder for MockLocationResolver.
type MockLocationResolverMockRecorder struct {
	mock *MockLocationResolver
}

// NewMockLocationResolver creates a new mock instance.
func NewMockLocationResolver(ctrl *gomock.Controller) *MockLocationResolver {
	mock := &MockLocationResolver{ctrl: ctrl}
	mock.recorder = &MockLocationResolverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocationResolver) EXPECT() *MockLocationResolverMockRecorder {
	return m.recorder
}

// ReceivingID mocks base method.
func (m *MockLocationResolver) ReceivingID(ctx context.Context) (uuid.UUID, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReceivingID", ctx)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ReceivingID indicates an expected call of ReceivingID.
func (mr *MockLocationResolverMockRecorder) ReceivingID(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReceivingID", reflect.TypeOf((*MockLocationResolver)(nil).ReceivingID), ctx)
}

// Resolve mocks base method.
func (m *MockLocationResolver) Resolve(ctx context.Context, code string) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, code)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Resolve indicates an expected call of Resolve.
func (mr *MockLocationResolverMockRecorder) Resolve(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockLocationResolver)(nil).Resolve), ctx, code)
}

// MockBoxService is a mock of BoxService interface.
type MockBoxService struct {
	ctrl     *gomock.Controller
	recorder *MockBoxServiceMockRecorder
	isgomock struct{}
}

// MockBoxServiceMockRecorder is the mock recorder for MockBoxService.
type MockBoxServiceMockRecorder struct {
	mock *MockBoxService
}

// NewMockBoxService creates a new mock instance.
func NewMockBoxService(ctrl *gomock.Controller) *MockBoxService {
	mock := &MockBoxService{ctrl: ctrl}
	mock.recorder = &MockBoxServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBoxService) EXPECT() *MockBoxServiceMockRecorder {
	return m.recorder
}

// CreateBox mocks base method.
func (m *MockBoxService) CreateBox(ctx context.Context, params ports.CreateBoxParams) (*ports.BoxResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBox", ctx, params)
	ret0, _ := ret[0].(*ports.BoxResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateBox indicates an expected call of CreateBox.
func (mr *MockBoxServiceMockRecorder) CreateBox(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBox", reflect.TypeOf((*MockBoxService)(nil).CreateBox), ctx, params)
}

// GetDetails mocks base method.
func (m *MockBoxService) GetDetails(ctx context.Context, boxID string) (*ports.BoxHistory, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDetails", ctx, boxID)
	ret0, _ := ret[0].(*ports.BoxHistory)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDetails indicates an expected call of GetDetails.
func (mr *MockBoxServiceMockRecorder) GetDetails(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDetails", reflect.TypeOf((*MockBoxService)(nil).GetDetails), ctx, boxID)
}

// MockLocationService is a mock of LocationService interface.
type MockLocationService struct {
	ctrl     *gomock.Controller
	recorder *MockLocationServiceMockRecorder
	isgomock struct{}
}

// MockLocationServiceMockRecorder is the mock recorder for MockLocationService.
type MockLocationServiceMockRecorder struct {
	mock *MockLocationService
}

// NewMockLocationService creates a new mock instance.
func NewMockLocationService(ctrl *gomock.Controller) *MockLocationService {
	mock := &MockLocationService{ctrl: ctrl}
	mock.recorder = &MockLocationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocationService) EXPECT() *MockLocationServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockLocationService) Create(ctx context.Context, location *domain.Location) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, location)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockLocationServiceMockRecorder) Create(ctx, location any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockLocationService)(nil).Create), ctx, location)
}

// List mocks base method.
func (m *MockLocationService) List(ctx context.Context) ([]domain.Location, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]domain.Location)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockLocationServiceMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockLocationService)(nil).List), ctx)
}

// Occupancy mocks base method.
func (m *MockLocationService) Occupancy(ctx context.Context, locationID uuid.UUID) (*ports.LocationOccupancy, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Occupancy", ctx, locationID)
	ret0, _ := ret[0].(*ports.LocationOccupancy)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Occupancy indicates an expected call of Occupancy.
func (mr *MockLocationServiceMockRecorder) Occupancy(ctx, locationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Occupancy", reflect.TypeOf((*MockLocationService)(nil).Occupancy), ctx, locationID)
}

// ReceivingID mocks base method.
func (m *MockLocationService) ReceivingID(ctx context.Context) (uuid.UUID, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReceivingID", ctx)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ReceivingID indicates an expected call of ReceivingID.
func (mr *MockLocationServiceMockRecorder) ReceivingID(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReceivingID", reflect.TypeOf((*MockLocationService)(nil).ReceivingID), ctx)
}

// Resolve mocks base method.
func (m *MockLocationService) Resolve(ctx context.Context, code string) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", ctx, code)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Resolve indicates an expected call of Resolve.
func (mr *MockLocationServiceMockRecorder) Resolve(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockLocationService)(nil).Resolve), ctx, code)
}

// MockProductService is a mock of ProductService interface.
type MockProductService struct {
	ctrl     *gomock.Controller
	recorder *MockProductServiceMockRecorder
	isgomock struct{}
}

// MockProductServiceMockRecorder is the mock recorder for MockProductService.
type MockProductServiceMockRecorder struct {
	mock *MockProductService
}

// NewMockProductService creates a new mock instance.
func NewMockProductService(ctrl *gomock.Controller) *MockProductService {
	mock := &MockProductService{ctrl: ctrl}
	mock.recorder = &MockProductServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProductService) EXPECT() *MockProductServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockProductService) Create(ctx context.Context, product *domain.Product) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, product)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockProductServiceMockRecorder) Create(ctx, product any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockProductService)(nil).Create), ctx, product)
}

// GetByID mocks base method.
func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockProductServiceMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockProductService)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockProductService) List(ctx context.Context) ([]domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockProductServiceMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockProductService)(nil).List), ctx)
}

// MockStatsService is a mock of StatsService interface.
type MockStatsService struct {
	ctrl     *gomock.Controller
	recorder *MockStatsServiceMockRecorder
	isgomock struct{}
}

// MockStatsServiceMockRecorder is the mock recorder for MockStatsService.
type MockStatsServiceMockRecorder struct {
	mock *MockStatsService
}

// NewMockStatsService creates a new mock instance.
func NewMockStatsService(ctrl *gomock.Controller) *MockStatsService {
	mock := &MockStatsService{ctrl: ctrl}
	mock.recorder = &MockStatsServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStatsService) EXPECT() *MockStatsServiceMockRecorder {
	return m.recorder
}

// Today mocks base method.
func (m *MockStatsService) Today(ctx context.Context) (*ports.TodayStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Today", ctx)
	ret0, _ := ret[0].(*ports.TodayStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Today indicates an expected call of Today.
func (mr *MockStatsServiceMockRecorder) Today(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Today", reflect.TypeOf((*MockStatsService)(nil).Today), ctx)
}
