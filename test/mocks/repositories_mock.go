// Code generated by MockGen. DO NOT EDIT.
// Source: ../../internal/core/ports/repositories.go
//
// Generated by this command:
//
//	mockgen -source=../../internal/core/ports/repositories.go -destination=repositories_mock.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	domain "github.com/jsalcedo/boxtrack-be/internal/core/domain"
	ports "github.com/jsalcedo/boxtrack-be/internal/core/ports"
	gomock "go.uber.org/mock/gomock"
)

// MockEventRepository is a mock of EventRepository interface.
type MockEventRepository struct {
	ctrl     *gomock.Controller
	recorder *MockEventRepositoryMockRecorder
	isgomock struct{}
}

// MockEventRepositoryMockRecorder is the mock recorder for MockEventRepository.
type MockEventRepositoryMockRecorder struct {
	mock *MockEventRepository
}

// NewMockEventRepository creates a new mock instance.
func NewMockEventRepository(ctrl *gomock.Controller) *MockEventRepository {
	mock := &MockEventRepository{ctrl: ctrl}
	mock.recorder = &MockEventRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventRepository) EXPECT() *MockEventRepositoryMockRecorder {
	return m.recorder
}

// CountByTypeSince mocks base method.
func (m *MockEventRepository) CountByTypeSince(ctx context.Context, since time.Time) (map[domain.EventType]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByTypeSince", ctx, since)
	ret0, _ := ret[0].(map[domain.EventType]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByTypeSince indicates an expected call of CountByTypeSince.
func (mr *MockEventRepositoryMockRecorder) CountByTypeSince(ctx, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByTypeSince", reflect.TypeOf((*MockEventRepository)(nil).CountByTypeSince), ctx, since)
}

// CountExceptionsSince mocks base method.
func (m *MockEventRepository) CountExceptionsSince(ctx context.Context, since time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountExceptionsSince", ctx, since)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountExceptionsSince indicates an expected call of CountExceptionsSince.
func (mr *MockEventRepositoryMockRecorder) CountExceptionsSince(ctx, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountExceptionsSince", reflect.TypeOf((*MockEventRepository)(nil).CountExceptionsSince), ctx, since)
}

// FindByBox mocks base method.
func (m *MockEventRepository) FindByBox(ctx context.Context, boxID string) ([]domain.Event, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByBox", ctx, boxID)
	ret0, _ := ret[0].([]domain.Event)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByBox indicates an expected call of FindByBox.
func (mr *MockEventRepositoryMockRecorder) FindByBox(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByBox", reflect.TypeOf((*MockEventRepository)(nil).FindByBox), ctx, boxID)
}

// FindByClientEventID mocks base method.
func (m *MockEventRepository) FindByClientEventID(ctx context.Context, clientEventID string) (*domain.Event, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByClientEventID", ctx, clientEventID)
	ret0, _ := ret[0].(*domain.Event)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByClientEventID indicates an expected call of FindByClientEventID.
func (mr *MockEventRepositoryMockRecorder) FindByClientEventID(ctx, clientEventID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByClientEventID", reflect.TypeOf((*MockEventRepository)(nil).FindByClientEventID), ctx, clientEventID)
}

// FindByID mocks base method.
func (m *MockEventRepository) FindByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, eventID)
	ret0, _ := ret[0].(*domain.Event)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockEventRepositoryMockRecorder) FindByID(ctx, eventID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockEventRepository)(nil).FindByID), ctx, eventID)
}

// HasInEvent mocks base method.
func (m *MockEventRepository) HasInEvent(ctx context.Context, boxID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasInEvent", ctx, boxID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasInEvent indicates an expected call of HasInEvent.
func (mr *MockEventRepositoryMockRecorder) HasInEvent(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasInEvent", reflect.TypeOf((*MockEventRepository)(nil).HasInEvent), ctx, boxID)
}

// Insert mocks base method.
func (m *MockEventRepository) Insert(ctx context.Context, event *domain.Event) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockEventRepositoryMockRecorder) Insert(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockEventRepository)(nil).Insert), ctx, event)
}

// List mocks base method.
func (m *MockEventRepository) List(ctx context.Context, params ports.EventListParams) ([]domain.Event, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].([]domain.Event)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockEventRepositoryMockRecorder) List(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockEventRepository)(nil).List), ctx, params)
}

// SetReversed mocks base method.
func (m *MockEventRepository) SetReversed(ctx context.Context, eventID uuid.UUID, reversed bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetReversed", ctx, eventID, reversed)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetReversed indicates an expected call of SetReversed.
func (mr *MockEventRepositoryMockRecorder) SetReversed(ctx, eventID, reversed any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetReversed", reflect.TypeOf((*MockEventRepository)(nil).SetReversed), ctx, eventID, reversed)
}

// StaleBoxIDs mocks base method.
func (m *MockEventRepository) StaleBoxIDs(ctx context.Context, limit int) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StaleBoxIDs", ctx, limit)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StaleBoxIDs indicates an expected call of StaleBoxIDs.
func (mr *MockEventRepositoryMockRecorder) StaleBoxIDs(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StaleBoxIDs", reflect.TypeOf((*MockEventRepository)(nil).StaleBoxIDs), ctx, limit)
}

// WithTx mocks base method.
func (m *MockEventRepository) WithTx(tx pgx.Tx) ports.EventRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", tx)
	ret0, _ := ret[0].(ports.EventRepository)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockEventRepositoryMockRecorder) WithTx(tx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockEventRepository)(nil).WithTx), tx)
}

// MockStateRepository is a mock of StateRepository interface.
type MockStateRepository struct {
	ctrl     *gomock.Controller
	recorder *MockStateRepositoryMockRecorder
	isgomock struct{}
}

// MockStateRepositoryMockRecorder is the mock recorder for MockStateRepository.
type MockStateRepositoryMockRecorder struct {
	mock *MockStateRepository
}

// NewMockStateRepository creates a new mock instance.
func NewMockStateRepository(ctrl *gomock.Controller) *MockStateRepository {
	mock := &MockStateRepository{ctrl: ctrl}
	mock.recorder = &MockStateRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStateRepository) EXPECT() *MockStateRepositoryMockRecorder {
	return m.recorder
}

// CountAtLocation mocks base method.
func (m *MockStateRepository) CountAtLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountAtLocation", ctx, locationID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountAtLocation indicates an expected call of CountAtLocation.
func (mr *MockStateRepositoryMockRecorder) CountAtLocation(ctx, locationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountAtLocation", reflect.TypeOf((*MockStateRepository)(nil).CountAtLocation), ctx, locationID)
}

// FindAtLocation mocks base method.
func (m *MockStateRepository) FindAtLocation(ctx context.Context, locationID uuid.UUID, limit int) ([]ports.InventoryRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAtLocation", ctx, locationID, limit)
	ret0, _ := ret[0].([]ports.InventoryRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAtLocation indicates an expected call of FindAtLocation.
func (mr *MockStateRepositoryMockRecorder) FindAtLocation(ctx, locationID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAtLocation", reflect.TypeOf((*MockStateRepository)(nil).FindAtLocation), ctx, locationID, limit)
}

// FindByBox mocks base method.
func (m *MockStateRepository) FindByBox(ctx context.Context, boxID string) (*domain.InventoryState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByBox", ctx, boxID)
	ret0, _ := ret[0].(*domain.InventoryState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByBox indicates an expected call of FindByBox.
func (mr *MockStateRepositoryMockRecorder) FindByBox(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByBox", reflect.TypeOf((*MockStateRepository)(nil).FindByBox), ctx, boxID)
}

// List mocks base method.
func (m *MockStateRepository) List(ctx context.Context, params ports.InventoryListParams) (*ports.InventoryListResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, params)
	ret0, _ := ret[0].(*ports.InventoryListResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockStateRepositoryMockRecorder) List(ctx, params any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockStateRepository)(nil).List), ctx, params)
}

// Upsert mocks base method.
func (m *MockStateRepository) Upsert(ctx context.Context, state *domain.InventoryState) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", ctx, state)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockStateRepositoryMockRecorder) Upsert(ctx, state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockStateRepository)(nil).Upsert), ctx, state)
}

// WithTx mocks base method.
func (m *MockStateRepository) WithTx(tx pgx.Tx) ports.StateRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", tx)
	ret0, _ := ret[0].(ports.StateRepository)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockStateRepositoryMockRecorder) WithTx(tx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockStateRepository)(nil).WithTx), tx)
}

// MockBoxRepository is a mock of BoxRepository interface.
type MockBoxRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBoxRepositoryMockRecorder
	isgomock struct{}
}

// MockBoxRepositoryMockRecorder is the mock recorder for MockBoxRepository.
type MockBoxRepositoryMockRecorder struct {
	mock *MockBoxRepository
}

// NewMockBoxRepository creates a new mock instance.
func NewMockBoxRepository(ctrl *gomock.Controller) *MockBoxRepository {
	mock := &MockBoxRepository{ctrl: ctrl}
	mock.recorder = &MockBoxRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBoxRepository) EXPECT() *MockBoxRepositoryMockRecorder {
	return m.recorder
}

// Exists mocks base method.
func (m *MockBoxRepository) Exists(ctx context.Context, boxID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exists", ctx, boxID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exists indicates an expected call of Exists.
func (mr *MockBoxRepositoryMockRecorder) Exists(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exists", reflect.TypeOf((*MockBoxRepository)(nil).Exists), ctx, boxID)
}

// FindByID mocks base method.
func (m *MockBoxRepository) FindByID(ctx context.Context, boxID string) (*domain.Box, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, boxID)
	ret0, _ := ret[0].(*domain.Box)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockBoxRepositoryMockRecorder) FindByID(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockBoxRepository)(nil).FindByID), ctx, boxID)
}

// FindDetails mocks base method.
func (m *MockBoxRepository) FindDetails(ctx context.Context, boxID string) (*ports.BoxDetails, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindDetails", ctx, boxID)
	ret0, _ := ret[0].(*ports.BoxDetails)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindDetails indicates an expected call of FindDetails.
func (mr *MockBoxRepositoryMockRecorder) FindDetails(ctx, boxID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindDetails", reflect.TypeOf((*MockBoxRepository)(nil).FindDetails), ctx, boxID)
}

// Insert mocks base method.
func (m *MockBoxRepository) Insert(ctx context.Context, box *domain.Box) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, box)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockBoxRepositoryMockRecorder) Insert(ctx, box any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockBoxRepository)(nil).Insert), ctx, box)
}

// WithTx mocks base method.
func (m *MockBoxRepository) WithTx(tx pgx.Tx) ports.BoxRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", tx)
	ret0, _ := ret[0].(ports.BoxRepository)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockBoxRepositoryMockRecorder) WithTx(tx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockBoxRepository)(nil).WithTx), tx)
}

// MockProductRepository is a mock of ProductRepository interface.
type MockProductRepository struct {
	ctrl     *gomock.Controller
	recorder *MockProductRepositoryMockRecorder
	isgomock struct{}
}

// MockProductRepositoryMockRecorder is the mock recorder for MockProductRepository.
type MockProductRepositoryMockRecorder struct {
	mock *MockProductRepository
}

// NewMockProductRepository creates a new mock instance.
func NewMockProductRepository(ctrl *gomock.Controller) *MockProductRepository {
	mock := &MockProductRepository{ctrl: ctrl}
	mock.recorder = &MockProductRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProductRepository) EXPECT() *MockProductRepositoryMockRecorder {
	return m.recorder
}

// FindAll mocks base method.
func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx)
	ret0, _ := ret[0].([]domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAll indicates an expected call of FindAll.
func (mr *MockProductRepositoryMockRecorder) FindAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockProductRepository)(nil).FindAll), ctx)
}

// FindByID mocks base method.
func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockProductRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockProductRepository)(nil).FindByID), ctx, id)
}

// Insert mocks base method.
func (m *MockProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, product)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockProductRepositoryMockRecorder) Insert(ctx, product any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockProductRepository)(nil).Insert), ctx, product)
}

// MockLocationRepository is a mock of LocationRepository interface.
type MockLocationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLocationRepositoryMockRecorder
	isgomock struct{}
}

// MockLocationRepositoryMockRecorder is the mock recorder for MockLocationRepository.
type MockLocationRepositoryMockRecorder struct {
	mock *MockLocationRepository
}

// NewMockLocationRepository creates a new mock instance.
func NewMockLocationRepository(ctrl *gomock.Controller) *MockLocationRepository {
	mock := &MockLocationRepository{ctrl: ctrl}
	mock.recorder = &MockLocationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLocationRepository) EXPECT() *MockLocationRepositoryMockRecorder {
	return m.recorder
}

// FindAll mocks base method.
func (m *MockLocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", ctx)
	ret0, _ := ret[0].([]domain.Location)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindAll indicates an expected call of FindAll.
func (mr *MockLocationRepositoryMockRecorder) FindAll(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockLocationRepository)(nil).FindAll), ctx)
}

// FindByCode mocks base method.
func (m *MockLocationRepository) FindByCode(ctx context.Context, code string) (*domain.Location, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByCode", ctx, code)
	ret0, _ := ret[0].(*domain.Location)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByCode indicates an expected call of FindByCode.
func (mr *MockLocationRepositoryMockRecorder) FindByCode(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByCode", reflect.TypeOf((*MockLocationRepository)(nil).FindByCode), ctx, code)
}

// FindByID mocks base method.
func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*domain.Location)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockLocationRepositoryMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockLocationRepository)(nil).FindByID), ctx, id)
}

// Insert mocks base method.
func (m *MockLocationRepository) Insert(ctx context.Context, location *domain.Location) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", ctx, location)
	ret0, _ := ret[0].(error)
	return ret0
}

// Insert indicates an expected call of Insert.
func (mr *MockLocationRepositoryMockRecorder) Insert(ctx, location any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockLocationRepository)(nil).Insert), ctx, location)
}

// MockCounterRepository is a mock of CounterRepository interface.
type MockCounterRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCounterRepositoryMockRecorder
	isgomock struct{}
}

// MockCounterRepositoryMockRecorder is the mock recorder for MockCounterRepository.
type MockCounterRepositoryMockRecorder struct {
	mock *MockCounterRepository
}

// NewMockCounterRepository creates a new mock instance.
func NewMockCounterRepository(ctrl *gomock.Controller) *MockCounterRepository {
	mock := &MockCounterRepository{ctrl: ctrl}
	mock.recorder = &MockCounterRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCounterRepository) EXPECT() *MockCounterRepositoryMockRecorder {
	return m.recorder
}

// DeleteOlderThan mocks base method.
func (m *MockCounterRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteOlderThan", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteOlderThan indicates an expected call of DeleteOlderThan.
func (mr *MockCounterRepositoryMockRecorder) DeleteOlderThan(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteOlderThan", reflect.TypeOf((*MockCounterRepository)(nil).DeleteOlderThan), ctx, cutoff)
}

// NextSequence mocks base method.
func (m *MockCounterRepository) NextSequence(ctx context.Context, date time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextSequence", ctx, date)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextSequence indicates an expected call of NextSequence.
func (mr *MockCounterRepositoryMockRecorder) NextSequence(ctx, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextSequence", reflect.TypeOf((*MockCounterRepository)(nil).NextSequence), ctx, date)
}

// NextSequenceFallback mocks base method.
func (m *MockCounterRepository) NextSequenceFallback(ctx context.Context, date time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextSequenceFallback", ctx, date)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextSequenceFallback indicates an expected call of NextSequenceFallback.
func (mr *MockCounterRepositoryMockRecorder) NextSequenceFallback(ctx, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextSequenceFallback", reflect.TypeOf((*MockCounterRepository)(nil).NextSequenceFallback), ctx, date)
}
