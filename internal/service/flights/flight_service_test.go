package flights

import (
	"context"
	"errors"
	"testing"

	"flightbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1, Code: "FB101"}}
	cache.On("GetFlights", ctx).Return(cached, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestFlightService_List_CacheMissFallsThrough(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: 1, Code: "FB101"}, {ID: 2, Code: "FB102"}}
	cache.On("GetFlights", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(flights, nil).Once()
	cache.On("SetFlights", ctx, flights).Return(nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_List_CacheErrorDegradesToDatabase(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: 1}}
	cache.On("GetFlights", ctx).Return(nil, errors.New("redis down")).Once()
	repo.On("List", ctx).Return(flights, nil).Once()
	cache.On("SetFlights", ctx, flights).Return(errors.New("redis down")).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, got)
}

func TestFlightService_List_NoCache(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	flights := []domain.Flight{{ID: 1}}
	repo.On("List", ctx).Return(flights, nil).Once()

	got, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, got)
}

func TestFlightService_GetByID(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	flight := &domain.Flight{ID: 3, Code: "FB201"}
	repo.On("GetByID", ctx, int64(3)).Return(flight, nil).Once()

	got, err := service.GetByID(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, flight, got)
}
