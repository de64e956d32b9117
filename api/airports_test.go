package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flightbooking/internal/domain"
	"flightbooking/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func TestAirportHandler_list(t *testing.T) {
	mockService := &MockAirportUseCase{}
	handler := NewAirportHandler(mockService, logger.NewLogger())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/airports", nil)

	airports := []domain.Airport{
		{ID: 1, Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York"},
		{ID: 2, Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles"},
	}
	mockService.On("List", c.Request.Context()).Return(airports, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Airport
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "JFK", response[0].Code)

	mockService.AssertExpectations(t)
}

func TestAirportHandler_list_storeFailure(t *testing.T) {
	mockService := &MockAirportUseCase{}
	handler := NewAirportHandler(mockService, logger.NewLogger())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/airports", nil)

	mockService.On("List", c.Request.Context()).Return(nil, errors.New("connection refused"))

	handler.list(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// the raw store error must not leak to the client
	assert.NotContains(t, w.Body.String(), "connection refused")

	mockService.AssertExpectations(t)
}
