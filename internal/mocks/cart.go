package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

// MockCartService is a mock implementation of the ICartService interface
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(ctx context.Context, userID uuid.UUID, recipe *models.Recipe) error {
	args := m.Called(ctx, userID, recipe)
	return args.Error(0)
}

func (m *MockCartService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartService) Items(ctx context.Context, userID uuid.UUID) ([]service.CartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CartLine), args.Error(1)
}

func (m *MockCartService) Total(ctx context.Context, userID uuid.UUID) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}
