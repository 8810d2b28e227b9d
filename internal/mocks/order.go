package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

// MockOrderService is a mock implementation of the IOrderService interface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []service.CartLine, payment service.PaymentProfile, timeSlot string) (*models.Order, int, error) {
	args := m.Called(ctx, userID, lines, payment, timeSlot)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*models.Order), args.Int(1), args.Error(2)
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}
