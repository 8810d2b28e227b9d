package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

// MockProfileService is a mock implementation of the IProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdatePaymentProfile(ctx context.Context, userID uuid.UUID, payment service.PaymentProfile) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}
