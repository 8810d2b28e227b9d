package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

// MockRewardService is a mock implementation of the IRewardService interface
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRewardService) SubmitCompletionProof(ctx context.Context, userID, orderID uuid.UUID, imageURL string) (int, error) {
	args := m.Called(ctx, userID, orderID, imageURL)
	return args.Int(0), args.Error(1)
}

func (m *MockRewardService) Redeem(ctx context.Context, userID uuid.UUID, cardType string) (*models.Redemption, error) {
	args := m.Called(ctx, userID, cardType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Redemption), args.Error(1)
}

func (m *MockRewardService) GiftCards() []service.GiftCard {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.GiftCard)
}
