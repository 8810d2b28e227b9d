package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/models"
)

// ProfileService reads and updates the saved payment/delivery profile. It
// never touches the coin balance; only the order and reward services do.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

var _ IProfileService = (*ProfileService)(nil)

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &profile, nil
}

// UpdatePaymentProfile validates and saves the checkout details. The card
// number itself is discarded after validation; only the last four digits are
// kept for display.
func (s *ProfileService) UpdatePaymentProfile(ctx context.Context, userID uuid.UUID, payment PaymentProfile) (*models.UserProfile, error) {
	if !cardNumberPattern.MatchString(payment.CardNumber) {
		return nil, ErrInvalidPayment
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.CardholderName = payment.CardholderName
	profile.CardLast4 = payment.CardNumber[len(payment.CardNumber)-4:]
	profile.Address = payment.Address
	profile.Zip = payment.Zip

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return profile, nil
}
