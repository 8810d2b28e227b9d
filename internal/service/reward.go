package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/models"
)

// GiftCard is a redeemable reward from the fixed catalog.
type GiftCard struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	CoinCost int    `json:"coin_cost"`
}

var giftCards = map[string]GiftCard{
	"starbucks": {Type: "starbucks", Value: "$10 Starbucks Gift Card", CoinCost: 100},
	"amazon":    {Type: "amazon", Value: "$25 Amazon Gift Card", CoinCost: 250},
	"uber":      {Type: "uber", Value: "$50 Uber Eats Voucher", CoinCost: 500},
}

// RewardService reads coin balances and past orders, credits completion-proof
// rewards, and debits balances on gift-card redemption.
type RewardService struct {
	db *gorm.DB
}

// NewRewardService creates a new RewardService instance
func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

var _ IRewardService = (*RewardService)(nil)

// CoinsForDifficulty returns the completion-proof reward for a difficulty
// label. Unknown labels earn nothing.
func CoinsForDifficulty(difficulty string) int {
	switch difficulty {
	case models.DifficultyEasy:
		return 5
	case models.DifficultyMedium:
		return 10
	case models.DifficultyHard:
		return 15
	default:
		return 0
	}
}

// Balance returns the user's current coin balance.
func (s *RewardService) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return profile.Coins, nil
}

// SubmitCompletionProof marks the order's reward claimed and credits
// CoinsForDifficulty(order difficulty) to the owning user. The claim flip is a
// conditional update, so a second submission for the same order fails with
// ErrAlreadyClaimed and leaves the balance untouched.
func (s *RewardService) SubmitCompletionProof(ctx context.Context, userID, orderID uuid.UUID, imageURL string) (int, error) {
	var coins int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND reward_claimed = ?", orderID, false).
			Updates(map[string]interface{}{
				"reward_claimed":  true,
				"proof_image_url": imageURL,
			})
		if res.Error != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyClaimed
		}

		coins = CoinsForDifficulty(order.Difficulty)
		if coins == 0 {
			return nil
		}
		credit := tx.Model(&models.UserProfile{}).
			Where("user_id = ?", userID).
			Update("coins", gorm.Expr("coins + ?", coins))
		if credit.Error != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, credit.Error)
		}
		if credit.RowsAffected == 0 {
			return fmt.Errorf("%w: no profile for user %s", ErrPersistence, userID)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return coins, nil
}

// Redeem debits the gift card's coin cost from the user's balance. The debit
// is a conditional decrement against the stored balance, never a value cached
// by the client, so concurrent redemptions from two devices cannot overspend.
func (s *RewardService) Redeem(ctx context.Context, userID uuid.UUID, cardType string) (*models.Redemption, error) {
	card, ok := giftCards[cardType]
	if !ok {
		return nil, ErrNotFound
	}

	var redemption *models.Redemption
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserProfile{}).
			Where("user_id = ? AND coins >= ?", userID, card.CoinCost).
			Update("coins", gorm.Expr("coins - ?", card.CoinCost))
		if res.Error != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.UserProfile{}).Where("user_id = ?", userID).Count(&count).Error; err == nil && count == 0 {
				return ErrNotFound
			}
			return ErrInsufficientBalance
		}

		redemption = &models.Redemption{
			ID:       uuid.New(),
			UserID:   userID,
			CardType: card.Type,
			CardValue: card.Value,
			CoinCost: card.CoinCost,
		}
		if err := tx.Create(redemption).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return redemption, nil
}

// GiftCards lists the redeemable catalog, cheapest first.
func (s *RewardService) GiftCards() []GiftCard {
	cards := make([]GiftCard, 0, len(giftCards))
	for _, card := range giftCards {
		cards = append(cards, card)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].CoinCost < cards[j].CoinCost })
	return cards
}
