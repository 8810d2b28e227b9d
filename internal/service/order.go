package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/models"
)

// purchaseRewardRate is the share of the order total credited as coins at
// checkout. Fractional coins are truncated, never rounded up.
const purchaseRewardRate = 0.20

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvcPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentProfile is the card and delivery detail set submitted at checkout.
// Only the last four digits of the card are ever stored.
type PaymentProfile struct {
	CardNumber     string
	CVC            string
	CardholderName string
	Address        string
	Zip            string
}

// OrderService converts a session cart into a persisted order and credits the
// purchase coin reward in the same database transaction.
type OrderService struct {
	db   *gorm.DB
	cart ICartService
}

// NewOrderService creates a new OrderService instance
func NewOrderService(db *gorm.DB, cart ICartService) *OrderService {
	return &OrderService{db: db, cart: cart}
}

var _ IOrderService = (*OrderService)(nil)

// PurchaseReward returns the whole-coin reward for an order total.
func PurchaseReward(total float64) int {
	if total <= 0 || math.IsNaN(total) {
		return 0
	}
	return int(math.Floor(total * purchaseRewardRate))
}

// PlaceOrder validates the checkout, persists an order with denormalized line
// snapshots, and atomically credits the coin reward to the user's balance.
// The order insert and the balance credit run in one transaction; if the
// transaction fails the caller is told the order may be partially recorded.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []CartLine, payment PaymentProfile, timeSlot string) (*models.Order, int, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrAuthRequired
	}
	if len(lines) == 0 {
		return nil, 0, ErrEmptyOrder
	}
	if !cardNumberPattern.MatchString(payment.CardNumber) {
		return nil, 0, ErrInvalidPayment
	}
	if payment.CVC != "" && !cvcPattern.MatchString(payment.CVC) {
		return nil, 0, ErrInvalidPayment
	}

	total := CartTotal(lines)
	coinReward := PurchaseReward(total)

	order := &models.Order{
		ID:         uuid.New(),
		UserID:     userID,
		TotalPrice: total,
		TimeSlot:   timeSlot,
		Difficulty: hardestDifficulty(lines),
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			RecipeID:   line.RecipeID,
			Title:      line.Title,
			Price:      linePrice(line),
			ImageURL:   line.ImageURL,
			Difficulty: line.Difficulty,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		res := tx.Model(&models.UserProfile{}).
			Where("user_id = ?", userID).
			Update("coins", gorm.Expr("coins + ?", coinReward))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("no profile for user %s", userID)
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// The order is committed; a failed cart clear only leaves stale lines.
	if err := s.cart.Clear(ctx, userID); err != nil {
		log.Printf("[OrderService] failed to clear cart for user %s: %v", userID, err)
	}

	return order, coinReward, nil
}

// GetOrder retrieves one of the user's orders with its line items.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &order, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	result := make([]*models.Order, len(orders))
	for i := range orders {
		result[i] = &orders[i]
	}
	return result, nil
}

var difficultyRank = map[string]int{
	models.DifficultyEasy:   1,
	models.DifficultyMedium: 2,
	models.DifficultyHard:   3,
}

// hardestDifficulty picks the order-level difficulty label from its lines.
// The completion-proof reward is sized by this label.
func hardestDifficulty(lines []CartLine) string {
	best := lines[0].Difficulty
	bestRank := difficultyRank[best]
	for _, line := range lines[1:] {
		if r := difficultyRank[line.Difficulty]; r > bestRank {
			best, bestRank = line.Difficulty, r
		}
	}
	return best
}
