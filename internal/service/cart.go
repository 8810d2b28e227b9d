package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/platefull/backend/internal/models"
)

// cartTTL bounds how long an abandoned session cart lives in Redis.
const cartTTL = 24 * time.Hour

// CartLine is a snapshot of a recipe held in the session cart. It is never
// persisted to the database; checkout copies it into an OrderItem.
type CartLine struct {
	RecipeID   uuid.UUID `json:"recipe_id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"image_url"`
	Difficulty string    `json:"difficulty"`
	AddedAt    time.Time `json:"added_at"`
}

// CartService keeps one cart per signed-in user in a Redis hash keyed by the
// user id, one field per recipe id. The hash field layout makes the
// one-line-per-recipe invariant a property of the storage itself.
type CartService struct {
	redis *redis.Client
}

// NewCartService creates a new CartService instance
func NewCartService(redisClient *redis.Client) *CartService {
	return &CartService{redis: redisClient}
}

var _ ICartService = (*CartService)(nil)

func cartKey(userID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Add appends a snapshot of the recipe to the user's cart. Adding a recipe
// that is already present is rejected with ErrAlreadyInCart and leaves the
// cart unchanged.
func (s *CartService) Add(ctx context.Context, userID uuid.UUID, recipe *models.Recipe) error {
	line := CartLine{
		RecipeID:   recipe.ID,
		Title:      recipe.Title,
		Price:      recipe.Price,
		ImageURL:   recipe.ImageURL,
		Difficulty: recipe.Difficulty,
		AddedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal cart line: %w", err)
	}

	key := cartKey(userID)
	added, err := s.redis.HSetNX(ctx, key, recipe.ID.String(), data).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !added {
		return ErrAlreadyInCart
	}
	s.redis.Expire(ctx, key, cartTTL)
	return nil
}

// Remove drops the matching line if present. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	if err := s.redis.HDel(ctx, cartKey(userID), recipeID.String()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Clear empties the cart. Called after a successful checkout.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.redis.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Items returns the cart lines in the order they were added.
func (s *CartService) Items(ctx context.Context, userID uuid.UUID) ([]CartLine, error) {
	fields, err := s.redis.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	lines := make([]CartLine, 0, len(fields))
	for _, raw := range fields {
		var line CartLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return nil, fmt.Errorf("unmarshal cart line: %w", err)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].AddedAt.Before(lines[j].AddedAt) })
	return lines, nil
}

// Total returns the sum of line prices for the user's cart.
func (s *CartService) Total(ctx context.Context, userID uuid.UUID) (float64, error) {
	lines, err := s.Items(ctx, userID)
	if err != nil {
		return 0, err
	}
	return CartTotal(lines), nil
}

// CartTotal sums line prices, treating missing or invalid prices as zero. The
// result is never negative.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += linePrice(line)
	}
	return total
}

func linePrice(line CartLine) float64 {
	if math.IsNaN(line.Price) || math.IsInf(line.Price, 0) || line.Price < 0 {
		return 0
	}
	return line.Price
}
