package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GenerateToken(userID uuid.UUID, username string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for payment/delivery profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdatePaymentProfile(ctx context.Context, userID uuid.UUID, payment PaymentProfile) (*models.UserProfile, error)
}

// IRecipeService defines the interface for catalog operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, authorID, id uuid.UUID, updated *models.Recipe) (*models.Recipe, error)
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]*models.Recipe, error)
	ListByCuisine(ctx context.Context) ([]CuisineGroup, error)
	ListAuthorRecipes(ctx context.Context, authorID uuid.UUID) ([]*models.Recipe, error)
}

// ICartService defines the interface for the session cart
type ICartService interface {
	Add(ctx context.Context, userID uuid.UUID, recipe *models.Recipe) error
	Remove(ctx context.Context, userID, recipeID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Items(ctx context.Context, userID uuid.UUID) ([]CartLine, error)
	Total(ctx context.Context, userID uuid.UUID) (float64, error)
}

// IOrderService defines the interface for the order ledger
type IOrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, lines []CartLine, payment PaymentProfile, timeSlot string) (*models.Order, int, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
}

// IRewardService defines the interface for the reward ledger
type IRewardService interface {
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
	SubmitCompletionProof(ctx context.Context, userID, orderID uuid.UUID, imageURL string) (int, error)
	Redeem(ctx context.Context, userID uuid.UUID, cardType string) (*models.Redemption, error)
	GiftCards() []GiftCard
}

// IImageService defines the interface for image storage
type IImageService interface {
	Upload(ctx context.Context, data []byte, key, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}
