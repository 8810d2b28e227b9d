package api

import (
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	CuisineType  string   `json:"cuisine_type"`
	ImageURL     string   `json:"image_url"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions []string `json:"instructions" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Price        float64  `json:"price" binding:"gte=0"`
	Calories     *float64 `json:"calories"`
	Protein      *float64 `json:"protein"`
}

// UpdateRecipeRequest represents the request body for editing a recipe
type UpdateRecipeRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CuisineType  string   `json:"cuisine_type"`
	ImageURL     string   `json:"image_url"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Price        float64  `json:"price" binding:"gte=0"`
	Calories     *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
}

type AddToCartRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
}

type CartResponse struct {
	Items []service.CartLine `json:"items"`
	Total float64            `json:"total"`
}

// CheckoutRequest carries the payment/delivery details for order placement.
// The card number is validated server-side and never stored in full.
type CheckoutRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	CVC            string `json:"cvc"`
	CardholderName string `json:"cardholder_name"`
	Address        string `json:"address"`
	Zip            string `json:"zip"`
	TimeSlot       string `json:"time_slot" binding:"required"`
	SaveProfile    bool   `json:"save_profile"`
}

type PlaceOrderResponse struct {
	Order      *models.Order `json:"order"`
	CoinReward int           `json:"coin_reward"`
}

type RewardsResponse struct {
	Balance   int                `json:"balance"`
	Orders    []*models.Order    `json:"orders"`
	GiftCards []service.GiftCard `json:"gift_cards"`
}

type RedeemRequest struct {
	CardType string `json:"card_type" binding:"required"`
}

type UpdatePaymentProfileRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	CardholderName string `json:"cardholder_name"`
	Address        string `json:"address"`
	Zip            string `json:"zip"`
}
