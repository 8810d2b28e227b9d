package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/testhelpers"
)

// Full coin lifecycle against real PostgreSQL: checkout credit, proof credit,
// redemption debit.
func TestCoinLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := testhelpers.SetupPostgres(t)

	auth := NewAuthService(db, "test-secret")
	recipes := NewRecipeService(db)
	orders := NewOrderService(db, noopCart{})
	rewards := NewRewardService(db)

	ctx := context.Background()
	token, err := auth.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	userID := claims.UserID

	recipe, err := recipes.CreateRecipe(ctx, &models.Recipe{
		Title:      "Beef Wellington",
		Price:      60.00,
		Difficulty: models.DifficultyHard,
		AuthorID:   userID,
	})
	require.NoError(t, err)

	lines := []CartLine{{RecipeID: recipe.ID, Title: recipe.Title, Price: recipe.Price, Difficulty: recipe.Difficulty}}
	order, coins, err := orders.PlaceOrder(ctx, userID, lines, validPayment(), "19:00-20:00")
	require.NoError(t, err)
	assert.Equal(t, 12, coins)

	earned, err := rewards.SubmitCompletionProof(ctx, userID, order.ID, "https://img.example/wellington.jpg")
	require.NoError(t, err)
	assert.Equal(t, 15, earned)

	balance, err := rewards.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 27, balance)

	_, err = rewards.Redeem(ctx, userID, "starbucks")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Earn enough for a card, then spend it.
	for i := 0; i < 7; i++ {
		o, _, err := orders.PlaceOrder(ctx, userID, lines, validPayment(), "")
		require.NoError(t, err)
		_, err = rewards.SubmitCompletionProof(ctx, userID, o.ID, "https://img.example/proof.jpg")
		require.NoError(t, err)
	}

	balance, err = rewards.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 27+7*27, balance)

	redemption, err := rewards.Redeem(ctx, userID, "starbucks")
	require.NoError(t, err)
	assert.Equal(t, 100, redemption.CoinCost)

	final, err := rewards.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 27+7*27-100, final)
}
