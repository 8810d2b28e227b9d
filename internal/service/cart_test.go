package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/testhelpers"
)

func TestCartTotal(t *testing.T) {
	assert.Zero(t, CartTotal(nil))
	assert.InDelta(t, 15.50, CartTotal([]CartLine{{Price: 9.50}, {Price: 6.00}}), 0.001)
	// Missing, negative, and non-finite prices count as zero.
	assert.InDelta(t, 5, CartTotal([]CartLine{{Price: 5}, {}}), 0.001)
	assert.InDelta(t, 5, CartTotal([]CartLine{{Price: 5}, {Price: -3}}), 0.001)
	assert.InDelta(t, 5, CartTotal([]CartLine{{Price: 5}, {Price: math.NaN()}}), 0.001)
	assert.InDelta(t, 5, CartTotal([]CartLine{{Price: 5}, {Price: math.Inf(1)}}), 0.001)
}

func TestCartAddAndList(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	svc := NewCartService(client)
	userID := uuid.New()

	first := &models.Recipe{ID: uuid.New(), Title: "Pho", Price: 8.50, Difficulty: models.DifficultyEasy}
	second := &models.Recipe{ID: uuid.New(), Title: "Banh Mi", Price: 6.00, Difficulty: models.DifficultyMedium}

	require.NoError(t, svc.Add(context.Background(), userID, first))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.Add(context.Background(), userID, second))

	lines, err := svc.Items(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Pho", lines[0].Title)
	assert.Equal(t, "Banh Mi", lines[1].Title)

	total, err := svc.Total(context.Background(), userID)
	require.NoError(t, err)
	assert.InDelta(t, 14.50, total, 0.001)
}

func TestCartRejectsDuplicate(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	svc := NewCartService(client)
	userID := uuid.New()

	recipe := &models.Recipe{ID: uuid.New(), Title: "Pho", Price: 8.50}
	require.NoError(t, svc.Add(context.Background(), userID, recipe))

	err := svc.Add(context.Background(), userID, recipe)
	assert.ErrorIs(t, err, ErrAlreadyInCart)

	lines, err := svc.Items(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCartRemoveAndClear(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	svc := NewCartService(client)
	userID := uuid.New()

	recipe := &models.Recipe{ID: uuid.New(), Title: "Pho", Price: 8.50}
	require.NoError(t, svc.Add(context.Background(), userID, recipe))

	// Removing an absent line is a no-op.
	require.NoError(t, svc.Remove(context.Background(), userID, uuid.New()))
	lines, err := svc.Items(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	require.NoError(t, svc.Remove(context.Background(), userID, recipe.ID))
	lines, err = svc.Items(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, svc.Add(context.Background(), userID, recipe))
	require.NoError(t, svc.Clear(context.Background(), userID))
	lines, err = svc.Items(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	svc := NewCartService(client)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.Add(context.Background(), alice, &models.Recipe{ID: uuid.New(), Title: "Pho", Price: 8.50}))

	lines, err := svc.Items(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
