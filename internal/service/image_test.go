package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecipeImageKey(t *testing.T) {
	key := RecipeImageKey("image/jpeg")
	assert.True(t, strings.HasPrefix(key, "recipe-images/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	assert.True(t, strings.HasSuffix(RecipeImageKey("image/png"), ".png"))
	assert.True(t, strings.HasSuffix(RecipeImageKey("image/webp"), ".webp"))
	// Unknown content types default to png.
	assert.True(t, strings.HasSuffix(RecipeImageKey("application/octet-stream"), ".png"))
}

func TestProofImageKeyScopedToUserAndOrder(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	key := ProofImageKey(userID, orderID, "image/jpeg")
	assert.Contains(t, key, "proofs/"+userID.String()+"/"+orderID.String()+"/")

	// Keys are unique per upload even for the same order.
	assert.NotEqual(t, key, ProofImageKey(userID, orderID, "image/jpeg"))
}
