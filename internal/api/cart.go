package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

type CartHandler struct {
	cart    service.ICartService
	recipes service.IRecipeService
	auth    service.IAuthService
}

func NewCartHandler(cart service.ICartService, recipes service.IRecipeService, auth service.IAuthService) *CartHandler {
	return &CartHandler{cart: cart, recipes: recipes, auth: auth}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart", middleware.AuthMiddleware(h.auth))
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.DELETE("/items/:recipeId", h.RemoveItem)
		cart.DELETE("", h.ClearCart)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := h.cart.Items(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, CartResponse{Items: items, Total: service.CartTotal(items)})
}

// AddItem snapshots the recipe into the cart. A recipe already in the cart is
// reported as a conflict and the cart is left unchanged.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), req.RecipeID)
	if err != nil {
		abortError(c, err)
		return
	}

	if err := h.cart.Add(c.Request.Context(), userID, recipe); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Recipe added to cart"})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.cart.Remove(c.Request.Context(), userID, recipeID); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe removed from cart"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.cart.Clear(c.Request.Context(), userID); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
