package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

type RewardHandler struct {
	rewards     service.IRewardService
	orders      service.IOrderService
	images      service.IImageService
	auth        service.IAuthService
	rateLimiter *middleware.RateLimiter
}

func NewRewardHandler(rewards service.IRewardService, orders service.IOrderService, images service.IImageService, auth service.IAuthService, rateLimiter *middleware.RateLimiter) *RewardHandler {
	return &RewardHandler{rewards: rewards, orders: orders, images: images, auth: auth, rateLimiter: rateLimiter}
}

func (h *RewardHandler) RegisterRoutes(router *gin.RouterGroup) {
	rewards := router.Group("/rewards", middleware.AuthMiddleware(h.auth))
	if h.rateLimiter != nil {
		rewards.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		rewards.GET("", h.GetRewards)
		rewards.POST("/redeem", h.Redeem)
	}
	router.POST("/orders/:id/proof", middleware.AuthMiddleware(h.auth), h.SubmitProof)
}

// GetRewards returns the coin balance, order history and the gift-card
// catalog in one response, the rewards page payload.
func (h *RewardHandler) GetRewards(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	balance, err := h.rewards.Balance(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, RewardsResponse{
		Balance:   balance,
		Orders:    orders,
		GiftCards: h.rewards.GiftCards(),
	})
}

// SubmitProof uploads a completion-proof photo for an order and credits the
// difficulty-based coin reward. At most one proof is ever rewarded per order.
func (h *RewardHandler) SubmitProof(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	data, contentType, err := readImageUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, err := h.images.Upload(c.Request.Context(), data, service.ProofImageKey(userID, orderID, contentType), contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	coins, err := h.rewards.SubmitCompletionProof(c.Request.Context(), userID, orderID, imageURL)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coins_earned":    coins,
		"proof_image_url": imageURL,
	})
}

func (h *RewardHandler) Redeem(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	redemption, err := h.rewards.Redeem(c.Request.Context(), userID, req.CardType)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Gift card redeemed",
		"redemption": redemption,
	})
}
