package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

type OrderHandler struct {
	orders      service.IOrderService
	cart        service.ICartService
	profile     service.IProfileService
	auth        service.IAuthService
	rateLimiter *middleware.RateLimiter
}

func NewOrderHandler(orders service.IOrderService, cart service.ICartService, profile service.IProfileService, auth service.IAuthService, rateLimiter *middleware.RateLimiter) *OrderHandler {
	return &OrderHandler{orders: orders, cart: cart, profile: profile, auth: auth, rateLimiter: rateLimiter}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders", middleware.AuthMiddleware(h.auth))
	if h.rateLimiter != nil {
		orders.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		orders.POST("", h.Checkout)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

// Checkout turns the session cart into a persisted order. The coin reward is
// returned so the UI can confirm what was credited.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines, err := h.cart.Items(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	payment := service.PaymentProfile{
		CardNumber:     req.CardNumber,
		CVC:            req.CVC,
		CardholderName: req.CardholderName,
		Address:        req.Address,
		Zip:            req.Zip,
	}

	order, coinReward, err := h.orders.PlaceOrder(c.Request.Context(), userID, lines, payment, req.TimeSlot)
	if err != nil {
		abortError(c, err)
		return
	}

	if req.SaveProfile {
		if _, err := h.profile.UpdatePaymentProfile(c.Request.Context(), userID, payment); err != nil {
			log.Printf("[OrderHandler] failed to save payment profile for user %s: %v", userID, err)
		}
	}

	c.JSON(http.StatusCreated, PlaceOrderResponse{Order: order, CoinReward: coinReward})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
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

	order, err := h.orders.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
