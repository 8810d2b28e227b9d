package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

type ProfileHandler struct {
	profile service.IProfileService
	auth    service.IAuthService
}

func NewProfileHandler(profile service.IProfileService, auth service.IAuthService) *ProfileHandler {
	return &ProfileHandler{profile: profile, auth: auth}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile", middleware.AuthMiddleware(h.auth))
	{
		profile.GET("", h.GetProfile)
		profile.PUT("/payment", h.UpdatePaymentProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.profile.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdatePaymentProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdatePaymentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profile.UpdatePaymentProfile(c.Request.Context(), userID, service.PaymentProfile{
		CardNumber:     req.CardNumber,
		CardholderName: req.CardholderName,
		Address:        req.Address,
		Zip:            req.Zip,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
