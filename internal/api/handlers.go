package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/service"
)

var errImageTooLarge = errors.New("image exceeds the 5MB upload limit")

// userIDFromContext reads the authenticated user id stored by AuthMiddleware.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// abortError maps service errors to HTTP statuses and writes the JSON body.
func abortError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyClaimed), errors.Is(err, service.ErrAlreadyInCart):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
