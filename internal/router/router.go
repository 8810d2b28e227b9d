package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platefull/backend/internal/api"
	"github.com/platefull/backend/internal/middleware"
)

// Handlers bundles the API handlers mounted by SetupRouter.
type Handlers struct {
	Auth    *api.AuthHandler
	Recipe  *api.RecipeHandler
	Cart    *api.CartHandler
	Order   *api.OrderHandler
	Reward  *api.RewardHandler
	Profile *api.ProfileHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)
	h.Recipe.RegisterRoutes(v1)
	h.Cart.RegisterRoutes(v1)
	h.Profile.RegisterRoutes(v1)
	h.Order.RegisterRoutes(v1)
	h.Reward.RegisterRoutes(v1)

	return router
}
