package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

// maxImageBytes caps recipe and proof photo uploads.
const maxImageBytes = 5 << 20

type RecipeHandler struct {
	recipes service.IRecipeService
	images  service.IImageService
	auth    service.IAuthService
}

func NewRecipeHandler(recipes service.IRecipeService, images service.IImageService, auth service.IAuthService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images, auth: auth}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/cuisines", h.ListByCuisine)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.auth), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.auth), h.UpdateRecipe)
		recipes.POST("/image", middleware.AuthMiddleware(h.auth), h.UploadImage)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.RecipeFilter{
		Query:   c.Query("q"),
		Cuisine: c.Query("cuisine"),
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) ListByCuisine(c *gin.Context) {
	groups, err := h.recipes.ListByCuisine(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cuisines": groups})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe := &models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		CuisineType:  req.CuisineType,
		ImageURL:     req.ImageURL,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Difficulty:   req.Difficulty,
		Price:        req.Price,
		Calories:     req.Calories,
		Protein:      req.Protein,
		AuthorID:     userID,
	}

	created, err := h.recipes.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	updated, err := h.recipes.UpdateRecipe(c.Request.Context(), userID, id, &models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		CuisineType:  req.CuisineType,
		ImageURL:     req.ImageURL,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Difficulty:   req.Difficulty,
		Price:        req.Price,
		Calories:     req.Calories,
		Protein:      req.Protein,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UploadImage accepts a multipart recipe photo and returns its public URL.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	data, contentType, err := readImageUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.images.Upload(c.Request.Context(), data, service.RecipeImageKey(contentType), contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// readImageUpload pulls the "image" file out of a multipart request.
func readImageUpload(c *gin.Context) ([]byte, string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, "", err
	}
	if header.Size > maxImageBytes {
		return nil, "", errImageTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return nil, "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
