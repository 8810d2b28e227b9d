package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/models"
)

// RecipeFilter narrows a catalog listing.
type RecipeFilter struct {
	Query   string
	Cuisine string
}

// CuisineGroup is one browse section on the marketplace front page.
type CuisineGroup struct {
	Cuisine string           `json:"cuisine"`
	Recipes []*models.Recipe `json:"recipes"`
}

// RecipeService handles catalog reads and author-owned writes. Recipes are
// never deleted by this service.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

var _ IRecipeService = (*RecipeService)(nil)

// CreateRecipe creates a new recipe owned by its author
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = models.DifficultyEasy
	}
	if recipe.Price < 0 {
		recipe.Price = 0
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &recipe, nil
}

// UpdateRecipe applies an author's edit. Editing someone else's recipe fails
// with ErrForbidden. Historical order snapshots are unaffected by edits.
func (s *RecipeService) UpdateRecipe(ctx context.Context, authorID, id uuid.UUID, updated *models.Recipe) (*models.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != authorID {
		return nil, ErrForbidden
	}

	updated.ID = id
	updated.AuthorID = existing.AuthorID
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updated).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return s.GetRecipe(ctx, id)
}

// ListRecipes lists catalog recipes, optionally filtered by a keyword query
// and a cuisine type.
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx)

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine_type = ?", filter.Cuisine)
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// ListByCuisine groups the catalog into one section per cuisine type, the
// front-page browse layout.
func (s *RecipeService) ListByCuisine(ctx context.Context) ([]CuisineGroup, error) {
	recipes, err := s.ListRecipes(ctx, RecipeFilter{})
	if err != nil {
		return nil, err
	}

	byCuisine := make(map[string][]*models.Recipe)
	var order []string
	for _, recipe := range recipes {
		cuisine := recipe.CuisineType
		if cuisine == "" {
			cuisine = "other"
		}
		if _, seen := byCuisine[cuisine]; !seen {
			order = append(order, cuisine)
		}
		byCuisine[cuisine] = append(byCuisine[cuisine], recipe)
	}

	groups := make([]CuisineGroup, 0, len(order))
	for _, cuisine := range order {
		groups = append(groups, CuisineGroup{Cuisine: cuisine, Recipes: byCuisine[cuisine]})
	}
	return groups, nil
}

// ListAuthorRecipes retrieves the recipes a user has published.
func (s *RecipeService) ListAuthorRecipes(ctx context.Context, authorID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}
