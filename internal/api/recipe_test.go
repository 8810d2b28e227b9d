package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/platefull/backend/internal/mocks"
	"github.com/platefull/backend/internal/models"
	"github.com/platefull/backend/internal/service"
)

func newRecipeRouter(userID uuid.UUID, recipes *mocks.MockRecipeService, images *mocks.MockImageService) *gin.Engine {
	handler := NewRecipeHandler(recipes, images, newAuthMock(userID))
	return newTestRouter(func(v1 *gin.RouterGroup) { handler.RegisterRoutes(v1) })
}

func TestListRecipesPublic(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	recipes.On("ListRecipes", mock.Anything, service.RecipeFilter{}).
		Return([]*models.Recipe{{ID: uuid.New(), Title: "Pho"}}, nil)

	router := newRecipeRouter(uuid.New(), recipes, new(mocks.MockImageService))

	// Browsing needs no token.
	w := doJSON(t, router, "GET", "/api/v1/recipes", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["recipes"], 1)
}

func TestListRecipesWithFilters(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	recipes.On("ListRecipes", mock.Anything, service.RecipeFilter{Query: "ramen", Cuisine: "japanese"}).
		Return([]*models.Recipe{}, nil)

	router := newRecipeRouter(uuid.New(), recipes, new(mocks.MockImageService))
	w := doJSON(t, router, "GET", "/api/v1/recipes?q=ramen&cuisine=japanese", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	recipes.AssertExpectations(t)
}

func TestListByCuisine(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	recipes.On("ListByCuisine", mock.Anything).Return([]service.CuisineGroup{
		{Cuisine: "thai", Recipes: []*models.Recipe{{ID: uuid.New()}}},
		{Cuisine: "italian", Recipes: []*models.Recipe{{ID: uuid.New()}}},
	}, nil)

	router := newRecipeRouter(uuid.New(), recipes, new(mocks.MockImageService))
	w := doJSON(t, router, "GET", "/api/v1/recipes/cuisines", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["cuisines"], 2)
}

func TestCreateRecipeRequiresAuth(t *testing.T) {
	router := newRecipeRouter(uuid.New(), new(mocks.MockRecipeService), new(mocks.MockImageService))

	w := doJSON(t, router, "POST", "/api/v1/recipes", map[string]interface{}{"title": "Pho"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipe(t *testing.T) {
	userID := uuid.New()
	recipes := new(mocks.MockRecipeService)
	recipes.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(r *models.Recipe) bool {
		return r.Title == "Pho" && r.AuthorID == userID
	})).Return(&models.Recipe{ID: uuid.New(), Title: "Pho", AuthorID: userID}, nil)

	router := newRecipeRouter(userID, recipes, new(mocks.MockImageService))
	w := doJSON(t, router, "POST", "/api/v1/recipes", map[string]interface{}{
		"title":        "Pho",
		"ingredients":  []string{"noodles", "broth"},
		"instructions": []string{"simmer", "assemble"},
		"difficulty":   "medium",
		"price":        9.50,
	}, testToken)
	assert.Equal(t, http.StatusCreated, w.Code)
	recipes.AssertExpectations(t)
}

func TestCreateRecipeRejectsBadDifficulty(t *testing.T) {
	router := newRecipeRouter(uuid.New(), new(mocks.MockRecipeService), new(mocks.MockImageService))
	w := doJSON(t, router, "POST", "/api/v1/recipes", map[string]interface{}{
		"title":        "Pho",
		"ingredients":  []string{"noodles"},
		"instructions": []string{"cook"},
		"difficulty":   "impossible",
	}, testToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipeForbiddenForNonAuthor(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()

	recipes := new(mocks.MockRecipeService)
	recipes.On("UpdateRecipe", mock.Anything, userID, recipeID, mock.Anything).Return(nil, service.ErrForbidden)

	router := newRecipeRouter(userID, recipes, new(mocks.MockImageService))
	w := doJSON(t, router, "PUT", "/api/v1/recipes/"+recipeID.String(), map[string]interface{}{"title": "Hijacked"}, testToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetRecipeNotFound(t *testing.T) {
	recipeID := uuid.New()
	recipes := new(mocks.MockRecipeService)
	recipes.On("GetRecipe", mock.Anything, recipeID).Return(nil, service.ErrNotFound)

	router := newRecipeRouter(uuid.New(), recipes, new(mocks.MockImageService))
	w := doJSON(t, router, "GET", "/api/v1/recipes/"+recipeID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
