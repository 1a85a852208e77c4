package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/mock"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecipeSvc(t *testing.T, ctrl *gomock.Controller) (*clientRecipeService, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientRecipeService(mockAdapter, logger.Nop()).(*clientRecipeService)
	return svc, mockAdapter
}

// ── Feed / Mine / Get ────────────────────────────────────────────────────────

func TestClientRecipeService_Feed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Recipe{{ID: "r1", Title: "Carbonara"}}
	mockAdapter.EXPECT().ListRecipes(ctx, 20, 40).Return(want, nil)

	got, err := svc.Feed(ctx, 20, 40)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientRecipeService_Mine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListUserRecipes(ctx).Return([]models.Recipe{{ID: "r1"}}, nil)

	got, err := svc.Mine(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClientRecipeService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetRecipe(ctx, "missing").
		Return(models.Recipe{}, errors.New("fetch recipe: not found: recipe not found"))

	_, err := svc.Get(ctx, "missing")
	require.Error(t, err)
}

func TestClientRecipeService_Get_MapsNotFoundSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	wrapped := fmt.Errorf("%w: %s", adapter.ErrNotFound, "recipe not found")
	mockAdapter.EXPECT().GetRecipe(ctx, "missing").Return(models.Recipe{}, wrapped)

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrRecipeNotFound)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestClientRecipeService_Create_NormalizesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	input := models.RecipeInput{
		Title:       "  Carbonara  ",
		Ingredients: []string{"eggs", "  ", "guanciale", ""},
		Steps:       []string{"whisk", "", "combine"},
		Tags:        []string{"pasta", " "},
	}

	mockAdapter.EXPECT().CreateRecipe(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got models.RecipeInput) (models.Recipe, error) {
			assert.Equal(t, "Carbonara", got.Title)
			assert.Equal(t, []string{"eggs", "guanciale"}, got.Ingredients)
			assert.Equal(t, []string{"whisk", "combine"}, got.Steps)
			assert.Equal(t, []string{"pasta"}, got.Tags)
			return models.Recipe{ID: "r1", Title: got.Title}, nil
		},
	)

	recipe, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "r1", recipe.ID)
}

func TestClientRecipeService_Create_TitleRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecipeSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.RecipeInput{Title: "   "})
	require.ErrorIs(t, err, ErrRecipeTitleRequired)
}

func TestClientRecipeService_Update_NotAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateRecipe(ctx, "r1", gomock.Any()).
		Return(models.Recipe{}, adapter.ErrForbidden)

	_, err := svc.Update(ctx, "r1", models.RecipeInput{Title: "Carbonara"})
	require.ErrorIs(t, err, ErrNotRecipeAuthor)
}

func TestClientRecipeService_Update_TitleRequired_SkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestRecipeSvc(t, ctrl)

	_, err := svc.Update(context.Background(), "r1", models.RecipeInput{})
	require.ErrorIs(t, err, ErrRecipeTitleRequired)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientRecipeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteRecipe(ctx, "r1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "r1"))
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestClientRecipeService_Search_TrimsCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestRecipeSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SearchRecipes(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got models.SearchQuery) (models.SearchResponse, error) {
			assert.Equal(t, "pasta", got.Query)
			assert.Equal(t, "Italian", got.Cuisine)
			assert.Equal(t, []string{"quick"}, got.Tags)
			return models.SearchResponse{Total: 1, Recipes: []models.Recipe{{ID: "r1"}}}, nil
		},
	)

	res, err := svc.Search(ctx, models.SearchQuery{
		Query:   " pasta ",
		Cuisine: " Italian ",
		Tags:    []string{"quick", "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}
