package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

type clientRecipeService struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

func NewClientRecipeService(backendAdapter adapter.BackendAdapter, log *logger.Logger) ClientRecipeService {
	return &clientRecipeService{backend: backendAdapter, logger: log}
}

func (r *clientRecipeService) Feed(ctx context.Context, limit, offset int) ([]models.Recipe, error) {
	recipes, err := r.backend.ListRecipes(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", mapAdapterError(err))
	}
	return recipes, nil
}

func (r *clientRecipeService) Mine(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := r.backend.ListUserRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch own recipes: %w", mapAdapterError(err))
	}
	return recipes, nil
}

func (r *clientRecipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	recipe, err := r.backend.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("fetch recipe: %w", mapAdapterError(err))
	}
	return recipe, nil
}

func (r *clientRecipeService) Create(ctx context.Context, input models.RecipeInput) (models.Recipe, error) {
	normalized, err := normalizeRecipeInput(input)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, err := r.backend.CreateRecipe(ctx, normalized)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe: %w", mapAdapterError(err))
	}
	r.logger.Debug().Str("recipe_id", recipe.ID).Msg("recipe created")
	return recipe, nil
}

func (r *clientRecipeService) Update(ctx context.Context, id string, input models.RecipeInput) (models.Recipe, error) {
	normalized, err := normalizeRecipeInput(input)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, err := r.backend.UpdateRecipe(ctx, id, normalized)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe: %w", mapAdapterError(err))
	}
	return recipe, nil
}

func (r *clientRecipeService) Delete(ctx context.Context, id string) error {
	if err := r.backend.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("delete recipe: %w", mapAdapterError(err))
	}
	return nil
}

func (r *clientRecipeService) Search(ctx context.Context, query models.SearchQuery) (models.SearchResponse, error) {
	query.Query = strings.TrimSpace(query.Query)
	query.Cuisine = strings.TrimSpace(query.Cuisine)
	query.Tags = dropBlank(query.Tags)

	results, err := r.backend.SearchRecipes(ctx, query)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search recipes: %w", mapAdapterError(err))
	}
	return results, nil
}

// normalizeRecipeInput trims the title and drops blank ingredient and step
// entries so a stray empty line in the editor never reaches the backend.
func normalizeRecipeInput(input models.RecipeInput) (models.RecipeInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return models.RecipeInput{}, ErrRecipeTitleRequired
	}

	input.Description = strings.TrimSpace(input.Description)
	input.Ingredients = dropBlank(input.Ingredients)
	input.Steps = dropBlank(input.Steps)
	input.Cuisine = strings.TrimSpace(input.Cuisine)
	input.Tags = dropBlank(input.Tags)
	return input, nil
}

func dropBlank(values []string) []string {
	if values == nil {
		return nil
	}
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return kept
}
