// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/recipe"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(recipeRepo outbound.RecipeRepository, logger *zap.Logger) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe validates and stores a new recipe aggregate
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeResult, error) {
	s.logger.Info("Creating new recipe",
		zap.String("title", cmd.Title),
		zap.Int("ingredients", len(cmd.Ingredients)),
	)

	aggregate := buildAggregate(uuid.New(), cmd.Title, cmd.Description, cmd.Instructions,
		cmd.PrepTime, cmd.CookTime, cmd.Servings, cmd.Category, cmd.Ingredients, cmd.Nutrition)

	if err := validateAggregate(aggregate); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.CreateAggregate(ctx, aggregate); err != nil {
		return nil, err
	}

	s.logger.Info("Recipe created successfully",
		zap.String("recipe_id", aggregate.ID.String()),
		zap.String("title", aggregate.Title),
	)

	return &inbound.RecipeResult{
		Recipe:     toDTO(aggregate),
		Advisories: collectAdvisories(aggregate),
	}, nil
}

// ReplaceRecipe validates the submitted aggregate and replaces the
// stored one wholesale. Ingredients and nutrition not present in the
// command no longer exist after a successful replace.
func (s *RecipeService) ReplaceRecipe(ctx context.Context, cmd inbound.ReplaceRecipeCommand) (*inbound.RecipeResult, error) {
	s.logger.Info("Replacing recipe",
		zap.String("recipe_id", cmd.RecipeID.String()),
	)

	aggregate := buildAggregate(cmd.RecipeID, cmd.Title, cmd.Description, cmd.Instructions,
		cmd.PrepTime, cmd.CookTime, cmd.Servings, cmd.Category, cmd.Ingredients, cmd.Nutrition)

	if err := validateAggregate(aggregate); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.ReplaceAggregate(ctx, aggregate); err != nil {
		return nil, err
	}

	// Re-read so the response carries stored timestamps
	stored, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	s.logger.Info("Recipe replaced successfully",
		zap.String("recipe_id", cmd.RecipeID.String()),
	)

	return &inbound.RecipeResult{
		Recipe:     toDTO(stored),
		Advisories: collectAdvisories(stored),
	}, nil
}

// DeleteRecipe removes a recipe together with its ingredients and nutrition
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	s.logger.Info("Deleting recipe",
		zap.String("recipe_id", recipeID.String()),
	)

	return s.recipeRepo.DeleteAggregate(ctx, recipeID)
}

// GetRecipeByID loads a single recipe aggregate
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	aggregate, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	dto := toDTO(aggregate)
	return &dto, nil
}

// ListRecipes returns all recipes, newest first
func (s *RecipeService) ListRecipes(ctx context.Context) ([]inbound.RecipeDTO, error) {
	aggregates, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return toDTOs(aggregates), nil
}

// SearchByIngredient returns recipes containing an ingredient whose
// name matches the query, case-insensitively. Any non-empty substring
// is a valid query; no matches is an empty list, not an error.
func (s *RecipeService) SearchByIngredient(ctx context.Context, ingredientName string) ([]inbound.RecipeDTO, error) {
	if ingredientName == "" {
		return nil, errors.NewBadRequestError("Ingredient name is required")
	}

	aggregates, err := s.recipeRepo.SearchByIngredient(ctx, ingredientName)
	if err != nil {
		return nil, err
	}

	return toDTOs(aggregates), nil
}

// AnalyzeRecipe reports nutrition analysis and advisories for a stored recipe
func (s *RecipeService) AnalyzeRecipe(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeAnalysis, error) {
	aggregate, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	analysis := &inbound.RecipeAnalysis{
		RecipeID:   aggregate.ID,
		Nutrition:  toNutritionDTO(aggregate.Nutrition),
		Advisories: collectAdvisories(aggregate),
	}
	return analysis, nil
}

// buildAggregate assembles a domain aggregate from submitted fields,
// assigning identifiers and applying the serving default
func buildAggregate(
	id uuid.UUID,
	title, description, instructions string,
	prepTime, cookTime, servings int,
	category string,
	ingredients []inbound.IngredientInput,
	nutrition *inbound.NutritionInput,
) *recipe.Recipe {
	if servings == 0 {
		servings = recipe.DefaultServings
	}

	aggregate := &recipe.Recipe{
		ID:           id,
		Title:        title,
		Description:  description,
		Instructions: instructions,
		PrepTime:     prepTime,
		CookTime:     cookTime,
		Servings:     servings,
		Category:     category,
		Ingredients:  make([]recipe.Ingredient, 0, len(ingredients)),
	}

	for _, input := range ingredients {
		aggregate.Ingredients = append(aggregate.Ingredients, recipe.Ingredient{
			ID:       uuid.New(),
			RecipeID: id,
			Name:     input.Name,
			Quantity: input.Quantity,
			Unit:     input.Unit,
		})
	}

	if nutrition != nil {
		aggregate.Nutrition = &recipe.Nutrition{
			ID:       uuid.New(),
			RecipeID: id,
			Calories: nutrition.Calories,
			Protein:  nutrition.Protein,
			Carbs:    nutrition.Carbs,
			Fat:      nutrition.Fat,
			Fiber:    nutrition.Fiber,
			Sugar:    nutrition.Sugar,
			Sodium:   nutrition.Sodium,
		}
	}

	return aggregate
}

// validateAggregate runs every validation rule and collects all
// violations before rejecting, so callers see the full list at once
func validateAggregate(aggregate *recipe.Recipe) error {
	var violations []errors.ValidationError

	for _, message := range recipe.ValidateRecipe(*aggregate) {
		violations = append(violations, errors.ValidationError{Field: "recipe", Message: message})
	}

	for index, ingredient := range aggregate.Ingredients {
		for _, message := range recipe.ValidateIngredient(ingredient) {
			violations = append(violations, errors.ValidationError{
				Field:   fmt.Sprintf("ingredients[%d]", index),
				Message: message,
			})
		}
	}

	if aggregate.Nutrition != nil {
		for _, message := range recipe.ValidateNutrition(*aggregate.Nutrition) {
			violations = append(violations, errors.ValidationError{Field: "nutrition", Message: message})
		}
	}

	if len(violations) > 0 {
		return errors.NewValidationErrors(violations)
	}
	return nil
}

// collectAdvisories runs the non-blocking checks on an accepted recipe
func collectAdvisories(aggregate *recipe.Recipe) inbound.Advisories {
	return inbound.Advisories{
		Completeness:      recipe.CheckCompleteness(*aggregate),
		Allergens:         recipe.CheckAllergens(aggregate.Ingredients),
		Duplicates:        recipe.CheckDuplicateIngredients(aggregate.Ingredients),
		ServingIssues:     recipe.CheckServingQuantities(aggregate.Ingredients, aggregate.Servings),
		UnrecognizedUnits: recipe.CheckUnrecognizedUnits(aggregate.Ingredients),
		NutritionWarnings: recipe.CheckNutritionWarnings(aggregate.Nutrition),
	}
}

func toDTO(aggregate *recipe.Recipe) inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientDTO, 0, len(aggregate.Ingredients))
	for _, ingredient := range aggregate.Ingredients {
		ingredients = append(ingredients, inbound.IngredientDTO{
			ID:         ingredient.ID,
			Name:       ingredient.Name,
			Quantity:   ingredient.Quantity,
			Unit:       ingredient.Unit,
			Formatted:  ingredient.Format(),
			IsAllergen: ingredient.IsAllergen(),
		})
	}

	return inbound.RecipeDTO{
		ID:            aggregate.ID,
		Title:         aggregate.Title,
		Description:   aggregate.Description,
		Instructions:  aggregate.Instructions,
		PrepTime:      aggregate.PrepTime,
		CookTime:      aggregate.CookTime,
		TotalTime:     aggregate.TotalTime(),
		FormattedTime: recipe.FormatTime(aggregate.TotalTime()),
		Servings:      aggregate.Servings,
		Category:      aggregate.Category,
		Difficulty:    aggregate.Difficulty(),
		CreatedAt:     aggregate.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     aggregate.UpdatedAt.Format(time.RFC3339),
		Ingredients:   ingredients,
		Nutrition:     toNutritionDTO(aggregate.Nutrition),
	}
}

func toDTOs(aggregates []*recipe.Recipe) []inbound.RecipeDTO {
	dtos := make([]inbound.RecipeDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		dtos = append(dtos, toDTO(aggregate))
	}
	return dtos
}

func toNutritionDTO(n *recipe.Nutrition) *inbound.NutritionDTO {
	if n == nil {
		return nil
	}
	return &inbound.NutritionDTO{
		Calories:        n.Calories,
		Protein:         n.Protein,
		Carbs:           n.Carbs,
		Fat:             n.Fat,
		Fiber:           n.Fiber,
		Sugar:           n.Sugar,
		Sodium:          n.Sodium,
		DailyValues:     n.DailyValues(),
		HealthScore:     n.HealthScore(),
		DietaryWarnings: n.DietaryWarnings(),
	}
}
