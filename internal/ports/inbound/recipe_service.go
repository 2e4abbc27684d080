// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/recipe"
)

// RecipeService defines the use cases for recipe management
// This is the primary port that HTTP handlers and other driving adapters will use
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeResult, error)
	ReplaceRecipe(ctx context.Context, cmd ReplaceRecipeCommand) (*RecipeResult, error)
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context) ([]RecipeDTO, error)
	SearchByIngredient(ctx context.Context, ingredientName string) ([]RecipeDTO, error)

	// Analysis
	AnalyzeRecipe(ctx context.Context, recipeID uuid.UUID) (*RecipeAnalysis, error)
}

// Command objects for operations

// CreateRecipeCommand contains data for creating a new recipe aggregate
type CreateRecipeCommand struct {
	Title        string
	Description  string
	Instructions string
	PrepTime     int // minutes
	CookTime     int // minutes
	Servings     int
	Category     string
	Ingredients  []IngredientInput
	Nutrition    *NutritionInput
}

// ReplaceRecipeCommand contains data for replacing a recipe aggregate.
// The submitted ingredients and nutrition fully replace the stored ones.
type ReplaceRecipeCommand struct {
	RecipeID     uuid.UUID
	Title        string
	Description  string
	Instructions string
	PrepTime     int
	CookTime     int
	Servings     int
	Category     string
	Ingredients  []IngredientInput
	Nutrition    *NutritionInput
}

// IngredientInput carries one submitted ingredient
type IngredientInput struct {
	Name     string
	Quantity float64
	Unit     string
}

// NutritionInput carries submitted nutrition facts
type NutritionInput struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
}

// Response DTOs

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Instructions  string          `json:"instructions"`
	PrepTime      int             `json:"prepTime"`
	CookTime      int             `json:"cookTime"`
	TotalTime     int             `json:"totalTime"`
	FormattedTime string          `json:"formattedTime"`
	Servings      int             `json:"servings"`
	Category      string          `json:"category"`
	Difficulty    string          `json:"difficulty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
	Ingredients   []IngredientDTO `json:"ingredients"`
	Nutrition     *NutritionDTO   `json:"nutrition,omitempty"`
}

// IngredientDTO for ingredient data
type IngredientDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	Formatted  string    `json:"formatted"`
	IsAllergen bool      `json:"isAllergen"`
}

// NutritionDTO for nutrition information with derived analysis
type NutritionDTO struct {
	Calories        float64            `json:"calories"`
	Protein         float64            `json:"protein"`
	Carbs           float64            `json:"carbs"`
	Fat             float64            `json:"fat"`
	Fiber           float64            `json:"fiber"`
	Sugar           float64            `json:"sugar"`
	Sodium          float64            `json:"sodium"`
	DailyValues     recipe.DailyValues `json:"dailyValues"`
	HealthScore     int                `json:"healthScore"`
	DietaryWarnings []string           `json:"dietaryWarnings"`
}

// Advisories collects non-blocking findings about a submitted recipe
type Advisories struct {
	Completeness      []string                     `json:"completeness"`
	Allergens         []string                     `json:"allergens"`
	Duplicates        []recipe.DuplicateIngredient `json:"duplicates"`
	ServingIssues     []string                     `json:"servingIssues"`
	UnrecognizedUnits []string                     `json:"unrecognizedUnits"`
	NutritionWarnings []string                     `json:"nutritionWarnings"`
}

// RecipeResult pairs a stored recipe with the advisories raised while
// accepting it
type RecipeResult struct {
	Recipe     RecipeDTO  `json:"recipe"`
	Advisories Advisories `json:"advisories"`
}

// RecipeAnalysis reports derived analysis for a stored recipe
type RecipeAnalysis struct {
	RecipeID   uuid.UUID     `json:"recipeId"`
	Nutrition  *NutritionDTO `json:"nutrition,omitempty"`
	Advisories Advisories    `json:"advisories"`
}
