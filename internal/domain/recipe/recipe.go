// Package recipe contains the recipe aggregate and its domain rules:
// derived values, nutrition analysis, and validation.
package recipe

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultServings is applied when a recipe is created without a serving count
const DefaultServings = 4

// Difficulty levels derived from total preparation time
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Recipe is the aggregate root. Ingredients and Nutrition live and die
// with their recipe.
type Recipe struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Instructions string       `json:"instructions"`
	PrepTime     int          `json:"prepTime"`
	CookTime     int          `json:"cookTime"`
	Servings     int          `json:"servings"`
	Category     string       `json:"category"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Ingredients  []Ingredient `json:"ingredients"`
	Nutrition    *Nutrition   `json:"nutrition,omitempty"`
}

// Ingredient is a measured component of a recipe
type Ingredient struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipeId"`
	Name     string    `json:"name"`
	Quantity float64   `json:"quantity"`
	Unit     string    `json:"unit"`
}

// TotalTime returns prep time plus cook time in minutes
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Difficulty derives the difficulty level from total time
func (r Recipe) Difficulty() string {
	total := r.TotalTime()
	switch {
	case total <= 30:
		return DifficultyEasy
	case total <= 60:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// FormatTime renders minutes as a display string such as "1h 30m" or "45m".
// Zero minutes renders as "N/A".
func FormatTime(minutes int) string {
	if minutes == 0 {
		return "N/A"
	}

	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// Format renders the ingredient as a display string, e.g. "2 cups flour"
func (i Ingredient) Format() string {
	return fmt.Sprintf("%v %s %s", i.Quantity, i.Unit, i.Name)
}

// Allergen terms checked on individual ingredients
var ingredientAllergens = []string{
	"milk", "eggs", "fish", "shellfish", "tree nuts", "peanuts", "wheat", "soybeans",
	"dairy", "nuts", "gluten",
}

// IsAllergen reports whether the ingredient name contains a common
// allergen term
func (i Ingredient) IsAllergen() bool {
	nameLower := strings.ToLower(i.Name)
	for _, allergen := range ingredientAllergens {
		if strings.Contains(nameLower, allergen) {
			return true
		}
	}
	return false
}
