package recipe

import (
	"fmt"
	"strings"

	"github.com/recipehub/recipehub/internal/domain/units"
)

// ValidateRecipe checks the recipe fields that must hold before a
// recipe can be stored. Returns human readable messages, empty when valid.
func ValidateRecipe(r Recipe) []string {
	errors := []string{}

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, "Recipe title is required")
	}

	if strings.TrimSpace(r.Instructions) == "" {
		errors = append(errors, "Recipe instructions are required")
	}

	if r.PrepTime < 0 {
		errors = append(errors, "Prep time cannot be negative")
	}

	if r.CookTime < 0 {
		errors = append(errors, "Cook time cannot be negative")
	}

	if r.Servings <= 0 {
		errors = append(errors, "Servings must be greater than 0")
	}

	if r.Instructions != "" && len(r.Instructions) < 10 {
		errors = append(errors, "Instructions must be at least 10 characters long")
	}

	return errors
}

// ValidateIngredient checks a single ingredient entry. Unit membership
// in the recognized set is advisory and reported by
// CheckUnrecognizedUnits instead.
func ValidateIngredient(i Ingredient) []string {
	errors := []string{}

	if strings.TrimSpace(i.Name) == "" {
		errors = append(errors, "Ingredient name is required")
	}

	if i.Quantity <= 0 {
		errors = append(errors, "Ingredient quantity must be greater than 0")
	}

	if strings.TrimSpace(i.Unit) == "" {
		errors = append(errors, "Ingredient unit is required")
	}

	if i.Name != "" && len(i.Name) < 2 {
		errors = append(errors, "Ingredient name must be at least 2 characters long")
	}

	return errors
}

// CheckUnrecognizedUnits reports ingredients whose unit is outside the
// recognized set, in input order. Unrecognized units never block saving.
func CheckUnrecognizedUnits(ingredients []Ingredient) []string {
	issues := []string{}

	for _, ingredient := range ingredients {
		if ingredient.Unit != "" && !units.IsValidIngredientUnit(ingredient.Unit) {
			issues = append(issues, fmt.Sprintf("Invalid unit: %s", ingredient.Unit))
		}
	}

	return issues
}

// ValidateNutrition checks nutrition facts for negative values.
// Implausible-but-possible ranges are a warning class and live in
// CheckNutritionWarnings instead.
func ValidateNutrition(n Nutrition) []string {
	errors := []string{}

	fields := []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
		{"fiber", n.Fiber},
		{"sugar", n.Sugar},
		{"sodium", n.Sodium},
	}

	for _, field := range fields {
		if field.value < 0 {
			errors = append(errors, fmt.Sprintf("%s cannot be negative", field.name))
		}
	}

	return errors
}

// CheckNutritionWarnings flags implausible nutrition values. These
// never block saving.
func CheckNutritionWarnings(n *Nutrition) []string {
	warnings := []string{}
	if n == nil {
		return warnings
	}

	if n.Calories > 10000 {
		warnings = append(warnings, "Calories seem unreasonably high")
	}

	if n.Sodium > 10000 {
		warnings = append(warnings, "Sodium levels seem dangerously high")
	}

	return warnings
}

// DuplicateIngredient records a repeated ingredient name within one recipe
type DuplicateIngredient struct {
	DuplicateIndex int    `json:"duplicateIndex"`
	OriginalIndex  int    `json:"originalIndex"`
	Name           string `json:"name"`
}

// CheckDuplicateIngredients finds ingredients whose names collide after
// lowercasing and trimming. The first occurrence counts as the
// original; every later occurrence is reported in input order with the
// duplicate's original spelling.
func CheckDuplicateIngredients(ingredients []Ingredient) []DuplicateIngredient {
	seen := make(map[string]int)
	duplicates := []DuplicateIngredient{}

	for index, ingredient := range ingredients {
		normalized := strings.TrimSpace(strings.ToLower(ingredient.Name))
		if original, ok := seen[normalized]; ok {
			duplicates = append(duplicates, DuplicateIngredient{
				DuplicateIndex: index,
				OriginalIndex:  original,
				Name:           ingredient.Name,
			})
		} else {
			seen[normalized] = index
		}
	}

	return duplicates
}

// Allergen terms checked across full ingredient lists. Slightly wider
// than the per-ingredient list.
var recipeAllergens = []string{
	"milk", "eggs", "fish", "shellfish", "tree nuts", "peanuts", "wheat", "soybeans",
	"dairy", "nuts", "gluten", "sesame", "mustard",
}

// CheckAllergens scans ingredient names for common allergen terms and
// returns each matched term once, in vocabulary order.
func CheckAllergens(ingredients []Ingredient) []string {
	found := make(map[string]bool)

	for _, ingredient := range ingredients {
		nameLower := strings.ToLower(ingredient.Name)
		for _, allergen := range recipeAllergens {
			if strings.Contains(nameLower, allergen) {
				found[allergen] = true
			}
		}
	}

	result := []string{}
	for _, allergen := range recipeAllergens {
		if found[allergen] {
			result = append(result, allergen)
		}
	}
	return result
}

// CheckCompleteness flags gaps that do not block saving but make a
// recipe hard to cook from.
func CheckCompleteness(r Recipe) []string {
	issues := []string{}

	if r.PrepTime == 0 && r.CookTime == 0 {
		issues = append(issues, "Recipe should have either prep time or cook time")
	}

	if len(r.Ingredients) == 0 {
		issues = append(issues, "Recipe should have at least one ingredient")
	}

	if r.Category == "" {
		issues = append(issues, "Recipe should have a category")
	}

	if r.Instructions != "" && len(r.Instructions) < 50 {
		issues = append(issues, "Instructions seem too brief for a complete recipe")
	}

	return issues
}

// CheckServingQuantities flags per-serving amounts that look like data
// entry mistakes rather than real recipes.
func CheckServingQuantities(ingredients []Ingredient, servings int) []string {
	issues := []string{}

	if servings <= 0 {
		issues = append(issues, "Invalid serving size")
		return issues
	}

	for _, ingredient := range ingredients {
		perServing := ingredient.Quantity / float64(servings)
		unitLower := strings.ToLower(ingredient.Unit)

		if strings.Contains(unitLower, "cup") && perServing > 4 {
			issues = append(issues, fmt.Sprintf("%s: More than 4 cups per serving seems excessive", ingredient.Name))
		}

		if unitLower == "tbsp" && perServing > 20 {
			issues = append(issues, fmt.Sprintf("%s: More than 20 tablespoons per serving seems excessive", ingredient.Name))
		}
	}

	return issues
}
