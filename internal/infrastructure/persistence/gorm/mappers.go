package gorm

import (
	"github.com/recipehub/recipehub/internal/domain/recipe"
)

// RecipeToModel converts a domain aggregate to its persistence models
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTime,
		CookTimeMinutes: r.CookTime,
		Servings:        r.Servings,
		Category:        r.Category,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Ingredients:     make([]IngredientModel, 0, len(r.Ingredients)),
	}

	for position, ingredient := range r.Ingredients {
		model.Ingredients = append(model.Ingredients, IngredientModel{
			ID:       ingredient.ID,
			RecipeID: r.ID,
			Position: position,
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
		})
	}

	if r.Nutrition != nil {
		model.Nutrition = &NutritionModel{
			ID:       r.Nutrition.ID,
			RecipeID: r.ID,
			Calories: r.Nutrition.Calories,
			Protein:  r.Nutrition.Protein,
			Carbs:    r.Nutrition.Carbs,
			Fat:      r.Nutrition.Fat,
			Fiber:    r.Nutrition.Fiber,
			Sugar:    r.Nutrition.Sugar,
			Sodium:   r.Nutrition.Sodium,
		}
	}

	return model
}

// ModelToRecipe converts persistence models back to a domain aggregate
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	aggregate := &recipe.Recipe{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		Instructions: model.Instructions,
		PrepTime:     model.PrepTimeMinutes,
		CookTime:     model.CookTimeMinutes,
		Servings:     model.Servings,
		Category:     model.Category,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		Ingredients:  make([]recipe.Ingredient, 0, len(model.Ingredients)),
	}

	for _, ingredient := range model.Ingredients {
		aggregate.Ingredients = append(aggregate.Ingredients, recipe.Ingredient{
			ID:       ingredient.ID,
			RecipeID: ingredient.RecipeID,
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
		})
	}

	if model.Nutrition != nil {
		aggregate.Nutrition = &recipe.Nutrition{
			ID:       model.Nutrition.ID,
			RecipeID: model.Nutrition.RecipeID,
			Calories: model.Nutrition.Calories,
			Protein:  model.Nutrition.Protein,
			Carbs:    model.Nutrition.Carbs,
			Fat:      model.Nutrition.Fat,
			Fiber:    model.Nutrition.Fiber,
			Sugar:    model.Nutrition.Sugar,
			Sodium:   model.Nutrition.Sodium,
		}
	}

	return aggregate
}
