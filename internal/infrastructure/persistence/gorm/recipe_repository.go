package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/recipehub/internal/domain/recipe"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	apperrors "github.com/recipehub/recipehub/pkg/errors"
)

// RecipeRepository implements the recipe repository interface using GORM.
// Every write runs inside one transaction covering the recipe row, its
// ingredients and its nutrition row.
type RecipeRepository struct {
	db *gorm.DB
}

// preloadOrderedIngredients keeps ingredients in their submitted order
// on every read path. Without the explicit ORDER BY the row order is
// unspecified on PostgreSQL.
func preloadOrderedIngredients(db *gorm.DB) *gorm.DB {
	return db.Order("ingredients.position ASC")
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateAggregate inserts a recipe together with its ingredients and
// nutrition. A failure on any row rolls the whole aggregate back.
func (r *RecipeRepository) CreateAggregate(ctx context.Context, aggregate *recipe.Recipe) error {
	model := RecipeToModel(aggregate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		return apperrors.NewDatabaseError("create recipe", err)
	}

	aggregate.CreatedAt = model.CreatedAt
	aggregate.UpdatedAt = model.UpdatedAt
	return nil
}

// ReplaceAggregate overwrites a stored aggregate: the recipe row is
// updated in place, existing ingredients and nutrition are deleted, and
// the submitted ones inserted. The recipe's creation timestamp survives.
func (r *RecipeRepository) ReplaceAggregate(ctx context.Context, aggregate *recipe.Recipe) error {
	model := RecipeToModel(aggregate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&RecipeModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]interface{}{
				"title":             model.Title,
				"description":       model.Description,
				"instructions":      model.Instructions,
				"prep_time_minutes": model.PrepTimeMinutes,
				"cook_time_minutes": model.CookTimeMinutes,
				"servings":          model.Servings,
				"category":          model.Category,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("recipe_id = ?", model.ID).Delete(&IngredientModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", model.ID).Delete(&NutritionModel{}).Error; err != nil {
			return err
		}

		if len(model.Ingredients) > 0 {
			if err := tx.Create(&model.Ingredients).Error; err != nil {
				return err
			}
		}
		if model.Nutrition != nil {
			if err := tx.Create(model.Nutrition).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewRecipeNotFoundError(aggregate.ID.String())
		}
		return apperrors.NewDatabaseError("replace recipe", err)
	}

	return nil
}

// DeleteAggregate removes a recipe and its dependent rows. The child
// rows are deleted explicitly so the cascade does not depend on
// database-level foreign key enforcement.
func (r *RecipeRepository) DeleteAggregate(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&IngredientModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&NutritionModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&RecipeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewRecipeNotFoundError(id.String())
		}
		return apperrors.NewDatabaseError("delete recipe", err)
	}

	return nil
}

// FindByID loads a recipe with its ingredients and nutrition.
// Returns (nil, nil) when no recipe exists for the id.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients", preloadOrderedIngredients).
		Preload("Nutrition").
		First(&model, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("find recipe", result.Error)
	}

	return ModelToRecipe(&model), nil
}

// FindAll loads every recipe aggregate, newest first
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients", preloadOrderedIngredients).
		Preload("Nutrition").
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("list recipes", result.Error)
	}

	return modelsToRecipes(models), nil
}

// SearchByIngredient finds recipes containing an ingredient whose name
// matches the query, case-insensitively. Results come back newest first.
func (r *RecipeRepository) SearchByIngredient(ctx context.Context, ingredientName string) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	pattern := "%" + strings.ToLower(ingredientName) + "%"
	result := r.db.WithContext(ctx).
		Preload("Ingredients", preloadOrderedIngredients).
		Preload("Nutrition").
		Joins("JOIN ingredients ON ingredients.recipe_id = recipes.id").
		Where("LOWER(ingredients.name) LIKE ?", pattern).
		Distinct("recipes.*").
		Order("recipes.created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, apperrors.NewDatabaseError("search recipes", result.Error)
	}

	return modelsToRecipes(models), nil
}

func modelsToRecipes(models []RecipeModel) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes
}
