// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/recipe"
)

// RecipeRepository defines the interface for recipe aggregate persistence.
// Writes operate on the whole aggregate inside one transaction: the
// recipe row together with its ingredients and optional nutrition row.
type RecipeRepository interface {
	// Aggregate writes
	CreateAggregate(ctx context.Context, r *recipe.Recipe) error
	ReplaceAggregate(ctx context.Context, r *recipe.Recipe) error
	DeleteAggregate(ctx context.Context, id uuid.UUID) error

	// Reads return the recipe with its ingredients and nutrition loaded
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	SearchByIngredient(ctx context.Context, ingredientName string) ([]*recipe.Recipe, error)
}
