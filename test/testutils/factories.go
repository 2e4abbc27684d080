// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/recipe"
)

// RecipeBuilder provides a fluent interface for building test recipe aggregates
type RecipeBuilder struct {
	title        string
	description  string
	instructions string
	prepTime     int
	cookTime     int
	servings     int
	category     string
	ingredients  []recipe.Ingredient
	nutrition    *recipe.Nutrition
}

// NewRecipeBuilder creates a recipe builder with sensible defaults
func NewRecipeBuilder() *RecipeBuilder {
	return &RecipeBuilder{
		title:        "Weeknight Stir Fry",
		description:  "Quick vegetable stir fry",
		instructions: "Heat oil in a wok, add vegetables, stir fry for five minutes, season and serve.",
		prepTime:     10,
		cookTime:     15,
		servings:     4,
		category:     "dinner",
	}
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.title = title
	return rb
}

// WithDescription sets the recipe description
func (rb *RecipeBuilder) WithDescription(description string) *RecipeBuilder {
	rb.description = description
	return rb
}

// WithInstructions sets the recipe instructions
func (rb *RecipeBuilder) WithInstructions(instructions string) *RecipeBuilder {
	rb.instructions = instructions
	return rb
}

// WithTimings sets prep and cook time in minutes
func (rb *RecipeBuilder) WithTimings(prepTime, cookTime int) *RecipeBuilder {
	rb.prepTime = prepTime
	rb.cookTime = cookTime
	return rb
}

// WithServings sets the number of servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.servings = servings
	return rb
}

// WithCategory sets the recipe category
func (rb *RecipeBuilder) WithCategory(category string) *RecipeBuilder {
	rb.category = category
	return rb
}

// WithIngredient appends an ingredient
func (rb *RecipeBuilder) WithIngredient(name string, quantity float64, unit string) *RecipeBuilder {
	rb.ingredients = append(rb.ingredients, recipe.Ingredient{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	})
	return rb
}

// WithNutrition sets the nutrition facts
func (rb *RecipeBuilder) WithNutrition(nutrition recipe.Nutrition) *RecipeBuilder {
	rb.nutrition = &nutrition
	return rb
}

// Build constructs the recipe aggregate
func (rb *RecipeBuilder) Build() *recipe.Recipe {
	recipeID := uuid.New()

	ingredients := make([]recipe.Ingredient, len(rb.ingredients))
	copy(ingredients, rb.ingredients)
	for i := range ingredients {
		ingredients[i].RecipeID = recipeID
	}

	r := &recipe.Recipe{
		ID:           recipeID,
		Title:        rb.title,
		Description:  rb.description,
		Instructions: rb.instructions,
		PrepTime:     rb.prepTime,
		CookTime:     rb.cookTime,
		Servings:     rb.servings,
		Category:     rb.category,
		Ingredients:  ingredients,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if rb.nutrition != nil {
		n := *rb.nutrition
		if n.ID == uuid.Nil {
			n.ID = uuid.New()
		}
		n.RecipeID = recipeID
		r.Nutrition = &n
	}

	return r
}

// RecipeFactory creates randomized test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// CreateValidRecipe creates a recipe that passes validation
func (rf *RecipeFactory) CreateValidRecipe() *recipe.Recipe {
	builder := NewRecipeBuilder().
		WithTitle(rf.faker.Dinner()).
		WithDescription(rf.faker.Sentence(8)).
		WithInstructions(rf.faker.Paragraph(1, 3, 8, " ")).
		WithTimings(rf.faker.IntRange(5, 30), rf.faker.IntRange(10, 60)).
		WithServings(rf.faker.IntRange(2, 8)).
		WithCategory(rf.randomCategory())

	count := rf.faker.IntRange(2, 6)
	for i := 0; i < count; i++ {
		builder.WithIngredient(rf.faker.Vegetable(), rf.faker.Float64Range(0.5, 4), rf.randomUnit())
	}

	return builder.Build()
}

// CreateRecipeWithNutrition creates a valid recipe carrying nutrition facts
func (rf *RecipeFactory) CreateRecipeWithNutrition() *recipe.Recipe {
	r := rf.CreateValidRecipe()
	r.Nutrition = &recipe.Nutrition{
		ID:       uuid.New(),
		RecipeID: r.ID,
		Calories: rf.faker.Float64Range(150, 800),
		Protein:  rf.faker.Float64Range(5, 40),
		Carbs:    rf.faker.Float64Range(10, 90),
		Fat:      rf.faker.Float64Range(2, 30),
		Fiber:    rf.faker.Float64Range(0, 12),
		Sugar:    rf.faker.Float64Range(0, 25),
		Sodium:   rf.faker.Float64Range(50, 900),
	}
	return r
}

func (rf *RecipeFactory) randomUnit() string {
	units := []string{"cup", "cups", "tbsp", "tsp", "lb", "oz", "g", "kg", "ml", "l", "pieces"}
	return units[rf.faker.IntRange(0, len(units)-1)]
}

func (rf *RecipeFactory) randomCategory() string {
	categories := []string{"breakfast", "lunch", "dinner", "dessert", "snack"}
	return categories[rf.faker.IntRange(0, len(categories)-1)]
}
