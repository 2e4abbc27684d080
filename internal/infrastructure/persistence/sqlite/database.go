// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/recipehub/recipehub/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.RecipeModel{},
		&gormModels.IngredientModel{},
		&gormModels.NutritionModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a couple of starter recipes
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	demoRecipes := []gormModels.RecipeModel{
		{
			Title:        "Classic Spaghetti Carbonara",
			Description:  "A traditional Italian pasta dish with eggs, cheese, pancetta, and pepper",
			Instructions: "Bring a large pot of salted water to boil and cook the spaghetti. Meanwhile, fry the pancetta until crispy. Whisk the eggs with grated pecorino, then toss the drained pasta with the pancetta and egg mixture off the heat.",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 15,
			Servings:        4,
			Category:        "dinner",
			Ingredients: []gormModels.IngredientModel{
				{Name: "spaghetti", Quantity: 400, Unit: "g"},
				{Name: "pancetta", Quantity: 150, Unit: "g"},
				{Name: "eggs", Quantity: 4, Unit: "piece"},
				{Name: "pecorino romano", Quantity: 100, Unit: "g"},
			},
			Nutrition: &gormModels.NutritionModel{
				Calories: 650, Protein: 28, Carbs: 72, Fat: 26, Fiber: 3, Sugar: 3, Sodium: 820,
			},
		},
		{
			Title:        "Vegetarian Buddha Bowl",
			Description:  "A nutritious and colorful bowl with quinoa, roasted vegetables, and tahini dressing",
			Instructions: "Cook the quinoa according to package instructions. Roast the sweet potato cubes until tender. Mix tahini, lemon juice and water into a dressing, then assemble the bowl with quinoa, vegetables, chickpeas and avocado.",
			PrepTimeMinutes: 15,
			CookTimeMinutes: 30,
			Servings:        2,
			Category:        "lunch",
			Ingredients: []gormModels.IngredientModel{
				{Name: "quinoa", Quantity: 1, Unit: "cup"},
				{Name: "sweet potato", Quantity: 2, Unit: "pieces"},
				{Name: "chickpeas", Quantity: 1, Unit: "cup"},
				{Name: "avocado", Quantity: 1, Unit: "piece"},
			},
			Nutrition: &gormModels.NutritionModel{
				Calories: 480, Protein: 16, Carbs: 68, Fat: 18, Fiber: 14, Sugar: 9, Sodium: 310,
			},
		},
	}

	for _, recipe := range demoRecipes {
		if err := db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to create demo recipe: %w", err)
		}
	}

	return nil
}
