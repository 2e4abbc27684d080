package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ValidationTestSuite provides a test suite for recipe validation rules
type ValidationTestSuite struct {
	suite.Suite
}

func validRecipe() Recipe {
	return Recipe{
		Title:        "Spaghetti Carbonara",
		Instructions: "Boil pasta, fry guanciale, toss with egg and cheese off the heat.",
		PrepTime:     15,
		CookTime:     20,
		Servings:     4,
		Category:     "dinner",
	}
}

func (suite *ValidationTestSuite) TestValidateRecipe() {
	suite.Run("ValidRecipe_ShouldHaveNoErrors", func() {
		assert.Empty(suite.T(), ValidateRecipe(validRecipe()))
	})

	suite.Run("MissingTitleAndInstructions_ShouldCollectBothErrors", func() {
		// Arrange
		r := validRecipe()
		r.Title = "   "
		r.Instructions = ""

		// Act
		errors := ValidateRecipe(r)

		// Assert
		assert.Contains(suite.T(), errors, "Recipe title is required")
		assert.Contains(suite.T(), errors, "Recipe instructions are required")
	})

	suite.Run("NegativeTimes_ShouldError", func() {
		r := validRecipe()
		r.PrepTime = -1
		r.CookTime = -5

		errors := ValidateRecipe(r)

		assert.Contains(suite.T(), errors, "Prep time cannot be negative")
		assert.Contains(suite.T(), errors, "Cook time cannot be negative")
	})

	suite.Run("ZeroServings_ShouldError", func() {
		r := validRecipe()
		r.Servings = 0

		assert.Contains(suite.T(), ValidateRecipe(r), "Servings must be greater than 0")
	})

	suite.Run("ShortInstructions_ShouldError", func() {
		r := validRecipe()
		r.Instructions = "Stir."

		assert.Contains(suite.T(), ValidateRecipe(r), "Instructions must be at least 10 characters long")
	})
}

func (suite *ValidationTestSuite) TestValidateIngredient() {
	suite.Run("ValidIngredient_ShouldHaveNoErrors", func() {
		i := Ingredient{Name: "flour", Quantity: 2, Unit: "cups"}

		assert.Empty(suite.T(), ValidateIngredient(i))
	})

	suite.Run("MissingFields_ShouldCollectAllErrors", func() {
		i := Ingredient{}

		errors := ValidateIngredient(i)

		assert.Contains(suite.T(), errors, "Ingredient name is required")
		assert.Contains(suite.T(), errors, "Ingredient quantity must be greater than 0")
		assert.Contains(suite.T(), errors, "Ingredient unit is required")
	})

	suite.Run("SingleCharacterName_ShouldError", func() {
		i := Ingredient{Name: "x", Quantity: 1, Unit: "g"}

		assert.Contains(suite.T(), ValidateIngredient(i), "Ingredient name must be at least 2 characters long")
	})

	suite.Run("UnacceptedUnit_ShouldNotBlock", func() {
		i := Ingredient{Name: "milk", Quantity: 1, Unit: "gallon"}

		assert.Empty(suite.T(), ValidateIngredient(i))
	})
}

func (suite *ValidationTestSuite) TestCheckUnrecognizedUnits() {
	suite.Run("UnacceptedUnit_ShouldBeReported", func() {
		ingredients := []Ingredient{
			{Name: "flour", Quantity: 2, Unit: "cups"},
			{Name: "milk", Quantity: 1, Unit: "gallon"},
		}

		issues := CheckUnrecognizedUnits(ingredients)

		assert.Equal(suite.T(), []string{"Invalid unit: gallon"}, issues)
	})

	suite.Run("UnitCheck_ShouldBeCaseInsensitive", func() {
		ingredients := []Ingredient{{Name: "milk", Quantity: 1, Unit: "Cups"}}

		assert.Empty(suite.T(), CheckUnrecognizedUnits(ingredients))
	})

	suite.Run("EmptyUnit_ShouldBeSkipped", func() {
		ingredients := []Ingredient{{Name: "milk", Quantity: 1}}

		assert.Empty(suite.T(), CheckUnrecognizedUnits(ingredients))
	})
}

func (suite *ValidationTestSuite) TestValidateNutrition() {
	suite.Run("ValidNutrition_ShouldHaveNoErrors", func() {
		n := Nutrition{Calories: 450, Protein: 20, Carbs: 50, Fat: 15, Fiber: 6, Sugar: 10, Sodium: 400}

		assert.Empty(suite.T(), ValidateNutrition(n))
	})

	suite.Run("NegativeValues_ShouldNameEachField", func() {
		n := Nutrition{Calories: -1, Protein: -1, Sodium: -1}

		errors := ValidateNutrition(n)

		assert.Contains(suite.T(), errors, "calories cannot be negative")
		assert.Contains(suite.T(), errors, "protein cannot be negative")
		assert.Contains(suite.T(), errors, "sodium cannot be negative")
		assert.NotContains(suite.T(), errors, "fat cannot be negative")
	})

	suite.Run("ImplausibleRanges_ShouldNotError", func() {
		n := Nutrition{Calories: 10001, Sodium: 10001}

		assert.Empty(suite.T(), ValidateNutrition(n))
	})
}

func (suite *ValidationTestSuite) TestCheckNutritionWarnings() {
	suite.Run("ImplausibleRanges_ShouldWarn", func() {
		n := &Nutrition{Calories: 10001, Sodium: 10001}

		warnings := CheckNutritionWarnings(n)

		assert.Contains(suite.T(), warnings, "Calories seem unreasonably high")
		assert.Contains(suite.T(), warnings, "Sodium levels seem dangerously high")
	})

	suite.Run("AtThreshold_ShouldNotWarn", func() {
		n := &Nutrition{Calories: 10000, Sodium: 10000}

		assert.Empty(suite.T(), CheckNutritionWarnings(n))
	})

	suite.Run("NilNutrition_ShouldReturnEmpty", func() {
		assert.Empty(suite.T(), CheckNutritionWarnings(nil))
	})
}

func (suite *ValidationTestSuite) TestCheckDuplicateIngredients() {
	suite.Run("NormalizedNameCollision_ShouldReportDuplicate", func() {
		// Arrange
		ingredients := []Ingredient{
			{Name: "Salt"},
			{Name: "pepper"},
			{Name: "salt "},
		}

		// Act
		duplicates := CheckDuplicateIngredients(ingredients)

		// Assert
		require.Len(suite.T(), duplicates, 1)
		assert.Equal(suite.T(), 2, duplicates[0].DuplicateIndex)
		assert.Equal(suite.T(), 0, duplicates[0].OriginalIndex)
		assert.Equal(suite.T(), "salt ", duplicates[0].Name)
	})

	suite.Run("TripleOccurrence_ShouldReportEachLaterOccurrence", func() {
		ingredients := []Ingredient{
			{Name: "egg"},
			{Name: "Egg"},
			{Name: "EGG"},
		}

		duplicates := CheckDuplicateIngredients(ingredients)

		require.Len(suite.T(), duplicates, 2)
		assert.Equal(suite.T(), 1, duplicates[0].DuplicateIndex)
		assert.Equal(suite.T(), 0, duplicates[0].OriginalIndex)
		assert.Equal(suite.T(), 2, duplicates[1].DuplicateIndex)
		assert.Equal(suite.T(), 0, duplicates[1].OriginalIndex)
	})

	suite.Run("DistinctNames_ShouldHaveNoDuplicates", func() {
		ingredients := []Ingredient{{Name: "salt"}, {Name: "pepper"}}

		assert.Empty(suite.T(), CheckDuplicateIngredients(ingredients))
	})
}

func (suite *ValidationTestSuite) TestCheckAllergens() {
	suite.Run("MatchedTerms_ShouldBeReportedOnce", func() {
		ingredients := []Ingredient{
			{Name: "whole milk"},
			{Name: "milk chocolate"},
			{Name: "sesame seeds"},
			{Name: "carrot"},
		}

		allergens := CheckAllergens(ingredients)

		assert.Equal(suite.T(), []string{"milk", "sesame"}, allergens)
	})

	suite.Run("NoAllergens_ShouldReturnEmptySlice", func() {
		ingredients := []Ingredient{{Name: "carrot"}, {Name: "onion"}}

		assert.Empty(suite.T(), CheckAllergens(ingredients))
	})
}

func (suite *ValidationTestSuite) TestCheckCompleteness() {
	suite.Run("CompleteRecipe_ShouldHaveNoIssues", func() {
		r := validRecipe()
		r.Instructions = "Boil pasta until al dente, fry guanciale, toss everything with egg and cheese."
		r.Ingredients = []Ingredient{{Name: "pasta", Quantity: 500, Unit: "g"}}

		assert.Empty(suite.T(), CheckCompleteness(r))
	})

	suite.Run("BareRecipe_ShouldFlagEveryGap", func() {
		r := Recipe{Instructions: "Mix and bake until done."}

		issues := CheckCompleteness(r)

		assert.Contains(suite.T(), issues, "Recipe should have either prep time or cook time")
		assert.Contains(suite.T(), issues, "Recipe should have at least one ingredient")
		assert.Contains(suite.T(), issues, "Recipe should have a category")
		assert.Contains(suite.T(), issues, "Instructions seem too brief for a complete recipe")
	})
}

func (suite *ValidationTestSuite) TestCheckServingQuantities() {
	suite.Run("ReasonableQuantities_ShouldHaveNoIssues", func() {
		ingredients := []Ingredient{
			{Name: "flour", Quantity: 4, Unit: "cups"},
			{Name: "oil", Quantity: 8, Unit: "tbsp"},
		}

		assert.Empty(suite.T(), CheckServingQuantities(ingredients, 4))
	})

	suite.Run("InvalidServings_ShouldShortCircuit", func() {
		ingredients := []Ingredient{{Name: "flour", Quantity: 100, Unit: "cups"}}

		issues := CheckServingQuantities(ingredients, 0)

		assert.Equal(suite.T(), []string{"Invalid serving size"}, issues)
	})

	suite.Run("ExcessiveCupsPerServing_ShouldBeFlagged", func() {
		ingredients := []Ingredient{{Name: "flour", Quantity: 9, Unit: "Cups"}}

		issues := CheckServingQuantities(ingredients, 2)

		assert.Contains(suite.T(), issues, "flour: More than 4 cups per serving seems excessive")
	})

	suite.Run("ExcessiveTablespoonsPerServing_ShouldBeFlagged", func() {
		ingredients := []Ingredient{{Name: "oil", Quantity: 45, Unit: "tbsp"}}

		issues := CheckServingQuantities(ingredients, 2)

		assert.Contains(suite.T(), issues, "oil: More than 20 tablespoons per serving seems excessive")
	})
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}
