package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for derived recipe values
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) TestTotalTime() {
	suite.Run("PrepAndCook_ShouldSum", func() {
		// Arrange
		r := Recipe{PrepTime: 15, CookTime: 30}

		// Act & Assert
		assert.Equal(suite.T(), 45, r.TotalTime())
	})

	suite.Run("ZeroTimes_ShouldBeZero", func() {
		r := Recipe{}

		assert.Equal(suite.T(), 0, r.TotalTime())
	})
}

func (suite *RecipeTestSuite) TestDifficulty() {
	suite.Run("ThirtyMinutesOrLess_ShouldBeEasy", func() {
		assert.Equal(suite.T(), DifficultyEasy, Recipe{PrepTime: 10, CookTime: 20}.Difficulty())
		assert.Equal(suite.T(), DifficultyEasy, Recipe{}.Difficulty())
	})

	suite.Run("UpToSixtyMinutes_ShouldBeMedium", func() {
		assert.Equal(suite.T(), DifficultyMedium, Recipe{PrepTime: 10, CookTime: 21}.Difficulty())
		assert.Equal(suite.T(), DifficultyMedium, Recipe{PrepTime: 30, CookTime: 30}.Difficulty())
	})

	suite.Run("OverSixtyMinutes_ShouldBeHard", func() {
		assert.Equal(suite.T(), DifficultyHard, Recipe{PrepTime: 30, CookTime: 31}.Difficulty())
	})
}

func (suite *RecipeTestSuite) TestFormatTime() {
	suite.Run("ZeroMinutes_ShouldBeNA", func() {
		assert.Equal(suite.T(), "N/A", FormatTime(0))
	})

	suite.Run("UnderAnHour_ShouldShowMinutesOnly", func() {
		assert.Equal(suite.T(), "45m", FormatTime(45))
	})

	suite.Run("OverAnHour_ShouldShowHoursAndMinutes", func() {
		assert.Equal(suite.T(), "1h 30m", FormatTime(90))
		assert.Equal(suite.T(), "2h 0m", FormatTime(120))
	})
}

func (suite *RecipeTestSuite) TestIngredientFormat() {
	suite.Run("WholeQuantity_ShouldRenderWithoutDecimals", func() {
		i := Ingredient{Name: "flour", Quantity: 2, Unit: "cups"}

		assert.Equal(suite.T(), "2 cups flour", i.Format())
	})

	suite.Run("FractionalQuantity_ShouldRenderDecimals", func() {
		i := Ingredient{Name: "salt", Quantity: 0.5, Unit: "tsp"}

		assert.Equal(suite.T(), "0.5 tsp salt", i.Format())
	})
}

func (suite *RecipeTestSuite) TestIngredientIsAllergen() {
	suite.Run("AllergenTermInName_ShouldMatch", func() {
		assert.True(suite.T(), Ingredient{Name: "Whole Milk"}.IsAllergen())
		assert.True(suite.T(), Ingredient{Name: "peanuts, crushed"}.IsAllergen())
		assert.True(suite.T(), Ingredient{Name: "gluten-free flour"}.IsAllergen())
	})

	suite.Run("PlainIngredient_ShouldNotMatch", func() {
		assert.False(suite.T(), Ingredient{Name: "carrot"}.IsAllergen())
	})

	suite.Run("SesameAndMustard_AreNotIngredientLevelAllergens", func() {
		assert.False(suite.T(), Ingredient{Name: "sesame oil"}.IsAllergen())
		assert.False(suite.T(), Ingredient{Name: "mustard seeds"}.IsAllergen())
	})
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
