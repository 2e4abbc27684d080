package recipe

import (
	"math"

	"github.com/google/uuid"
)

// Nutrition holds per-recipe nutrition facts. All values are totals for
// the whole recipe, not per serving.
type Nutrition struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipeId"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Fiber    float64   `json:"fiber"`
	Sugar    float64   `json:"sugar"`
	Sodium   float64   `json:"sodium"`
}

// DailyValues holds the percentage of recommended daily intake per field
type DailyValues struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sodium   int `json:"sodium"`
}

// Recommended daily intake reference amounts
const (
	dailyCalories = 2000
	dailyProtein  = 50
	dailyCarbs    = 300
	dailyFat      = 65
	dailyFiber    = 25
	dailySodium   = 2300
)

// DailyValues computes the percentage of daily recommended intake
// covered by each nutrient, rounded to whole percents.
func (n Nutrition) DailyValues() DailyValues {
	percent := func(value, reference float64) int {
		return int(math.Round(value / reference * 100))
	}
	return DailyValues{
		Calories: percent(n.Calories, dailyCalories),
		Protein:  percent(n.Protein, dailyProtein),
		Carbs:    percent(n.Carbs, dailyCarbs),
		Fat:      percent(n.Fat, dailyFat),
		Fiber:    percent(n.Fiber, dailyFiber),
		Sodium:   percent(n.Sodium, dailySodium),
	}
}

// HealthScore computes a 0-100 score. The score starts at 100, loses
// points for high sodium, sugar and fat, and gains points for fiber
// and protein.
func (n Nutrition) HealthScore() int {
	score := 100

	if n.Sodium > 600 {
		score -= 20
	} else if n.Sodium > 400 {
		score -= 10
	}

	if n.Sugar > 25 {
		score -= 15
	} else if n.Sugar > 15 {
		score -= 8
	}

	if n.Fat > 20 {
		score -= 15
	} else if n.Fat > 15 {
		score -= 8
	}

	if n.Fiber > 8 {
		score += 10
	} else if n.Fiber > 5 {
		score += 5
	}

	if n.Protein > 20 {
		score += 10
	} else if n.Protein > 15 {
		score += 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// DietaryWarnings returns display warnings for nutrient levels that
// exceed common dietary guidance. Order is stable.
func (n Nutrition) DietaryWarnings() []string {
	warnings := []string{}

	if n.Sodium > 600 {
		warnings = append(warnings, "High sodium")
	}
	if n.Sugar > 20 {
		warnings = append(warnings, "High sugar")
	}
	if n.Fat > 20 {
		warnings = append(warnings, "High fat")
	}
	if n.Calories > 800 {
		warnings = append(warnings, "High calorie")
	}

	return warnings
}
