// Package units implements kitchen measurement conversion, quantity
// parsing, and ingredient name utilities shared across the recipe domain.
package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/recipehub/recipehub/pkg/errors"
)

// Category classifies a measurement unit
type Category string

const (
	CategoryVolume  Category = "volume"
	CategoryWeight  Category = "weight"
	CategoryCount   Category = "count"
	CategoryUnknown Category = "unknown"
)

// Conversion rates to base units: ml for volume, g for weight.
// Count units have no physical base and all convert 1:1.
var conversionRates = map[Category]map[string]float64{
	CategoryVolume: {
		"tsp":    4.929,
		"tbsp":   14.787,
		"fl oz":  29.574,
		"cup":    236.588,
		"pint":   473.176,
		"quart":  946.353,
		"gallon": 3785.412,
		"ml":     1,
		"l":      1000,
	},
	CategoryWeight: {
		"oz": 28.3495,
		"lb": 453.592,
		"g":  1,
		"kg": 1000,
	},
	CategoryCount: {
		"piece":  1,
		"pieces": 1,
		"whole":  1,
		"slice":  1,
		"slices": 1,
		"clove":  1,
		"cloves": 1,
		"can":    1,
		"cans":   1,
	},
}

// GetCategory returns the measurement category for a unit.
// Lookup is case-insensitive and tolerates surrounding whitespace.
func GetCategory(unit string) Category {
	normalized := strings.ToLower(strings.TrimSpace(unit))
	for category, rates := range conversionRates {
		if _, ok := rates[normalized]; ok {
			return category
		}
	}
	return CategoryUnknown
}

// Convert converts an amount between two units of the same category.
// The result is rounded to three decimal places.
func Convert(amount float64, fromUnit, toUnit string) (float64, error) {
	fromCategory := GetCategory(fromUnit)
	toCategory := GetCategory(toUnit)

	if fromCategory == CategoryUnknown {
		return 0, errors.NewUnknownUnitError(fromUnit)
	}
	if toCategory == CategoryUnknown {
		return 0, errors.NewUnknownUnitError(toUnit)
	}
	if fromCategory != toCategory {
		return 0, errors.NewIncompatibleCategoryError(string(fromCategory), string(toCategory))
	}

	fromRate := conversionRates[fromCategory][strings.ToLower(strings.TrimSpace(fromUnit))]
	toRate := conversionRates[toCategory][strings.ToLower(strings.TrimSpace(toUnit))]

	// Convert to the base unit, then to the target unit
	baseAmount := amount * fromRate
	return round3(baseAmount / toRate), nil
}

func round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// Fixed fraction spellings recognized by ParseQuantity. Values match
// the rounding conventions used on recipe cards rather than exact
// rational values.
var fractionValues = map[string]float64{
	"1/4": 0.25,
	"1/3": 0.333,
	"1/2": 0.5,
	"2/3": 0.666,
	"3/4": 0.75,
	"1/8": 0.125,
}

// ParseQuantity parses a quantity string such as "2", "1.5" or "1/2".
func ParseQuantity(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)

	if value, ok := fractionValues[trimmed]; ok {
		return value, nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.NewParseError(input)
	}
	return value, nil
}

// Substitute describes a replacement for a common ingredient
type Substitute struct {
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
	Note  string  `json:"note"`
}

var substituteTable = map[string][]Substitute{
	"butter": {
		{Name: "margarine", Ratio: 1, Note: "1:1 substitution"},
		{Name: "coconut oil", Ratio: 0.75, Note: "Use 3/4 cup coconut oil for 1 cup butter"},
		{Name: "applesauce", Ratio: 0.5, Note: "Use 1/2 cup applesauce for 1 cup butter (for baking)"},
	},
	"eggs": {
		{Name: "flax eggs", Ratio: 1, Note: "1 tbsp ground flax + 3 tbsp water per egg"},
		{Name: "chia eggs", Ratio: 1, Note: "1 tbsp chia seeds + 3 tbsp water per egg"},
		{Name: "banana", Ratio: 0.5, Note: "1/2 mashed banana per egg"},
	},
	"milk": {
		{Name: "almond milk", Ratio: 1, Note: "1:1 substitution"},
		{Name: "soy milk", Ratio: 1, Note: "1:1 substitution"},
		{Name: "oat milk", Ratio: 1, Note: "1:1 substitution"},
	},
	"sugar": {
		{Name: "honey", Ratio: 0.75, Note: "Use 3/4 cup honey for 1 cup sugar, reduce liquid by 1/4 cup"},
		{Name: "maple syrup", Ratio: 0.75, Note: "Use 3/4 cup maple syrup for 1 cup sugar, reduce liquid by 1/4 cup"},
		{Name: "stevia", Ratio: 0.01, Note: "Use much less stevia, check package instructions"},
	},
	"flour": {
		{Name: "almond flour", Ratio: 1, Note: "1:1 substitution for most recipes"},
		{Name: "coconut flour", Ratio: 0.25, Note: "Use 1/4 cup coconut flour for 1 cup regular flour, add extra liquid"},
		{Name: "gluten-free flour", Ratio: 1, Note: "1:1 substitution, may need xanthan gum"},
	},
}

// GetSubstitutes returns known substitutes for a common ingredient.
// Returns an empty slice when no substitutes are known.
func GetSubstitutes(ingredientName string) []Substitute {
	subs, ok := substituteTable[strings.ToLower(strings.TrimSpace(ingredientName))]
	if !ok {
		return []Substitute{}
	}
	out := make([]Substitute, len(subs))
	copy(out, subs)
	return out
}

var standardNames = map[string]string{
	"tomatoes":      "tomato",
	"potatoes":      "potato",
	"onions":        "onion",
	"garlic cloves": "garlic",
	"bell peppers":  "bell pepper",
	"carrots":       "carrot",
	"celery stalks": "celery",
}

// StandardizeName maps common plural or compound ingredient names to
// their canonical singular form. Unrecognized names pass through unchanged.
func StandardizeName(name string) string {
	if standard, ok := standardNames[strings.ToLower(name)]; ok {
		return standard
	}
	return name
}

var standardUnitsByKind = map[string][]string{
	"liquid": {"ml", "l", "cups", "tbsp", "tsp", "fl oz"},
	"dry":    {"g", "kg", "oz", "lb", "cups", "tbsp", "tsp"},
	"count":  {"pieces", "whole", "slices", "cloves", "cans"},
}

// StandardUnits returns the suggested units for an ingredient kind
// (liquid, dry or count). Returns an empty slice for unknown kinds.
func StandardUnits(kind string) []string {
	units, ok := standardUnitsByKind[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return []string{}
	}
	out := make([]string, len(units))
	copy(out, units)
	return out
}

var validIngredientUnits = map[string]struct{}{
	"tsp": {}, "tbsp": {}, "cup": {}, "cups": {},
	"oz": {}, "lb": {}, "g": {}, "kg": {},
	"ml": {}, "l": {}, "piece": {}, "pieces": {},
}

// IsValidIngredientUnit reports whether a unit is accepted on
// ingredient entries. The check is case-insensitive.
func IsValidIngredientUnit(unit string) bool {
	_, ok := validIngredientUnits[strings.ToLower(unit)]
	return ok
}
