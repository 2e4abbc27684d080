// Package gorm provides GORM model definitions and repository
// implementations for recipe persistence
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Title        string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	Instructions string    `gorm:"type:text;not null"`

	// Timing (stored in minutes)
	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int `gorm:"column:cook_time_minutes;default:0"`

	Servings int    `gorm:"default:4"`
	Category string `gorm:"type:varchar(50);index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	// Relationships
	Ingredients []IngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Nutrition   *NutritionModel   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// IngredientModel represents the GORM model for recipe ingredients.
// Position preserves the submitted ingredient order across reads.
type IngredientModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;index"`
	Position int       `gorm:"not null;default:0"`
	Name     string    `gorm:"type:varchar(255);not null;index"`
	Quantity float64   `gorm:"not null"`
	Unit     string    `gorm:"type:varchar(50);not null"`
}

// NutritionModel represents the GORM model for per-recipe nutrition facts
type NutritionModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex"`
	Calories float64   `gorm:"default:0"`
	Protein  float64   `gorm:"default:0"`
	Carbs    float64   `gorm:"default:0"`
	Fat      float64   `gorm:"default:0"`
	Fiber    float64   `gorm:"default:0"`
	Sugar    float64   `gorm:"default:0"`
	Sodium   float64   `gorm:"default:0"`
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for NutritionModel
func (n *NutritionModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (RecipeModel) TableName() string {
	return "recipes"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (NutritionModel) TableName() string {
	return "nutrition"
}
