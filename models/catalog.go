package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food is a catalog entry created lazily the first time a recipe names it.
// Names are case-insensitively unique (citext on Postgres).
type Food struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:citext;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	FoodIngredients []FoodIngredient `gorm:"foreignKey:FoodID" json:"-"`
}

type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:citext;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	FoodIngredients []FoodIngredient `gorm:"foreignKey:IngredientID" json:"-"`
}

// FoodIngredient links one Food to one Ingredient and carries the quantity
// as free text. The (FoodID, IngredientID) pair is unique; both foreign keys
// restrict deletion of the parent while links exist.
type FoodIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FoodID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_food_ingredient_pair" json:"foodId"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_food_ingredient_pair" json:"ingredientId"`
	Quantity     string    `gorm:"size:200" json:"quantity"`
	CreatedAt    time.Time `json:"createdAt"`

	Food       *Food       `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (f *Food) TableName() string           { return "foods" }
func (i *Ingredient) TableName() string     { return "ingredients" }
func (fi *FoodIngredient) TableName() string { return "food_ingredients" }

// Ids are assigned app-side so they exist before being used as foreign keys.
func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (fi *FoodIngredient) BeforeCreate(tx *gorm.DB) error {
	if fi.ID == uuid.Nil {
		fi.ID = uuid.New()
	}
	return nil
}

// PagedResult wraps list responses.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
}
