package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NascimentoLucas/GroceryAPI/models"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

// CatalogService persists extracted recipes. Each step commits on its own so
// generated ids exist before they are used as foreign keys; convergence under
// concurrent identical recipes relies on the database constraints plus the
// re-read recovery below, not on a wrapping transaction.
type CatalogService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db, log: utils.Logger}
}

type SavedItem struct {
	FoodIngredientID uuid.UUID `json:"foodIngredientId"`
	IngredientID     uuid.UUID `json:"ingredientId"`
	IngredientName   string    `json:"ingredientName"`
	Quantity         string    `json:"quantity"`
}

type SaveResult struct {
	Food  models.Food
	Items []SavedItem
}

// SaveRecipe upserts a recipe into the catalog: find-or-create the food by
// name, find-or-create each ingredient, then link them. Ingredient entries
// with blank names are skipped. A link that already exists is a recoverable
// per-item conflict: it is skipped and the remaining entries still persist.
func (s *CatalogService) SaveRecipe(ctx context.Context, recipe *models.Recipe) (*SaveResult, error) {
	food, err := s.findOrCreateFood(ctx, recipe.Food)
	if err != nil {
		return nil, err
	}

	result := &SaveResult{
		Food:  *food,
		Items: make([]SavedItem, 0, len(recipe.Ingredients)),
	}

	for _, entry := range recipe.Ingredients {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}

		ing, err := s.findOrCreateIngredient(ctx, entry.Name)
		if err != nil {
			return nil, err
		}

		join := models.FoodIngredient{
			FoodID:       food.ID,
			IngredientID: ing.ID,
			Quantity:     entry.Quantity,
		}
		if err := s.db.WithContext(ctx).Create(&join).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				s.log.Warn("food already linked to ingredient, not linked again",
					zap.String("food", food.Name),
					zap.String("ingredient", ing.Name),
				)
				continue
			}
			return nil, err
		}

		result.Items = append(result.Items, SavedItem{
			FoodIngredientID: join.ID,
			IngredientID:     ing.ID,
			IngredientName:   ing.Name,
			Quantity:         join.Quantity,
		})
	}

	return result, nil
}

func (s *CatalogService) findOrCreateFood(ctx context.Context, name string) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&food).Error
	if err == nil {
		return &food, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	food = models.Food{Name: name}
	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			// lost a create race for this name; the winner's row serves
			var existing models.Food
			if rerr := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; rerr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}

	s.log.Info("created food", zap.String("name", food.Name))
	return &food, nil
}

func (s *CatalogService) findOrCreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&ing).Error
	if err == nil {
		return &ing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ing = models.Ingredient{Name: name}
	if err := s.db.WithContext(ctx).Create(&ing).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			var existing models.Ingredient
			if rerr := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; rerr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}

	s.log.Info("created ingredient", zap.String("name", ing.Name))
	return &ing, nil
}
