package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NascimentoLucas/GroceryAPI/models"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

type FoodIngredientsController struct {
	db *gorm.DB
}

func NewFoodIngredientsController(db *gorm.DB) *FoodIngredientsController {
	return &FoodIngredientsController{db: db}
}

type foodIngredientCreateBody struct {
	FoodID       uuid.UUID `json:"foodId" binding:"required"`
	IngredientID uuid.UUID `json:"ingredientId" binding:"required"`
	Quantity     string    `json:"quantity"`
}

type foodIngredientUpdateBody struct {
	Quantity string `json:"quantity"`
}

// GET /api/foodingredients?foodId=...&ingredientId=...&page=1&pageSize=20
// Totals go out as headers to keep the body a plain array.
func (h *FoodIngredientsController) List(c *gin.Context) {
	page, pageSize := pagination(c)

	q := h.db.Model(&models.FoodIngredient{})
	if v := c.Query("foodId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid foodId"})
			return
		}
		q = q.Where("food_id = ?", id)
	}
	if v := c.Query("ingredientId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredientId"})
			return
		}
		q = q.Where("ingredient_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list food ingredients"})
		return
	}

	var items []models.FoodIngredient
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list food ingredients"})
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.Header("X-Page", strconv.Itoa(page))
	c.Header("X-Page-Size", strconv.Itoa(pageSize))
	c.JSON(http.StatusOK, items)
}

// GET /api/foodingredients/:id
func (h *FoodIngredientsController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food ingredient not found"})
		return
	}

	var fi models.FoodIngredient
	if err := h.db.First(&fi, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food ingredient"})
		return
	}
	c.JSON(http.StatusOK, fi)
}

// POST /api/foodingredients
func (h *FoodIngredientsController) Create(c *gin.Context) {
	var body foodIngredientCreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if len(body.Quantity) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at most 200 characters."})
		return
	}

	// check both parents up front so a bad reference is a 400, not a
	// foreign-key violation surfacing as a server error
	var foodCount, ingCount int64
	h.db.Model(&models.Food{}).Where("id = ?", body.FoodID).Count(&foodCount)
	h.db.Model(&models.Ingredient{}).Where("id = ?", body.IngredientID).Count(&ingCount)
	if foodCount == 0 || ingCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "FoodId or IngredientId not found."})
		return
	}

	fi := models.FoodIngredient{
		FoodID:       body.FoodID,
		IngredientID: body.IngredientID,
		Quantity:     body.Quantity,
	}
	if err := h.db.Create(&fi).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "This food already has this ingredient."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food ingredient"})
		return
	}
	c.JSON(http.StatusCreated, fi)
}

// PUT /api/foodingredients/:id — only the quantity payload is mutable.
func (h *FoodIngredientsController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food ingredient not found"})
		return
	}

	var body foodIngredientUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if len(body.Quantity) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at most 200 characters."})
		return
	}

	var fi models.FoodIngredient
	if err := h.db.First(&fi, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food ingredient"})
		return
	}

	fi.Quantity = body.Quantity
	if err := h.db.Save(&fi).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food ingredient"})
		return
	}
	c.JSON(http.StatusOK, fi)
}

// DELETE /api/foodingredients/:id
func (h *FoodIngredientsController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food ingredient not found"})
		return
	}

	res := h.db.Delete(&models.FoodIngredient{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food ingredient"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "food ingredient not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
