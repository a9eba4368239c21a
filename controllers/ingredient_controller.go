package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NascimentoLucas/GroceryAPI/models"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

type IngredientsController struct {
	db *gorm.DB
}

func NewIngredientsController(db *gorm.DB) *IngredientsController {
	return &IngredientsController{db: db}
}

// GET /api/ingredients?query=salt&page=1&pageSize=20
func (h *IngredientsController) List(c *gin.Context) {
	page, pageSize := pagination(c)

	q := h.db.Model(&models.Ingredient{})
	if query := strings.TrimSpace(c.Query("query")); query != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ingredients"})
		return
	}

	var items []models.Ingredient
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ingredients"})
		return
	}

	c.JSON(http.StatusOK, models.PagedResult[models.Ingredient]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	})
}

// GET /api/ingredients/:id
func (h *IngredientsController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}

	var ing models.Ingredient
	if err := h.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ingredient"})
		return
	}
	c.JSON(http.StatusOK, ing)
}

// POST /api/ingredients
func (h *IngredientsController) Create(c *gin.Context) {
	var body nameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	name, ok := validName(c, body.Name)
	if !ok {
		return
	}

	ing := models.Ingredient{Name: name}
	if err := h.db.Create(&ing).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An ingredient with this name already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ingredient"})
		return
	}
	c.JSON(http.StatusCreated, ing)
}

// PUT /api/ingredients/:id
func (h *IngredientsController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}

	var body nameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	name, ok := validName(c, body.Name)
	if !ok {
		return
	}

	var ing models.Ingredient
	if err := h.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ingredient"})
		return
	}

	ing.Name = name
	if err := h.db.Save(&ing).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An ingredient with this name already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update ingredient"})
		return
	}
	c.JSON(http.StatusOK, ing)
}

// DELETE /api/ingredients/:id
func (h *IngredientsController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}

	var ing models.Ingredient
	if err := h.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ingredient"})
		return
	}

	if err := h.db.Delete(&ing).Error; err != nil {
		if utils.IsForeignKeyViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete this ingredient because foods still use it."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete ingredient"})
		return
	}
	c.Status(http.StatusNoContent)
}
