package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NascimentoLucas/GroceryAPI/models"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

type FoodsController struct {
	db *gorm.DB
}

func NewFoodsController(db *gorm.DB) *FoodsController {
	return &FoodsController{db: db}
}

type nameBody struct {
	Name string `json:"name"`
}

// GET /api/foods?query=rice&page=1&pageSize=20
func (h *FoodsController) List(c *gin.Context) {
	page, pageSize := pagination(c)

	q := h.db.Model(&models.Food{})
	if query := strings.TrimSpace(c.Query("query")); query != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list foods"})
		return
	}

	var items []models.Food
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list foods"})
		return
	}

	c.JSON(http.StatusOK, models.PagedResult[models.Food]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	})
}

// GET /api/foods/:id
func (h *FoodsController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	var food models.Food
	if err := h.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food"})
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /api/foods
func (h *FoodsController) Create(c *gin.Context) {
	var body nameBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	name, ok := validName(c, body.Name)
	if !ok {
		return
	}

	food := models.Food{Name: name}
	if err := h.db.Create(&food).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A food with this name already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// PUT /api/foods/:id
func (h *FoodsController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
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

	var food models.Food
	if err := h.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food"})
		return
	}

	food.Name = name
	if err := h.db.Save(&food).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A food with this name already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food"})
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /api/foods/:id
func (h *FoodsController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	var food models.Food
	if err := h.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food"})
		return
	}

	if err := h.db.Delete(&food).Error; err != nil {
		if utils.IsForeignKeyViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete this food because it has ingredients linked."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food"})
		return
	}
	c.Status(http.StatusNoContent)
}

// pagination clamps page/pageSize query values the same way for every list
// endpoint: page >= 1, pageSize falls back to 20 outside 1..200.
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	return page, pageSize
}

// validName trims and bounds a food/ingredient name, writing the 400 itself
// when the name is unusable.
func validName(c *gin.Context, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required."})
		return "", false
	}
	if len(name) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be at most 200 characters."})
		return "", false
	}
	return name, true
}
