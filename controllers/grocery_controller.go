package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NascimentoLucas/GroceryAPI/services"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

// GroceryController owns the extraction endpoint: free text in, parsed and
// (optionally) persisted recipe out.
type GroceryController struct {
	extraction *services.ExtractionService
	catalog    *services.CatalogService
}

func NewGroceryController(extraction *services.ExtractionService, catalog *services.CatalogService) *GroceryController {
	return &GroceryController{extraction: extraction, catalog: catalog}
}

const upstreamBodyExcerptLimit = 600

// POST /api/grocery/extract?save=true
// Body is a raw JSON string. Nothing is written to the catalog until the
// upstream response has parsed cleanly, so every failure before the save is
// side-effect free.
func (h *GroceryController) Extract(c *gin.Context) {
	var text string
	if err := c.ShouldBindJSON(&text); err != nil || strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body must be a non-empty string."})
		return
	}
	save := c.DefaultQuery("save", "true") != "false"

	respText, err := h.extraction.Extract(c.Request.Context(), text)
	if err != nil {
		var upstreamErr *services.UpstreamError
		if errors.As(err, &upstreamErr) {
			c.JSON(upstreamErr.StatusCode, gin.H{
				"error":  "Upstream extraction failed.",
				"status": http.StatusText(upstreamErr.StatusCode),
				"body":   truncate(upstreamErr.Body, upstreamBodyExcerptLimit),
			})
			return
		}
		utils.Logger.Error("extraction service unreachable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Extraction service is unreachable."})
		return
	}

	recipe, err := services.RecipeFromUpstream(respText)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if !save {
		c.JSON(http.StatusOK, recipe)
		return
	}

	result, err := h.catalog.SaveRecipe(c.Request.Context(), recipe)
	if err != nil {
		utils.Logger.Error("failed to save extracted recipe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved": true,
		"food":  gin.H{"id": result.Food.ID, "name": result.Food.Name},
		"items": result.Items,
	})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
