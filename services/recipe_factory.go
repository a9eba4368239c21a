package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NascimentoLucas/GroceryAPI/models"
)

// Failure modes of the upstream-to-recipe step. All of them are terminal for
// the request and surface as an unprocessable-entity response.
var (
	ErrUpstreamParse     = errors.New("failed to deserialize upstream response")
	ErrEmptyOutput       = errors.New("upstream output is empty")
	ErrMissingText       = errors.New("upstream output has no text content")
	ErrRecipeDeserialize = errors.New("recipe could not be deserialized")
	ErrEmptyRecipe       = errors.New("recipe is null")
)

// RecipeFromUpstream digs the recipe out of the extraction service response.
// The envelope carries nested output/content arrays; the recipe JSON is the
// text of the first content item of the first output item. Unknown envelope
// fields are ignored and property names match case-insensitively, so upstream
// schema additions pass through harmlessly.
func RecipeFromUpstream(respText string) (*models.Recipe, error) {
	var upstream models.UpstreamResponse
	if err := json.Unmarshal([]byte(respText), &upstream); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamParse, err)
	}

	if len(upstream.Output) == 0 {
		return nil, ErrEmptyOutput
	}
	if len(upstream.Output[0].Content) == 0 {
		return nil, ErrMissingText
	}

	text := upstream.Output[0].Content[0].Text
	if text == "" {
		return nil, ErrMissingText
	}

	var recipe *models.Recipe
	if err := json.Unmarshal([]byte(text), &recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecipeDeserialize, err)
	}
	if recipe == nil {
		return nil, ErrEmptyRecipe
	}
	return recipe, nil
}
