package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEnvelope = `{
	"id": "resp_123",
	"object": "response",
	"created_at": 1756400000,
	"status": "completed",
	"model": "text-extract-1",
	"output": [
		{
			"id": "msg_1",
			"type": "message",
			"status": "completed",
			"role": "assistant",
			"content": [
				{
					"type": "output_text",
					"text": "{\"food\":\"Soup\",\"ingredients\":[{\"name\":\"Salt\",\"quantity\":\"1 tsp\"}]}"
				}
			]
		}
	]
}`

func TestRecipeFromUpstream(t *testing.T) {
	recipe, err := RecipeFromUpstream(validEnvelope)
	require.NoError(t, err)

	assert.Equal(t, "Soup", recipe.Food)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "Salt", recipe.Ingredients[0].Name)
	assert.Equal(t, "1 tsp", recipe.Ingredients[0].Quantity)
}

func TestRecipeFromUpstreamToleratesUnknownFields(t *testing.T) {
	// forward-compatible parsing: extraneous envelope fields are ignored
	envelope := `{
		"brand_new_field": {"nested": true},
		"usage": {"total_tokens": 42},
		"output": [
			{
				"weight": 0.99,
				"content": [
					{"type": "output_text", "text": "{\"food\":\"Rice\",\"ingredients\":[]}", "annotations": []}
				]
			}
		]
	}`

	recipe, err := RecipeFromUpstream(envelope)
	require.NoError(t, err)
	assert.Equal(t, "Rice", recipe.Food)
	assert.Empty(t, recipe.Ingredients)
}

func TestRecipeFromUpstreamCaseInsensitiveProperties(t *testing.T) {
	envelope := `{"OUTPUT":[{"Content":[{"TEXT":"{\"Food\":\"Stew\",\"INGREDIENTS\":[{\"NAME\":\"Beef\",\"Quantity\":\"500 g\"}]}"}]}]}`

	recipe, err := RecipeFromUpstream(envelope)
	require.NoError(t, err)
	assert.Equal(t, "Stew", recipe.Food)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "Beef", recipe.Ingredients[0].Name)
}

func TestRecipeFromUpstreamFailures(t *testing.T) {
	tests := []struct {
		name     string
		respText string
		wantErr  error
	}{
		{
			name:     "not json",
			respText: "<html>bad gateway</html>",
			wantErr:  ErrUpstreamParse,
		},
		{
			name:     "envelope shape mismatch",
			respText: `{"output": "not-an-array"}`,
			wantErr:  ErrUpstreamParse,
		},
		{
			name:     "empty output list",
			respText: `{"id":"resp_1","output":[]}`,
			wantErr:  ErrEmptyOutput,
		},
		{
			name:     "first output has no content",
			respText: `{"output":[{"id":"msg_1","content":[]}]}`,
			wantErr:  ErrMissingText,
		},
		{
			name:     "content text empty",
			respText: `{"output":[{"content":[{"type":"output_text","text":""}]}]}`,
			wantErr:  ErrMissingText,
		},
		{
			name:     "content text absent",
			respText: `{"output":[{"content":[{"type":"refusal"}]}]}`,
			wantErr:  ErrMissingText,
		},
		{
			name:     "inner text is not a recipe",
			respText: `{"output":[{"content":[{"text":"I could not find a recipe."}]}]}`,
			wantErr:  ErrRecipeDeserialize,
		},
		{
			name:     "inner ingredients shape mismatch",
			respText: `{"output":[{"content":[{"text":"{\"food\":\"Soup\",\"ingredients\":\"salt\"}"}]}]}`,
			wantErr:  ErrRecipeDeserialize,
		},
		{
			name:     "inner text is json null",
			respText: `{"output":[{"content":[{"text":"null"}]}]}`,
			wantErr:  ErrEmptyRecipe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, err := RecipeFromUpstream(tt.respText)
			assert.Nil(t, recipe)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
