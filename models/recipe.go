package models

// Recipe is the transient shape produced by the extraction pipeline and
// consumed by the catalog upsert. It is never persisted as its own row.
type Recipe struct {
	Food        string             `json:"food"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}
