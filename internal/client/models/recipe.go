package models

import (
	"encoding/json"
	"time"
)

// Nutrition is embedded in Recipe so its fields travel flat on the wire.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe is the persisted recipe. IsFavorite is a per-viewer relation and is
// toggled independently from the content fields.
type Recipe struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	ImageURL           string    `json:"image_url,omitempty"`
	PrepTime           int       `json:"prep_time,omitempty"`
	CookTime           int       `json:"cook_time,omitempty"`
	Servings           int       `json:"servings,omitempty"`
	Ingredients        []string  `json:"ingredients"`
	Instructions       []string  `json:"instructions"`
	Category           string    `json:"category"`
	Cuisine            string    `json:"cuisine"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	Tags               []string  `json:"tags"`
	IsFavorite         bool      `json:"is_favorite"`
	IsHidden           bool      `json:"is_hidden,omitempty"`
	UserID             string    `json:"user_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Nutrition
}

// RecipeInput is the body of POST /recipes and PUT /recipes/{id}.
type RecipeInput struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Cuisine            string   `json:"cuisine"`
	Ingredients        []string `json:"ingredients"`
	Instructions       []string `json:"instructions"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Tags               []string `json:"tags"`
	Nutrition
}

// RecipeQuery narrows GET /recipes/search.
type RecipeQuery struct {
	Query    string
	Category string
	SortBy   string
}

// FavoriteResult is what the favorite endpoints answer with.
type FavoriteResult struct {
	IsFavorite bool   `json:"is_favorite"`
	Message    string `json:"message"`
}

// UnmarshalJSON accepts nutrition either flat or nested under "nutrition" or
// "nutritional_info". Nested values win when both are present.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	aux := struct {
		*plain
		Nested    *Nutrition `json:"nutrition"`
		NestedAlt *Nutrition `json:"nutritional_info"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.Nested != nil:
		r.Nutrition = *aux.Nested
	case aux.NestedAlt != nil:
		r.Nutrition = *aux.NestedAlt
	}
	return nil
}
