package models

import "time"

type Intent string

const (
	IntentGenerate Intent = "generate"
	IntentModify   Intent = "modify"
	IntentFork     Intent = "fork"
)

// Servings mirrors the backend's nullable-string encoding {"Value": "4"}.
type Servings struct {
	Value string `json:"Value"`
}

// RecipeDraft is an LLM proposal that has not been saved as a recipe yet.
type RecipeDraft struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	PrepTime     string    `json:"prep_time"`
	CookTime     string    `json:"cook_time"`
	Servings     Servings  `json:"servings"`
	Difficulty   string    `json:"difficulty"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToRecipeInput maps a draft onto a new-recipe payload. Drafts carry no
// cuisine, dietary preferences or tags.
func (d *RecipeDraft) ToRecipeInput() RecipeInput {
	return RecipeInput{
		Name:               d.Name,
		Description:        d.Description,
		Category:           d.Category,
		Cuisine:            "",
		Ingredients:        d.Ingredients,
		Instructions:       d.Instructions,
		DietaryPreferences: []string{},
		Tags:               []string{},
		Nutrition: Nutrition{
			Calories: d.Calories,
			Protein:  d.Protein,
			Carbs:    d.Carbs,
			Fat:      d.Fat,
		},
	}
}

type LLMQueryRequest struct {
	Query            string `json:"query"`
	Intent           Intent `json:"intent"`
	DraftID          string `json:"draft_id,omitempty"`
	RecipeID         string `json:"recipe_id,omitempty"`
	SkipSimilarCheck bool   `json:"skip_similar_check,omitempty"`
}

type LLMQueryResponse struct {
	Recipe         *RecipeDraft `json:"recipe,omitempty"`
	DraftID        string       `json:"draft_id,omitempty"`
	SimilarRecipes []Recipe     `json:"similar_recipes,omitempty"`
	Message        string       `json:"message,omitempty"`
}
