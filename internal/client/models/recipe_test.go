package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeUnmarshal_Nutrition(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Nutrition
	}{
		{"flat", `{"id":"1","calories":100,"protein":5,"carbs":20,"fat":1}`, Nutrition{100, 5, 20, 1}},
		{"nested", `{"id":"1","nutrition":{"calories":200,"protein":6,"carbs":7,"fat":8}}`, Nutrition{200, 6, 7, 8}},
		{"nutritional_info", `{"id":"1","nutritional_info":{"calories":50}}`, Nutrition{Calories: 50}},
		{"missing", `{"id":"1"}`, Nutrition{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Recipe
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))
			assert.Equal(t, "1", r.ID)
			assert.Equal(t, tt.want, r.Nutrition)
		})
	}
}

func TestRecipeMarshal_FlatNutrition(t *testing.T) {
	b, err := json.Marshal(Recipe{ID: "1", Nutrition: Nutrition{Calories: 10}})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.InDelta(t, 10, m["calories"], 0.001)
	assert.Equal(t, false, m["is_favorite"])
}

func TestDraftToRecipeInput(t *testing.T) {
	d := RecipeDraft{
		ID: "d1", Name: "Pasta", Description: "quick", Category: "dinner",
		Ingredients: []string{"pasta"}, Instructions: []string{"boil"},
		Calories: 500, Protein: 20, Carbs: 80, Fat: 10,
	}
	in := d.ToRecipeInput()

	assert.Equal(t, "Pasta", in.Name)
	assert.Equal(t, "dinner", in.Category)
	assert.Empty(t, in.Cuisine)
	assert.Equal(t, []string{}, in.DietaryPreferences)
	assert.Equal(t, []string{}, in.Tags)
	assert.Equal(t, Nutrition{500, 20, 80, 10}, in.Nutrition)
}

func TestUserFlags(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, nilUser.IsEmailVerified())

	u := &User{Role: RoleAdmin, EmailVerified: true}
	assert.True(t, u.IsAdmin())
	assert.True(t, u.IsEmailVerified())
}
