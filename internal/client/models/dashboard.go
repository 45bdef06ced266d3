package models

type DashboardStats struct {
	RecipesGenerated int    `json:"recipesGenerated"`
	Favorites        int    `json:"favorites"`
	ThisWeek         int    `json:"thisWeek"`
	PrimaryDiet      string `json:"primaryDiet"`
}

type FeaturedRecipes struct {
	Recipes  []Recipe `json:"recipes"`
	Count    int      `json:"count"`
	Category string   `json:"category,omitempty"`
}
