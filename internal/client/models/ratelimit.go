package models

// RateLimitStatus is a read-only snapshot; refreshes replace it wholesale.
type RateLimitStatus struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	ResetTime int64  `json:"reset_time"`
	Window    string `json:"window"`
	RecipeID  string `json:"recipe_id,omitempty"`
}
