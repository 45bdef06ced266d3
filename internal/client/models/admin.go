package models

import "time"

// Page is the paginated envelope used by the admin endpoints.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

type AdminAction struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"admin_id"`
	Admin      *User          `json:"admin,omitempty"`
	Action     string         `json:"action"`
	TargetType string         `json:"target_type"`
	TargetID   string         `json:"target_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ActionFilter struct {
	AdminID    string
	TargetType string
	Action     string
}

type PlatformStats struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers30d int `json:"active_users_30d"`
	TotalRecipes   int `json:"total_recipes"`
	RecipesToday   int `json:"recipes_today"`
	TotalFavorites int `json:"total_favorites"`
	BannedUsers    int `json:"banned_users"`
}

type DailyStats struct {
	Date         string `json:"date"`
	NewUsers     int    `json:"new_users"`
	NewRecipes   int    `json:"new_recipes"`
	NewFavorites int    `json:"new_favorites"`
}

type TopUser struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	RecipeCount int    `json:"recipe_count"`
}

type UserStats struct {
	RecipeCount   int        `json:"recipe_count"`
	FavoriteCount int        `json:"favorite_count"`
	LastActivity  *time.Time `json:"last_activity,omitempty"`
}

type UserDetails struct {
	User  User      `json:"user"`
	Stats UserStats `json:"stats"`
}
