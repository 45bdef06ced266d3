package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

type Allergen struct {
	ID           string `json:"id"`
	AllergenName string `json:"allergen_name"`
	Severity     string `json:"severity"`
}

// User is the profile returned by GET /profile and the admin user endpoints.
type User struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Username           string     `json:"username"`
	Name               string     `json:"name"`
	Role               Role       `json:"role"`
	IsBanned           bool       `json:"is_banned,omitempty"`
	BannedAt           *time.Time `json:"banned_at,omitempty"`
	BanReason          string     `json:"ban_reason,omitempty"`
	ProfilePictureURL  string     `json:"profile_picture_url,omitempty"`
	Bio                string     `json:"bio,omitempty"`
	PrivacyLevel       string     `json:"privacy_level,omitempty"`
	DietaryLifestyles  []string   `json:"dietary_lifestyles"`
	CuisinePreferences []string   `json:"cuisine_preferences"`
	Allergens          []Allergen `json:"allergens"`
	EmailVerified      bool       `json:"email_verified"`
	EmailVerifiedAt    *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsEmailVerified() bool {
	return u != nil && u.EmailVerified
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Username           string   `json:"username"`
	DietaryLifestyles  []string `json:"dietary_lifestyles"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	Allergies          []string `json:"allergies"`
}

type AuthResponse struct {
	Token         string `json:"token"`
	UserID        string `json:"user_id"`
	EmailVerified *bool  `json:"email_verified,omitempty"`
}

// ProfileUpdate is the body of PUT /profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name               *string  `json:"name,omitempty"`
	Username           *string  `json:"username,omitempty"`
	Bio                *string  `json:"bio,omitempty"`
	ProfilePictureURL  *string  `json:"profile_picture_url,omitempty"`
	PrivacyLevel       *string  `json:"privacy_level,omitempty"`
	DietaryLifestyles  []string `json:"dietary_lifestyles,omitempty"`
	CuisinePreferences []string `json:"cuisine_preferences,omitempty"`
}

// MessageResponse is the generic {"message": "..."} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
