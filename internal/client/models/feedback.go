package models

import "time"

type FeedbackRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	URL         string `json:"url,omitempty"`
}

type Feedback struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	UserAgent   string    `json:"user_agent,omitempty"`
	URL         string    `json:"url,omitempty"`
	AdminNotes  string    `json:"admin_notes,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeedbackFilter struct {
	Type     string
	Status   string
	Priority string
	UserID   string
	Limit    int
	Offset   int
}

type FeedbackStatusUpdate struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes,omitempty"`
}
