package models

import "time"

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelInfo    NotificationLevel = "info"
	LevelWarning NotificationLevel = "warning"
)

type Notification struct {
	ID      int
	Message string
	Level   NotificationLevel
	Timeout time.Duration
}
