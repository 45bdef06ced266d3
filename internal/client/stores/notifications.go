package stores

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

const DefaultNotificationTimeout = 5 * time.Second

// NotificationStore keeps the visible notifications. Entries with a
// positive timeout remove themselves when it elapses.
type NotificationStore struct {
	mu     sync.Mutex
	nextID int
	items  []models.Notification
	timers map[int]*time.Timer
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{timers: make(map[int]*time.Timer)}
}

// Add appends a notification and returns its id.
func (s *NotificationStore) Add(message string, level models.NotificationLevel, timeout time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.items = append(s.items, models.Notification{ID: id, Message: message, Level: level, Timeout: timeout})
	if timeout > 0 {
		s.timers[id] = time.AfterFunc(timeout, func() { s.Remove(id) })
	}
	return id
}

func (s *NotificationStore) Success(message string) int {
	return s.Add(message, models.LevelSuccess, DefaultNotificationTimeout)
}

func (s *NotificationStore) Error(message string) int {
	return s.Add(message, models.LevelError, DefaultNotificationTimeout)
}

func (s *NotificationStore) Info(message string) int {
	return s.Add(message, models.LevelInfo, DefaultNotificationTimeout)
}

func (s *NotificationStore) Warning(message string) int {
	return s.Add(message, models.LevelWarning, DefaultNotificationTimeout)
}

func (s *NotificationStore) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// List returns the notifications oldest first.
func (s *NotificationStore) List() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.items...)
}

// Close stops pending expiry timers.
func (s *NotificationStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
