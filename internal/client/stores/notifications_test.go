package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func TestNotificationStore_AddRemove(t *testing.T) {
	s := NewNotificationStore()
	defer s.Close()

	a := s.Add("sticky", models.LevelInfo, 0)
	b := s.Add("also sticky", models.LevelWarning, 0)
	assert.NotEqual(t, a, b)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "sticky", list[0].Message)
	assert.Equal(t, models.LevelWarning, list[1].Level)

	s.Remove(a)
	s.Remove(a)
	list = s.List()
	require.Len(t, list, 1)
	assert.Equal(t, b, list[0].ID)
}

func TestNotificationStore_Levels(t *testing.T) {
	s := NewNotificationStore()
	defer s.Close()

	s.Success("ok")
	s.Error("bad")
	s.Info("fyi")
	s.Warning("careful")

	var levels []models.NotificationLevel
	for _, n := range s.List() {
		levels = append(levels, n.Level)
		assert.Equal(t, DefaultNotificationTimeout, n.Timeout)
	}
	assert.Equal(t, []models.NotificationLevel{
		models.LevelSuccess, models.LevelError, models.LevelInfo, models.LevelWarning,
	}, levels)
}

func TestNotificationStore_Expiry(t *testing.T) {
	s := NewNotificationStore()
	defer s.Close()

	s.Add("short", models.LevelInfo, 20*time.Millisecond)
	s.Add("sticky", models.LevelInfo, 0)

	require.Eventually(t, func() bool { return len(s.List()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "sticky", s.List()[0].Message)
}
