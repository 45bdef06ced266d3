package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

const (
	DefaultRefreshInterval = 30 * time.Second

	loadFailedMessage         = "Failed to load rate limit information"
	modificationFailedMessage = "Failed to load modification rate limit"
)

var ErrAlreadyStarted = errors.New("monitor already started")

// Monitor keeps the latest recipe-creation quota, refreshed on a schedule
// between Start and Stop.
type Monitor struct {
	api      client.RateLimitAPI
	interval time.Duration
	log      logging.Logger

	mu      sync.RWMutex
	status  *models.RateLimitStatus
	err     string
	loading bool
	cron    *cron.Cron
	cancel  context.CancelFunc
}

func NewMonitor(api client.RateLimitAPI, interval time.Duration, log logging.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Monitor{api: api, interval: interval, log: log.With("component", "ratelimit")}
}

// Start loads the status once and then schedules a refresh every interval.
// The first load's error is recorded, not returned.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.cron != nil {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	ctx, cancel := context.WithCancel(ctx)
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", m.interval), func() { _ = m.Refresh(ctx) }); err != nil {
		m.mu.Unlock()
		cancel()
		return fmt.Errorf("schedule refresh: %w", err)
	}
	m.cron = c
	m.cancel = cancel
	m.mu.Unlock()

	_ = m.Refresh(ctx)
	c.Start()
	m.log.Debug(ctx, "rate limit monitor started", "interval", m.interval.String())
	return nil
}

// Stop cancels the schedule and waits for a running refresh to return.
func (m *Monitor) Stop() {
	m.mu.Lock()
	c, cancel := m.cron, m.cancel
	m.cron, m.cancel = nil, nil
	m.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
}

// Refresh fetches the creation quota and replaces the snapshot.
func (m *Monitor) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	st, err := m.api.RecipeCreationLimit(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.err = loadFailedMessage
		m.log.Warn(ctx, "rate limit refresh failed", "error", err)
		return err
	}
	cp := *st
	m.status = &cp
	m.err = ""
	return nil
}

// ModificationLimit fetches the per-recipe modification quota. It does not
// touch the creation snapshot.
func (m *Monitor) ModificationLimit(ctx context.Context, recipeID string) (*models.RateLimitStatus, error) {
	st, err := m.api.RecipeModificationLimit(ctx, recipeID)
	if err != nil {
		m.log.Warn(ctx, "modification limit fetch failed", "recipe_id", recipeID, "error", err)
		return nil, fmt.Errorf("%s: %w", modificationFailedMessage, err)
	}
	return st, nil
}

// Status returns a copy of the last snapshot, or nil before the first
// successful load.
func (m *Monitor) Status() *models.RateLimitStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.status == nil {
		return nil
	}
	cp := *m.status
	return &cp
}

// CanCreate reports whether a new recipe may be created. Unknown quota
// does not block.
func (m *Monitor) CanCreate() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status == nil || !IsRateLimited(*m.status)
}

func (m *Monitor) Err() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *Monitor) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}
