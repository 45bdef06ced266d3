package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

const ExpiredMessage = "Session expired. Please login again."

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrClosed           = errors.New("session closed")
	ErrNoToken          = errors.New("auth response carried no token")
	ErrSuperseded       = errors.New("session changed during the request")
)

// Notifier receives user-visible error messages.
type Notifier interface {
	Error(message string) int
}

// Snapshot is a consistent view of the session taken under one lock.
type Snapshot struct {
	Token           string
	User            *models.User
	IsAuthenticated bool
	IsAdmin         bool
	IsEmailVerified bool
}

type Holder struct {
	api      client.AuthAPI
	store    Persister
	log      logging.Logger
	notifier Notifier
	now      func() time.Time

	// persist orders state changes with their store writes; take it before mu.
	persist sync.Mutex

	mu      sync.RWMutex
	gen     uint64
	token   string
	user    *models.User
	loading int
	lastErr string
	closed  bool

	logout singleflight.Group
}

func New(api client.AuthAPI, store Persister, log logging.Logger) *Holder {
	if log == nil {
		log = logging.NewNop()
	}
	return &Holder{api: api, store: store, log: log.With("component", "session"), now: time.Now}
}

// SetNotifier installs the sink for the session-expired message.
func (h *Holder) SetNotifier(n Notifier) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notifier = n
}

// Bootstrap restores the persisted session. A JWT whose exp has passed is
// dropped without a network call; a remaining token is validated by
// fetching the profile.
func (h *Holder) Bootstrap(ctx context.Context) error {
	token, user, err := h.store.Load(ctx)
	if err != nil {
		return err
	}

	if token != "" && h.expired(token) {
		h.log.Info(ctx, "stored token has expired, dropping it")
		if err := h.store.Clear(ctx); err != nil {
			return err
		}
		token, user = "", nil
	}

	h.mu.Lock()
	h.gen++
	h.token, h.user = token, user
	h.mu.Unlock()

	if token == "" {
		return nil
	}
	if err := h.FetchProfile(ctx); err != nil {
		h.log.Warn(ctx, "could not refresh profile at startup", "error", err)
	}
	return nil
}

// expired reports whether token is a JWT with an exp claim in the past.
// Opaque tokens never expire locally.
func (h *Holder) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(h.now())
}

func (h *Holder) Login(ctx context.Context, req models.LoginRequest) error {
	h.begin()
	defer h.end()

	resp, err := h.api.Login(ctx, req)
	if err != nil {
		return h.failCredentials(ctx, err, "Login failed")
	}
	if resp == nil || resp.Token == "" {
		return h.failCredentials(ctx, ErrNoToken, "Login failed")
	}
	fallback := &models.User{
		Email:              req.Email,
		Username:           req.Email,
		Name:               req.Email,
		Role:               models.RoleUser,
		DietaryLifestyles:  []string{},
		CuisinePreferences: []string{},
		Allergens:          []models.Allergen{},
	}
	return h.establish(ctx, resp.Token, fallback)
}

func (h *Holder) Register(ctx context.Context, req models.RegisterRequest) error {
	h.begin()
	defer h.end()

	resp, err := h.api.Register(ctx, req)
	if err != nil {
		return h.failCredentials(ctx, err, "Registration failed")
	}
	if resp == nil || resp.Token == "" {
		return h.failCredentials(ctx, ErrNoToken, "Registration failed")
	}
	fallback := &models.User{
		Email:              req.Email,
		Username:           firstNonEmpty(req.Username, req.Email),
		Name:               firstNonEmpty(req.Name, req.Email),
		Role:               models.RoleUser,
		DietaryLifestyles:  append([]string{}, req.DietaryLifestyles...),
		CuisinePreferences: append([]string{}, req.CuisinePreferences...),
		Allergens:          []models.Allergen{},
	}
	return h.establish(ctx, resp.Token, fallback)
}

// establish stores the new token, then tries the profile. A profile failure
// keeps the session with the fallback user. A logout that lands while the
// profile is in flight wins.
func (h *Holder) establish(ctx context.Context, token string, fallback *models.User) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.gen++
	gen := h.gen
	h.token, h.user = token, nil
	h.mu.Unlock()

	user, err := h.api.Profile(client.WithoutUnauthorizedHook(ctx))
	if err != nil {
		h.log.Warn(ctx, "profile fetch after sign-in failed, using fallback user", "error", err)
		user = fallback
	}

	if !h.commit(ctx, gen, user) {
		h.log.Info(ctx, "session ended before sign-in completed")
		return ErrSuperseded
	}
	return nil
}

// commit installs user for the session generation gen and persists it.
// It reports false, writing nothing, when the session has changed since.
func (h *Holder) commit(ctx context.Context, gen uint64, user *models.User) bool {
	h.persist.Lock()
	defer h.persist.Unlock()

	h.mu.Lock()
	if h.gen != gen || h.token == "" {
		h.mu.Unlock()
		return false
	}
	token := h.token
	h.user = user
	h.mu.Unlock()

	if err := h.store.Save(ctx, token, user); err != nil {
		h.log.Error(ctx, "failed to persist session", "error", err)
	}
	return true
}

func (h *Holder) generation() (uint64, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.gen, h.token
}

func (h *Holder) failCredentials(ctx context.Context, err error, fallback string) error {
	h.mu.Lock()
	h.lastErr = client.Message(err, fallback)
	h.mu.Unlock()
	h.clear(ctx)
	return err
}

// FetchProfile refreshes the cached user. Any failure clears the session,
// unless the session was already replaced or ended meanwhile.
func (h *Holder) FetchProfile(ctx context.Context) error {
	gen, token := h.generation()
	if token == "" {
		return ErrNotAuthenticated
	}
	user, err := h.api.Profile(ctx)
	if err != nil {
		h.log.Warn(ctx, "profile fetch failed, clearing session", "error", err)
		h.clearGen(ctx, gen)
		return err
	}
	if !h.commit(ctx, gen, user) {
		return ErrSuperseded
	}
	return nil
}

func (h *Holder) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	gen, token := h.generation()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	user, err := h.api.UpdateProfile(ctx, upd)
	if err != nil {
		h.mu.Lock()
		h.lastErr = client.Message(err, "Failed to update profile")
		h.mu.Unlock()
		return nil, err
	}
	if !h.commit(ctx, gen, user) {
		return nil, ErrSuperseded
	}
	return cloneUser(user), nil
}

// Logout ends the session. Concurrent calls share one backend call and all
// return after it finished and local state is cleared. A backend failure
// is logged and otherwise ignored.
func (h *Holder) Logout(ctx context.Context) {
	_, _, _ = h.logout.Do("logout", func() (any, error) {
		if h.Token() != "" {
			if err := h.api.Logout(ctx); err != nil {
				h.log.Warn(ctx, "logout call failed", "error", err)
			}
		}
		h.clear(ctx)
		h.log.Info(ctx, "logged out")
		return nil, nil
	})
}

// HandleUnauthorized is the global 401 hook: the session is dropped locally
// without calling the backend and the user is told to sign in again.
func (h *Holder) HandleUnauthorized(ctx context.Context) {
	if h.Token() == "" {
		return
	}
	h.clear(ctx)

	h.mu.RLock()
	n := h.notifier
	h.mu.RUnlock()
	if n != nil {
		n.Error(ExpiredMessage)
	}
}

func (h *Holder) clear(ctx context.Context) {
	h.drop(ctx, func(uint64) bool { return true })
}

// clearGen clears the session only if it is still generation gen.
func (h *Holder) clearGen(ctx context.Context, gen uint64) {
	h.drop(ctx, func(g uint64) bool { return g == gen })
}

func (h *Holder) drop(ctx context.Context, match func(gen uint64) bool) {
	h.persist.Lock()
	defer h.persist.Unlock()

	h.mu.Lock()
	if !match(h.gen) {
		h.mu.Unlock()
		return
	}
	h.gen++
	h.token, h.user = "", nil
	h.mu.Unlock()

	if err := h.store.Clear(ctx); err != nil {
		h.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
}

// Close detaches the holder. Persisted state is kept for the next run.
func (h *Holder) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

func (h *Holder) begin() {
	h.mu.Lock()
	h.loading++
	h.lastErr = ""
	h.mu.Unlock()
}

func (h *Holder) end() {
	h.mu.Lock()
	h.loading--
	h.mu.Unlock()
}

func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// User returns a copy of the cached user, or nil.
func (h *Holder) User() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == "" {
		return nil
	}
	return cloneUser(h.user)
}

func (h *Holder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == "" {
		return Snapshot{}
	}
	return Snapshot{
		Token:           h.token,
		User:            cloneUser(h.user),
		IsAuthenticated: true,
		IsAdmin:         h.user.IsAdmin(),
		IsEmailVerified: h.user.IsEmailVerified(),
	}
}

func (h *Holder) IsAuthenticated() bool { return h.Snapshot().IsAuthenticated }
func (h *Holder) IsAdmin() bool         { return h.Snapshot().IsAdmin }
func (h *Holder) IsEmailVerified() bool { return h.Snapshot().IsEmailVerified }

func (h *Holder) IsLoading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading > 0
}

// Err is the message of the last failed credential exchange, or "".
func (h *Holder) Err() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastErr
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	c.DietaryLifestyles = append([]string(nil), u.DietaryLifestyles...)
	c.CuisinePreferences = append([]string(nil), u.CuisinePreferences...)
	c.Allergens = append([]models.Allergen(nil), u.Allergens...)
	return &c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
