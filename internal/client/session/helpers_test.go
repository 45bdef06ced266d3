package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

type fakeAuth struct {
	mu sync.Mutex

	loginResp  *models.AuthResponse
	loginErr   error
	profile    *models.User
	profileErr error
	updateErr  error

	// when gate is set, Profile signals entered and blocks until gate closes
	entered chan struct{}
	gate    chan struct{}

	logoutCalls  atomic.Int32
	logoutDelay  time.Duration
	logoutErr    error
	profileCalls atomic.Int32
}

func (f *fakeAuth) Login(_ context.Context, _ models.LoginRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, _ models.RegisterRequest) (*models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls.Add(1)
	time.Sleep(f.logoutDelay)
	return f.logoutErr
}

func (f *fakeAuth) Profile(context.Context) (*models.User, error) {
	f.profileCalls.Add(1)
	f.mu.Lock()
	entered, gate, err := f.entered, f.gate, f.profileErr
	var u models.User
	if f.profile != nil {
		u = *f.profile
	}
	f.mu.Unlock()

	if gate != nil {
		entered <- struct{}{}
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u := *f.profile
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	return &u, nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *fakeNotifier) Error(msg string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
	return len(n.msgs)
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}
