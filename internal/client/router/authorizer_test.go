package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/session"
)

type fakeSession struct {
	snap session.Snapshot
}

func (f *fakeSession) Snapshot() session.Snapshot { return f.snap }

var (
	anonymous  = session.Snapshot{}
	unverified = session.Snapshot{Token: "T", User: &models.User{}, IsAuthenticated: true}
	verified   = session.Snapshot{Token: "T", User: &models.User{EmailVerified: true}, IsAuthenticated: true, IsEmailVerified: true}
	admin      = session.Snapshot{
		Token: "T", User: &models.User{Role: models.RoleAdmin, EmailVerified: true},
		IsAuthenticated: true, IsAdmin: true, IsEmailVerified: true,
	}
)

func decide(t *testing.T, snap session.Snapshot, name string) Decision {
	t.Helper()
	tbl := NewTable()
	m, ok := tbl.Named(name, map[string]string{"id": "1"})
	require.True(t, ok)
	return NewAuthorizer(&fakeSession{snap: snap}, nil).Decide(m)
}

func TestDecide(t *testing.T) {
	proceed := Decision{Action: Proceed}
	to := func(name string) Decision { return Decision{Action: Redirect, Target: name} }

	tests := []struct {
		name  string
		snap  session.Snapshot
		route string
		want  Decision
	}{
		{"anonymous public", anonymous, RecipeDetail, proceed},
		{"anonymous auth page", anonymous, Register, proceed},
		{"anonymous protected", anonymous, Dashboard, to(Login)},
		{"anonymous admin", anonymous, AdminUsers, to(Login)},
		{"anonymous already heading to login", anonymous, Login, proceed},
		{"signed in on login", verified, Login, to(Dashboard)},
		{"signed in on register", verified, Register, to(Dashboard)},
		{"signed in verifying email", unverified, VerifyEmail, proceed},
		{"non admin on admin", verified, AdminDashboard, to(Dashboard)},
		{"admin on admin", admin, AdminAnalytics, proceed},
		{"unverified soft gate", unverified, Generate, proceed},
		{"unverified recipe create", unverified, RecipeCreate, proceed},
		{"signed in dashboard", unverified, Dashboard, proceed},
		{"signed in public", verified, Home, proceed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decide(t, tt.snap, tt.route))
		})
	}
}

func TestDecide_PublicRoutesIgnoreToken(t *testing.T) {
	tbl := NewTable()
	for _, r := range tbl.Routes() {
		if r.Meta.RequiresAuth || IsAuthOnly(r.Name) {
			continue
		}
		for _, snap := range []session.Snapshot{anonymous, unverified, admin} {
			m, _ := tbl.Named(r.Name, map[string]string{"id": "1"})
			d := NewAuthorizer(&fakeSession{snap: snap}, nil).Decide(m)
			assert.Equal(t, Proceed, d.Action, r.Name)
		}
	}
}

func TestDecide_UnknownRouteBlocked(t *testing.T) {
	d := NewAuthorizer(&fakeSession{}, nil).Decide(Match{})
	assert.Equal(t, Block, d.Action)
}

func TestGuard(t *testing.T) {
	tbl := NewTable()
	a := NewAuthorizer(&fakeSession{snap: anonymous}, nil)
	to, _ := tbl.Named(Favorites, nil)
	from, _ := tbl.Named(Home, nil)

	var got Decision
	calls := 0
	a.Guard(context.Background(), to, &from, func(d Decision) {
		calls++
		got = d
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, Decision{Action: Redirect, Target: Login}, got)
}

func TestDecide_ReadsLiveSession(t *testing.T) {
	s := &fakeSession{snap: anonymous}
	a := NewAuthorizer(s, nil)
	m, _ := NewTable().Named(Favorites, nil)

	assert.Equal(t, Redirect, a.Decide(m).Action)
	s.snap = verified
	assert.Equal(t, Proceed, a.Decide(m).Action)
}
