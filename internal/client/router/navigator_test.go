package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/session"
)

func newNavigator(snap session.Snapshot) (*Navigator, *fakeSession) {
	s := &fakeSession{snap: snap}
	return NewNavigator(NewTable(), NewAuthorizer(s, nil)), s
}

func TestNavigator_Proceed(t *testing.T) {
	n, _ := newNavigator(verified)
	ctx := context.Background()

	_, ok := n.Current()
	assert.False(t, ok)

	res, err := n.Push(ctx, RecipeDetail, map[string]string{"id": "9"})
	require.NoError(t, err)
	assert.False(t, res.Redirected())
	assert.Equal(t, "/recipes/9", res.Match.Path)

	cur, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, RecipeDetail, cur.Route.Name)
}

func TestNavigator_FollowsRedirect(t *testing.T) {
	n, _ := newNavigator(anonymous)

	res, err := n.PushPath(context.Background(), "/admin/users")
	require.NoError(t, err)
	assert.True(t, res.Redirected())
	assert.Equal(t, AdminUsers, res.Requested)
	assert.Equal(t, Login, res.Match.Route.Name)

	cur, _ := n.Current()
	assert.Equal(t, Login, cur.Route.Name)
}

func TestNavigator_NonAdminBounced(t *testing.T) {
	n, _ := newNavigator(unverified)

	res, err := n.Push(context.Background(), AdminAnalytics, nil)
	require.NoError(t, err)
	assert.Equal(t, Dashboard, res.Match.Route.Name)
}

func TestNavigator_SessionChangeBetweenPushes(t *testing.T) {
	n, s := newNavigator(verified)
	ctx := context.Background()

	res, err := n.Push(ctx, Login, nil)
	require.NoError(t, err)
	assert.Equal(t, Dashboard, res.Match.Route.Name)

	s.snap = anonymous
	res, err = n.Push(ctx, Login, nil)
	require.NoError(t, err)
	assert.Equal(t, Login, res.Match.Route.Name)
	assert.False(t, res.Redirected())
}

func TestNavigator_Unknown(t *testing.T) {
	n, _ := newNavigator(verified)
	ctx := context.Background()

	_, err := n.Push(ctx, "nope", nil)
	require.ErrorIs(t, err, ErrUnknownRoute)

	_, err = n.PushPath(ctx, "/nope/nope")
	require.ErrorIs(t, err, ErrUnknownRoute)
}
