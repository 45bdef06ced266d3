package router

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

const maxRedirects = 5

var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrBlocked      = errors.New("navigation blocked")
	ErrTooManyHops  = errors.New("too many redirects")
)

// Result is where a navigation ended. Requested is the route that was asked
// for; it differs from Match.Route.Name when the navigator was redirected.
type Result struct {
	Match     Match
	Requested string
}

func (r Result) Redirected() bool {
	return r.Requested != r.Match.Route.Name
}

// Navigator tracks the current route and moves between routes through the
// Authorizer.
type Navigator struct {
	table *Table
	auth  *Authorizer

	mu      sync.Mutex
	current *Match
}

func NewNavigator(table *Table, auth *Authorizer) *Navigator {
	return &Navigator{table: table, auth: auth}
}

func (n *Navigator) Push(ctx context.Context, name string, params map[string]string) (Result, error) {
	to, ok := n.table.Named(name, params)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	return n.navigate(ctx, to)
}

func (n *Navigator) PushPath(ctx context.Context, path string) (Result, error) {
	to, ok := n.table.Resolve(path)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	return n.navigate(ctx, to)
}

func (n *Navigator) Table() *Table { return n.table }

func (n *Navigator) Authorizer() *Authorizer { return n.auth }

// Current returns the route the navigator is on, if any.
func (n *Navigator) Current() (Match, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Match{}, false
	}
	return *n.current, true
}

func (n *Navigator) navigate(ctx context.Context, to Match) (Result, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	requested := to.Route.Name
	for hop := 0; hop <= maxRedirects; hop++ {
		var d Decision
		n.auth.Guard(ctx, to, n.current, func(dec Decision) { d = dec })

		switch d.Action {
		case Proceed:
			m := to
			n.current = &m
			return Result{Match: to, Requested: requested}, nil
		case Block:
			return Result{}, fmt.Errorf("%w: %s", ErrBlocked, to.Route.Name)
		}

		next, ok := n.table.Named(d.Target, nil)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownRoute, d.Target)
		}
		to = next
	}
	return Result{}, fmt.Errorf("%w: %s", ErrTooManyHops, requested)
}
