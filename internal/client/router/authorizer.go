package router

import (
	"context"

	"github.com/dmitrijs2005/recipebox/internal/client/session"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

type Action int

const (
	Proceed Action = iota
	Redirect
	Block
)

func (a Action) String() string {
	switch a {
	case Proceed:
		return "proceed"
	case Redirect:
		return "redirect"
	default:
		return "block"
	}
}

// Decision is the outcome of one authorization. Target is set for Redirect.
type Decision struct {
	Action Action
	Target string
}

// SessionState is the read side of session.Holder the authorizer needs.
type SessionState interface {
	Snapshot() session.Snapshot
}

type Authorizer struct {
	session SessionState
	log     logging.Logger
}

func NewAuthorizer(s SessionState, log logging.Logger) *Authorizer {
	if log == nil {
		log = logging.NewNop()
	}
	return &Authorizer{session: s, log: log.With("component", "router")}
}

// Decide applies the access rules in order; the first match wins. A
// redirect to the route being entered is turned into Proceed.
func (a *Authorizer) Decide(to Match) Decision {
	if to.Route.Name == "" {
		return Decision{Action: Block}
	}
	d := a.decide(to)
	if d.Action == Redirect && d.Target == to.Route.Name {
		return Decision{Action: Proceed}
	}
	return d
}

func (a *Authorizer) decide(to Match) Decision {
	s := a.session.Snapshot()
	name, meta := to.Route.Name, to.Route.Meta

	if !s.IsAuthenticated {
		if IsPublic(name) || IsAuthOnly(name) {
			return Decision{Action: Proceed}
		}
		if meta.RequiresAuth {
			return Decision{Action: Redirect, Target: Login}
		}
		return Decision{Action: Redirect, Target: Home}
	}

	if IsAuthOnly(name) && name != VerifyEmail {
		return Decision{Action: Redirect, Target: Dashboard}
	}
	if meta.RequiresAdmin && !s.IsAdmin {
		return Decision{Action: Redirect, Target: Dashboard}
	}
	// Unverified users still enter; the command itself asks them to verify.
	if meta.RequiresEmailVerification && !s.IsEmailVerified {
		return Decision{Action: Proceed}
	}
	return Decision{Action: Proceed}
}

// Guard adapts Decide to a continuation callback.
func (a *Authorizer) Guard(ctx context.Context, to Match, from *Match, next func(Decision)) {
	d := a.Decide(to)
	fromName := ""
	if from != nil {
		fromName = from.Route.Name
	}
	a.log.Debug(ctx, "route guard", "from", fromName, "to", to.Route.Name, "action", d.Action.String(), "target", d.Target)
	next(d)
}
