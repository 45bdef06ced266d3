// Package router holds the static route table of the interactive client and
// decides, before every command runs, whether the current session may enter
// the route bound to it.
//
// Routes are grouped under layouts whose Meta is merged (logical OR) into
// every child. Paths are resolved with a chi mux, so static segments win over
// parameters ("/recipes/create" resolves to recipe-create, not
// recipe-detail).
//
// The Authorizer reads the live session.Holder; the Navigator follows its
// redirects with a hop limit.
package router
