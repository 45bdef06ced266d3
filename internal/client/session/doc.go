// Package session is the single authoritative holder of the client's
// authentication state: the bearer token and the cached user profile.
//
// The Holder is created explicitly, restored from durable storage with
// Bootstrap, and then consulted synchronously by the navigator before every
// command. Persisted storage is only read at bootstrap; afterwards every
// change is written through.
//
//	h := session.New(api, session.NewSQLitePersister(db), log)
//	if err := h.Bootstrap(ctx); err != nil { ... }
//	defer h.Close()
package session
