// Package stores holds the client's in-memory resource caches: recipes
// (with the optimistic favorite toggle), the admin console views and the
// in-app notification list.
//
// Stores never hold their lock across a network call. Every failed action
// records a human-readable message in the store's error slot and returns the
// error to the caller.
package stores
