// Package ratelimit tracks the recipe-creation quota reported by the
// backend and formats it for display.
package ratelimit
