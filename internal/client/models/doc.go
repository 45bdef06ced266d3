// Package models holds the wire and cache types shared by the recipebox
// client: users and sessions, recipes and LLM drafts, rate-limit snapshots,
// admin console payloads and in-app notifications.
//
// JSON tags follow the backend's snake_case field names.
package models
