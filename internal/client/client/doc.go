// Package client is the HTTP gateway to the recipebox REST backend.
//
// # Overview
//
// The package provides:
//  1. Narrow API contracts (AuthAPI, RecipeAPI, AdminAPI, ...) that stores and
//     services depend on, all combined in API.
//  2. HTTPClient, the net/http implementation: JSON bodies, a bearer token
//     taken from a TokenSource, an X-Request-ID per request, per-request
//     timeouts and tolerant decoding of enveloped or bare payloads.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens the
//     SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// Every non-2xx answer becomes an *APIError carrying the backend message and
// unwrapping to a sentinel (ErrBadRequest, ErrUnauthorized, ErrForbidden,
// ErrNotFound, ErrConflict, ErrRateLimited, ErrServer). Transport failures and
// deadlines unwrap to ErrUnavailable. A 401 on an authenticated request also
// fires the handler registered with OnUnauthorized.
//
// No request is retried.
package client
