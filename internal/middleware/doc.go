// Package middleware provides the HTTP middleware chain for the Setups API:
// request ids, structured request logging, panic recovery, CORS, in-memory
// rate limiting, and bearer-token authentication.
package middleware
