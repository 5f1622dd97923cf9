// Package config loads application configuration from environment variables.
//
// Every setting has a development-friendly default so the server starts with
// no environment at all; Validate reports everything that is missing or
// malformed in one error rather than failing on the first problem.
package config
