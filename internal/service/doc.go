// Package service implements business logic for setups: validation,
// ownership enforcement and update sanitization. Services return sentinel
// errors; the handler layer maps them to HTTP problem responses.
package service
