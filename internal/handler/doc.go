// Package handler implements the HTTP layer: request decoding, response
// shaping and the central mapping from service errors to problem responses.
package handler
