package service

import "errors"

// Sentinel errors returned by services. Handlers translate these to HTTP
// status codes; anything else is treated as an internal error.
var (
	ErrSetupNotFound      = errors.New("setup not found")
	ErrNotSetupOwner      = errors.New("not the setup owner")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrCategoryTooLong    = errors.New("category exceeds maximum length")
	ErrTooManyTags        = errors.New("too many tags")
)
