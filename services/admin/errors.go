package admin

import "errors"

var (
	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound signals an unknown admin id.
	ErrNotFound = errors.New("admin not found")
)
