package catalog

import "errors"

var (
	// ErrNotFound signals an unknown package, contact, or gallery image id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidPackage signals a package payload failing validation.
	ErrInvalidPackage = errors.New("invalid package payload")
	// ErrDuplicateName signals a package name already in use, caught by the
	// store's unique name index.
	ErrDuplicateName = errors.New("package name already in use")
)
