// ABOUTME: Sentinel error kinds for the seeding pipeline.
// ABOUTME: Matched with errors.Is to decide skip-versus-abort semantics.
package seed

import "errors"

var (
	// ErrFileNotFound means no candidate resource path resolved.
	ErrFileNotFound = errors.New("resource file not found")

	// ErrEmptyFile means a resource had fewer than two non-blank rows.
	ErrEmptyFile = errors.New("resource file is empty")

	// ErrInvalidDataFormat means a resource's structure does not match
	// its category's expected layout.
	ErrInvalidDataFormat = errors.New("invalid data format")

	// ErrParsing means a resource could not be decoded as UTF-8 text or
	// valid JSON for its schema.
	ErrParsing = errors.New("parsing error")

	// ErrDatabase wraps persistent-store failures during seeding.
	ErrDatabase = errors.New("database error")
)
