package domain

import "errors"

// Sentinel errors for reservation operations. Constructors and repositories
// wrap these with context at the point of violation; callers branch with
// errors.Is. All four are recoverable conditions, none is fatal.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicate       = errors.New("already exists")
	ErrConflict        = errors.New("booking conflict")
	ErrNotFound        = errors.New("not found")
)
