package claim

import "errors"

var (
	ErrNotFound          = errors.New("claim not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyComment      = errors.New("rejection requires a comment")
	ErrNotEditable       = errors.New("claim is no longer pending")
	ErrNotOwner          = errors.New("claim belongs to another workstation")
)
