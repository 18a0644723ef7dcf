package resumes

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotReady          = errors.New("resume not ready")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStorage           = errors.New("storage error")
)
