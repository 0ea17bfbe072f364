package apperr

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDegenerateImageSize = errors.New("degenerate image size")
	ErrPartialFailure      = errors.New("partial failure")
)
