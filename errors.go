package turtle

import "errors"

var (
	// ErrInvalidArgument is returned when a drawing parameter is out of
	// range: a negative order, a non-positive or non-finite length, a
	// non-positive canvas size or pen width.
	ErrInvalidArgument = errors.New("turtle: invalid argument")

	// ErrClosed is returned by every command issued after Close.
	ErrClosed = errors.New("turtle: surface is closed")

	// ErrNoBackend is returned by New when no backend is supplied.
	ErrNoBackend = errors.New("turtle: no backend")
)
