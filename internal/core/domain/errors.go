package domain

import "go.trai.ch/zerr"

var (
	// ErrStepFailed is returned when a deploy step exits with a non-zero status.
	ErrStepFailed = zerr.New("step failed")

	// ErrEmptyCommand is returned when a step has no argument vector.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrInvalidPortMapping is returned when a port publication cannot be parsed.
	ErrInvalidPortMapping = zerr.New("invalid port mapping")

	// ErrInvalidSettings is returned when loaded settings cannot describe a
	// working stack.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrComposeInvalid is returned when an emitted compose document fails schema validation.
	ErrComposeInvalid = zerr.New("compose file is invalid")
)
