package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrEmptyPrompt is returned when a request reaches the Invoker without a prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrNilModel is returned when an Invoker is constructed without a Model
	ErrNilModel = errors.New("model cannot be nil")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
