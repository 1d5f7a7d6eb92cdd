package credential

import "errors"

var (
	// ErrLoginIDGenerationFailed means the bounded retry on login-ID
	// collisions was exhausted. The creating transaction must roll back.
	ErrLoginIDGenerationFailed = errors.New("could not generate a unique login ID")
)
