package credential

import (
	"context"
	"time"
)

// Issuer produces login identifiers and initial secrets for new employee
// accounts. The generated login ID has the shape
// {prefix}{namePart}{year}{serial}: two letters each from the first and
// last name uppercased, the four-digit joining year, and a four-digit
// per-year serial.
type Issuer interface {
	// GenerateLoginID computes the next login ID for an employee joining
	// on dateOfJoining. The serial is an optimistic count; the caller
	// must treat the store's uniqueness constraint as the source of truth
	// and retry with a recomputed serial on collision.
	GenerateLoginID(ctx context.Context, firstName, lastName string, dateOfJoining time.Time) (string, error)

	// GenerateInitialPassword returns a securely random one-time secret.
	// The plaintext is shown to the admin exactly once and never stored.
	GenerateInitialPassword() (string, error)
}
