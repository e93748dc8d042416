package entity

import (
	"time"
)

// ExpiryBuffer is the safety window subtracted from a credential's expiry.
// A credential this close to expiring is treated as already expired so a
// request never leaves with a token that dies in flight.
const ExpiryBuffer = 60 * time.Second

// Credential is a bearer token obtained from the provider's client-credentials
// endpoint. It is replaced wholesale on refresh and never mutated.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// Valid reports whether the credential is still usable at the given instant,
// accounting for the expiry buffer.
func (c *Credential) Valid(now time.Time) bool {
	if c == nil || c.Token == "" {
		return false
	}
	return now.Before(c.ExpiresAt.Add(-ExpiryBuffer))
}
