package swaptest

import (
	"crypto/rand"

	"github.com/iov-one/stableswap"
)

// NewIdentity returns a random, valid party identity. Each call
// produces a different one.
func NewIdentity() stableswap.Identity {
	id := make(stableswap.Identity, stableswap.IdentitySize)
	if _, err := rand.Read(id); err != nil {
		panic(err)
	}
	return id
}
