package stableswap

import (
	"bytes"

	"github.com/iov-one/stableswap/errors"
	"github.com/mr-tron/base58"
)

// IdentitySize is the length of a party identity in bytes. Identities
// are public key equivalents and the host ledger uses ed25519 keys.
const IdentitySize = 32

// Identity is an opaque party identifier. The core never inspects the
// bytes beyond comparing them, signature verification happens in the
// host before an instruction reaches us.
type Identity []byte

// Validate returns an error if this is not a well formed identity.
func (i Identity) Validate() error {
	if len(i) == 0 {
		return errors.Wrap(errors.ErrEmpty, "identity")
	}
	if len(i) != IdentitySize {
		return errors.Wrapf(errors.ErrInput, "identity must be %d bytes, got %d", IdentitySize, len(i))
	}
	return nil
}

// Equals returns true if both identities hold the same bytes.
func (i Identity) Equals(other Identity) bool {
	return bytes.Equal(i, other)
}

// Clone returns an independent copy of the identity.
func (i Identity) Clone() Identity {
	if i == nil {
		return nil
	}
	cp := make(Identity, len(i))
	copy(cp, i)
	return cp
}

// String returns the base58 form used by the host ledger tooling.
func (i Identity) String() string {
	if len(i) == 0 {
		return "(empty)"
	}
	return base58.Encode(i)
}

// ParseIdentity decodes a base58 encoded identity and validates it.
func ParseIdentity(enc string) (Identity, error) {
	raw, err := base58.Decode(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "base58: %v", err)
	}
	id := Identity(raw)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}
