package token

import (
	"context"

	"github.com/iov-one/stableswap"
	"github.com/iov-one/stableswap/errors"
)

// Transfer describes a single asset movement between two holders. It
// mirrors the host token program's transfer instruction: the authority
// must have signed the enclosing transaction for the host to accept it.
type Transfer struct {
	// Program is the identity of the token program that manages the
	// asset being moved.
	Program stableswap.Identity
	// Source is the holder account the amount is taken from.
	Source stableswap.Identity
	// Destination is the holder account the amount is credited to.
	Destination stableswap.Identity
	// Authority is the identity allowed to move funds out of Source.
	Authority stableswap.Identity
	// Signers are the identities that signed for this transfer. For a
	// plain transfer this is the authority itself.
	Signers []stableswap.Identity
	// Amount is the number of base units to move. Must be positive.
	Amount uint64
}

// Validate returns an error if the transfer is not well formed.
func (t Transfer) Validate() error {
	if err := t.Program.Validate(); err != nil {
		return errors.Wrap(err, "program")
	}
	if err := t.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := t.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := t.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	for i, s := range t.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
	}
	if t.Amount == 0 {
		return errors.Wrap(errors.ErrInput, "zero amount")
	}
	return nil
}

// Mover moves a fixed amount of an asset from a source holder to a
// destination holder. Implementations must fail atomically: either the
// whole amount moves or nothing does.
type Mover interface {
	Move(ctx context.Context, t Transfer) error
}
