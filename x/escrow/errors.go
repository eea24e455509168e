package escrow

import (
	"github.com/iov-one/stableswap/errors"
)

// Host error codes 1000-1100 are reserved for extensions,
// escrow takes 1010-1020.
var (
	// ErrInvalidInstruction is returned when the raw instruction data is
	// empty, carries an unknown opcode or a malformed payload.
	ErrInvalidInstruction = errors.Register(1010, "invalid instruction")

	// ErrInvalidAmount is returned when a deposit amount does not match
	// the amount recorded in the contract.
	ErrInvalidAmount = errors.Register(1011, "invalid amount")

	// ErrAlreadyDeposited is returned when a party attempts a second
	// deposit for a side that is already funded.
	ErrAlreadyDeposited = errors.Register(1012, "already deposited")

	// ErrPreconditionFailed is returned when an instruction is not
	// allowed in the current contract state, for example an exchange
	// before both deposits or any instruction on a settled contract.
	ErrPreconditionFailed = errors.Register(1013, "precondition failed")

	// ErrNothingToRefund is returned when a refund is requested but no
	// deposit was ever made.
	ErrNothingToRefund = errors.Register(1014, "nothing to refund")

	// ErrTransferFailure wraps any error reported by the token transfer
	// port.
	ErrTransferFailure = errors.Register(1015, "transfer failed")
)
