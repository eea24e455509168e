package escrow

import (
	"context"

	"github.com/iov-one/stableswap"
	"github.com/iov-one/stableswap/errors"
	"github.com/iov-one/stableswap/x/token"
)

// Account positions are host supplied and positional.
//
// Deposit: [depositor, depositor asset account, escrow asset account]
// Exchange and Refund: [seller, buyer, escrow native account, escrow
// stablecoin account]
const (
	depositAccDepositor = 0
	depositAccSource    = 1
	depositAccEscrow    = 2
	depositAccCount     = 3

	swapAccSeller       = 0
	swapAccBuyer        = 1
	swapAccEscrowNative = 2
	swapAccEscrowStable = 3
	swapAccCount        = 4
)

// accountAt returns the identity at the given position, failing when
// the host supplied too short an account list.
func accountAt(accounts []stableswap.Identity, pos int) (stableswap.Identity, error) {
	if pos >= len(accounts) {
		return nil, errors.Wrapf(ErrInvalidInstruction, "missing account at position %d", pos)
	}
	acc := accounts[pos]
	if err := acc.Validate(); err != nil {
		return nil, errors.Wrapf(err, "account at position %d", pos)
	}
	return acc, nil
}

// DepositHandler funds one side of a contract. The asset is moved from
// the depositor into the escrow held account and only if that move
// succeeds the corresponding deposited flag is set.
type DepositHandler struct {
	mover        token.Mover
	tokenProgram stableswap.Identity
}

// NewDepositHandler returns a handler moving assets through the given
// port. The token program identity is forwarded with every transfer.
func NewDepositHandler(mover token.Mover, tokenProgram stableswap.Identity) DepositHandler {
	return DepositHandler{mover: mover, tokenProgram: tokenProgram}
}

// Deliver applies a deposit and returns the updated contract. The input
// contract is never modified: on any error the caller keeps the
// previous record and no deposit flag changes.
func (h DepositHandler) Deliver(ctx context.Context, c *Contract, accounts []stableswap.Identity, msg *DepositMsg) (*Contract, error) {
	depositor, err := h.validate(c, accounts, msg)
	if err != nil {
		return nil, err
	}

	source, err := accountAt(accounts, depositAccSource)
	if err != nil {
		return nil, err
	}
	escrowAcc, err := accountAt(accounts, depositAccEscrow)
	if err != nil {
		return nil, err
	}

	move := token.Transfer{
		Program:     h.tokenProgram,
		Source:      source,
		Destination: escrowAcc,
		Authority:   depositor,
		Signers:     []stableswap.Identity{depositor},
		Amount:      msg.Amount,
	}
	if err := h.mover.Move(ctx, move); err != nil {
		return nil, errors.Wrap(ErrTransferFailure, err.Error())
	}

	updated := c.Copy()
	if msg.Native {
		updated.SellerDeposited = true
	} else {
		updated.BuyerDeposited = true
	}
	return updated, nil
}

// validate performs every precondition check before any asset moves.
func (h DepositHandler) validate(c *Contract, accounts []stableswap.Identity, msg *DepositMsg) (stableswap.Identity, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if c.State.Terminal() {
		return nil, errors.Wrapf(ErrPreconditionFailed, "contract is %s", c.State)
	}

	depositor, err := accountAt(accounts, depositAccDepositor)
	if err != nil {
		return nil, err
	}

	// The seller funds the native side, the buyer the stablecoin side.
	expected := c.Buyer
	expectedAmount := c.Price
	deposited := c.BuyerDeposited
	if msg.Native {
		expected = c.Seller
		expectedAmount = c.Amount
		deposited = c.SellerDeposited
	}

	if !depositor.Equals(expected) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "depositor %s is not the expected party", depositor)
	}
	if msg.Amount != expectedAmount {
		return nil, errors.Wrapf(ErrInvalidAmount, "expected %d, got %d", expectedAmount, msg.Amount)
	}
	if deposited {
		return nil, errors.Wrap(ErrAlreadyDeposited, "this side is already funded")
	}
	return depositor, nil
}

// ExchangeHandler releases both legs of the swap: the native asset to
// the buyer and the stablecoin to the seller.
type ExchangeHandler struct {
	mover        token.Mover
	tokenProgram stableswap.Identity
}

// NewExchangeHandler returns a handler moving assets through the given
// port.
func NewExchangeHandler(mover token.Mover, tokenProgram stableswap.Identity) ExchangeHandler {
	return ExchangeHandler{mover: mover, tokenProgram: tokenProgram}
}

// Deliver performs both transfers and marks the contract exchanged.
// The two legs and the state change are one unit: if either transfer
// fails the error is propagated and the host discards the whole
// invocation. No compensation of the first leg is attempted here as
// that would create a new inconsistent intermediate state.
func (h ExchangeHandler) Deliver(ctx context.Context, c *Contract, accounts []stableswap.Identity, msg *ExchangeMsg) (*Contract, error) {
	seller, buyer, escrowNative, escrowStable, err := h.validate(c, accounts, msg)
	if err != nil {
		return nil, err
	}

	// Native asset from escrow to the buyer. The escrow account is its
	// own authority, the host signs for it with the program seed.
	nativeLeg := token.Transfer{
		Program:     h.tokenProgram,
		Source:      escrowNative,
		Destination: buyer,
		Authority:   escrowNative,
		Signers:     []stableswap.Identity{escrowNative},
		Amount:      c.Amount,
	}
	if err := h.mover.Move(ctx, nativeLeg); err != nil {
		return nil, errors.Wrap(ErrTransferFailure, err.Error())
	}

	// Stablecoin from escrow to the seller.
	stableLeg := token.Transfer{
		Program:     h.tokenProgram,
		Source:      escrowStable,
		Destination: seller,
		Authority:   escrowStable,
		Signers:     []stableswap.Identity{escrowStable},
		Amount:      c.Price,
	}
	if err := h.mover.Move(ctx, stableLeg); err != nil {
		return nil, errors.Wrap(ErrTransferFailure, err.Error())
	}

	updated := c.Copy()
	updated.State = StateExchanged
	return updated, nil
}

// validate performs every precondition check before any asset moves.
func (h ExchangeHandler) validate(c *Contract, accounts []stableswap.Identity, msg *ExchangeMsg) (seller, buyer, escrowNative, escrowStable stableswap.Identity, err error) {
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}
	if c.State.Terminal() {
		return nil, nil, nil, nil, errors.Wrapf(ErrPreconditionFailed, "contract is %s", c.State)
	}
	if !c.SellerDeposited || !c.BuyerDeposited {
		return nil, nil, nil, nil, errors.Wrap(ErrPreconditionFailed, "both parties must deposit first")
	}

	if seller, err = accountAt(accounts, swapAccSeller); err != nil {
		return nil, nil, nil, nil, err
	}
	if buyer, err = accountAt(accounts, swapAccBuyer); err != nil {
		return nil, nil, nil, nil, err
	}
	if escrowNative, err = accountAt(accounts, swapAccEscrowNative); err != nil {
		return nil, nil, nil, nil, err
	}
	if escrowStable, err = accountAt(accounts, swapAccEscrowStable); err != nil {
		return nil, nil, nil, nil, err
	}

	if !seller.Equals(c.Seller) {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "account %s is not the seller", seller)
	}
	if !buyer.Equals(c.Buyer) {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "account %s is not the buyer", buyer)
	}
	return seller, buyer, escrowNative, escrowStable, nil
}

// RefundHandler returns deposited assets to their original owners once
// the deadline has passed without a completed exchange.
type RefundHandler struct {
	mover        token.Mover
	tokenProgram stableswap.Identity
}

// NewRefundHandler returns a handler moving assets through the given
// port.
func NewRefundHandler(mover token.Mover, tokenProgram stableswap.Identity) RefundHandler {
	return RefundHandler{mover: mover, tokenProgram: tokenProgram}
}

// Deliver refunds every funded side and marks the contract refunded.
// Refunding only one party is the expected case when the other side
// never deposited.
func (h RefundHandler) Deliver(ctx context.Context, c *Contract, accounts []stableswap.Identity, msg *RefundMsg) (*Contract, error) {
	seller, buyer, escrowNative, escrowStable, err := h.validate(ctx, c, accounts, msg)
	if err != nil {
		return nil, err
	}

	if c.SellerDeposited {
		move := token.Transfer{
			Program:     h.tokenProgram,
			Source:      escrowNative,
			Destination: seller,
			Authority:   escrowNative,
			Signers:     []stableswap.Identity{escrowNative},
			Amount:      c.Amount,
		}
		if err := h.mover.Move(ctx, move); err != nil {
			return nil, errors.Wrap(ErrTransferFailure, err.Error())
		}
	}
	if c.BuyerDeposited {
		move := token.Transfer{
			Program:     h.tokenProgram,
			Source:      escrowStable,
			Destination: buyer,
			Authority:   escrowStable,
			Signers:     []stableswap.Identity{escrowStable},
			Amount:      c.Price,
		}
		if err := h.mover.Move(ctx, move); err != nil {
			return nil, errors.Wrap(ErrTransferFailure, err.Error())
		}
	}

	updated := c.Copy()
	updated.State = StateRefunded
	return updated, nil
}

// validate performs every precondition check before any asset moves.
func (h RefundHandler) validate(ctx context.Context, c *Contract, accounts []stableswap.Identity, msg *RefundMsg) (seller, buyer, escrowNative, escrowStable stableswap.Identity, err error) {
	if err := msg.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}
	if c.State.Terminal() {
		return nil, nil, nil, nil, errors.Wrapf(ErrPreconditionFailed, "contract is %s", c.State)
	}
	if !stableswap.IsExpired(ctx, c.Deadline) {
		return nil, nil, nil, nil, errors.Wrapf(ErrPreconditionFailed, "deadline %s not passed", c.Deadline)
	}
	if !c.SellerDeposited && !c.BuyerDeposited {
		return nil, nil, nil, nil, errors.Wrap(ErrNothingToRefund, "no deposits were made")
	}

	if seller, err = accountAt(accounts, swapAccSeller); err != nil {
		return nil, nil, nil, nil, err
	}
	if buyer, err = accountAt(accounts, swapAccBuyer); err != nil {
		return nil, nil, nil, nil, err
	}
	if escrowNative, err = accountAt(accounts, swapAccEscrowNative); err != nil {
		return nil, nil, nil, nil, err
	}
	if escrowStable, err = accountAt(accounts, swapAccEscrowStable); err != nil {
		return nil, nil, nil, nil, err
	}

	if !seller.Equals(c.Seller) {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "account %s is not the seller", seller)
	}
	if !buyer.Equals(c.Buyer) {
		return nil, nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "account %s is not the buyer", buyer)
	}
	return seller, buyer, escrowNative, escrowStable, nil
}
