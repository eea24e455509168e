package escrow

import (
	"github.com/iov-one/stableswap"
	"github.com/iov-one/stableswap/errors"
)

// Stablecoin enumerates the supported stablecoin variants. This is a
// closed set, the kind byte is persisted and must keep its value.
type Stablecoin byte

const (
	StablecoinUSDT Stablecoin = 0
	StablecoinUSDC Stablecoin = 1
)

// Validate returns an error if this is not a known stablecoin kind.
func (s Stablecoin) Validate() error {
	switch s {
	case StablecoinUSDT, StablecoinUSDC:
		return nil
	}
	return errors.Wrapf(errors.ErrInput, "unknown stablecoin kind %d", s)
}

func (s Stablecoin) String() string {
	switch s {
	case StablecoinUSDT:
		return "USDT"
	case StablecoinUSDC:
		return "USDC"
	}
	return "invalid"
}

// State describes the settlement progress of a contract. It is
// persisted as the completion byte of the record: zero means the
// contract is still open, one that the exchange completed. Records
// written before refunds were tracked only ever contain those two
// values, so both keep their meaning.
type State byte

const (
	StateOpen      State = 0
	StateExchanged State = 1
	StateRefunded  State = 2
)

// Validate returns an error if this is not a known state value.
func (s State) Validate() error {
	switch s {
	case StateOpen, StateExchanged, StateRefunded:
		return nil
	}
	return errors.Wrapf(errors.ErrState, "unknown state %d", s)
}

// Terminal returns true once the contract reached a final outcome.
// Terminal contracts accept no further mutating instructions.
func (s State) Terminal() bool {
	return s != StateOpen
}

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateExchanged:
		return "exchanged"
	case StateRefunded:
		return "refunded"
	}
	return "invalid"
}

// Contract is the persisted state of one escrow agreement. Parties,
// amounts, the stablecoin kind and the deadline are fixed at creation.
// Only the deposit flags and the state are ever mutated, and only by
// the handlers in this package.
type Contract struct {
	// Seller owes the native settlement asset and receives the
	// stablecoin price.
	Seller stableswap.Identity
	// Buyer owes the stablecoin price and receives the native asset.
	Buyer stableswap.Identity
	// Price is the stablecoin amount owed to the seller.
	Price uint64
	// Amount is the native asset amount owed to the buyer.
	Amount uint64
	// Stablecoin is the token variant the buyer pays with.
	Stablecoin Stablecoin
	// Deadline is the moment after which a refund becomes eligible.
	Deadline stableswap.UnixTime

	SellerDeposited bool
	BuyerDeposited  bool
	State           State
}

// NewContract returns an open contract with the given terms.
func NewContract(
	seller stableswap.Identity,
	buyer stableswap.Identity,
	price uint64,
	amount uint64,
	kind Stablecoin,
	deadline stableswap.UnixTime,
) *Contract {
	return &Contract{
		Seller:     seller,
		Buyer:      buyer,
		Price:      price,
		Amount:     amount,
		Stablecoin: kind,
		Deadline:   deadline,
	}
}

// Validate ensures the contract is valid.
func (c *Contract) Validate() error {
	if err := c.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if err := c.Buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	if c.Seller.Equals(c.Buyer) {
		return errors.Wrap(errors.ErrInput, "seller and buyer must differ")
	}
	if c.Price == 0 {
		return errors.Wrap(errors.ErrInput, "zero price")
	}
	if c.Amount == 0 {
		return errors.Wrap(errors.ErrInput, "zero settlement amount")
	}
	if err := c.Stablecoin.Validate(); err != nil {
		return errors.Wrap(err, "stablecoin")
	}
	if c.Deadline == 0 {
		// Zero deadline is a valid value that dates to 1970-01-01. We
		// know that this value is in the past and makes no sense. Most
		// likely value was not provided and a zero value remained.
		return errors.Wrap(errors.ErrInput, "deadline is required")
	}
	if err := c.Deadline.Validate(); err != nil {
		return errors.Wrap(err, "invalid deadline value")
	}
	if err := c.State.Validate(); err != nil {
		return err
	}
	if c.State == StateExchanged && !(c.SellerDeposited && c.BuyerDeposited) {
		return errors.Wrap(errors.ErrState, "exchanged without both deposits")
	}
	return nil
}

// Copy makes a new contract with the same content.
func (c *Contract) Copy() *Contract {
	return &Contract{
		Seller:          c.Seller.Clone(),
		Buyer:           c.Buyer.Clone(),
		Price:           c.Price,
		Amount:          c.Amount,
		Stablecoin:      c.Stablecoin,
		Deadline:        c.Deadline,
		SellerDeposited: c.SellerDeposited,
		BuyerDeposited:  c.BuyerDeposited,
		State:           c.State,
	}
}
