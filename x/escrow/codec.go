package escrow

import (
	"encoding/binary"

	"github.com/iov-one/stableswap"
	"github.com/iov-one/stableswap/errors"
)

// The contract record layout is fixed. Changing field order or width
// would corrupt every existing escrow, so the offsets below are part of
// the external interface.
//
//	offset width field
//	     0    32 seller identity
//	    32    32 buyer identity
//	    64     8 stablecoin price, little endian
//	    72     8 native settlement amount, little endian
//	    80     1 stablecoin kind
//	    81     8 deadline, unix seconds, little endian
//	    89     1 seller deposited flag
//	    90     1 buyer deposited flag
//	    91     1 state (0 open, 1 exchanged, 2 refunded)
const ContractSize = 92

const (
	offSeller          = 0
	offBuyer           = 32
	offPrice           = 64
	offAmount          = 72
	offStablecoin      = 80
	offDeadline        = 81
	offSellerDeposited = 89
	offBuyerDeposited  = 90
	offState           = 91
)

// MarshalBinary serializes the contract into its fixed size record
// form. An invalid contract cannot be serialized.
func (c *Contract) MarshalBinary() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid contract")
	}
	raw := make([]byte, ContractSize)
	copy(raw[offSeller:offSeller+stableswap.IdentitySize], c.Seller)
	copy(raw[offBuyer:offBuyer+stableswap.IdentitySize], c.Buyer)
	binary.LittleEndian.PutUint64(raw[offPrice:], c.Price)
	binary.LittleEndian.PutUint64(raw[offAmount:], c.Amount)
	raw[offStablecoin] = byte(c.Stablecoin)
	binary.LittleEndian.PutUint64(raw[offDeadline:], uint64(c.Deadline))
	raw[offSellerDeposited] = flagByte(c.SellerDeposited)
	raw[offBuyerDeposited] = flagByte(c.BuyerDeposited)
	raw[offState] = byte(c.State)
	return raw, nil
}

// UnmarshalBinary loads the contract from its fixed size record form.
// Corrupted records are rejected rather than partially loaded.
func (c *Contract) UnmarshalBinary(raw []byte) error {
	if len(raw) != ContractSize {
		return errors.Wrapf(errors.ErrInput, "contract record must be %d bytes, got %d", ContractSize, len(raw))
	}
	seller := make(stableswap.Identity, stableswap.IdentitySize)
	copy(seller, raw[offSeller:offSeller+stableswap.IdentitySize])
	buyer := make(stableswap.Identity, stableswap.IdentitySize)
	copy(buyer, raw[offBuyer:offBuyer+stableswap.IdentitySize])

	sellerDeposited, err := parseFlag(raw[offSellerDeposited])
	if err != nil {
		return errors.Wrap(err, "seller deposited flag")
	}
	buyerDeposited, err := parseFlag(raw[offBuyerDeposited])
	if err != nil {
		return errors.Wrap(err, "buyer deposited flag")
	}

	loaded := Contract{
		Seller:          seller,
		Buyer:           buyer,
		Price:           binary.LittleEndian.Uint64(raw[offPrice:]),
		Amount:          binary.LittleEndian.Uint64(raw[offAmount:]),
		Stablecoin:      Stablecoin(raw[offStablecoin]),
		Deadline:        stableswap.UnixTime(binary.LittleEndian.Uint64(raw[offDeadline:])),
		SellerDeposited: sellerDeposited,
		BuyerDeposited:  buyerDeposited,
		State:           State(raw[offState]),
	}
	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "corrupted contract record")
	}
	*c = loaded
	return nil
}

func flagByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func parseFlag(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.Wrapf(errors.ErrInput, "flag byte %d", b)
}
