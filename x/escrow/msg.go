package escrow

import (
	"encoding/binary"

	"github.com/iov-one/stableswap/errors"
)

// Instruction opcodes as sent by clients. One discriminator byte
// followed by an opcode specific payload.
const (
	opDeposit  byte = 0
	opExchange byte = 1
	opRefund   byte = 2
)

// Deposit payload: one asset selector byte followed by the amount.
const (
	assetStablecoin byte = 0
	assetNative     byte = 1

	depositMsgSize = 1 + 1 + 8
)

var _ Instruction = (*DepositMsg)(nil)
var _ Instruction = (*ExchangeMsg)(nil)
var _ Instruction = (*RefundMsg)(nil)

// Instruction is one decoded escrow operation. The set of
// implementations is closed, handlers dispatch over it with an
// exhaustive type switch.
type Instruction interface {
	Validate() error

	// sealed prevents implementations outside of this package.
	sealed()
}

// DepositMsg funds one side of the contract. Native selects which
// asset is deposited and with it which party must sign: the seller
// deposits the native asset, the buyer the stablecoin.
type DepositMsg struct {
	Native bool
	Amount uint64
}

func (DepositMsg) sealed() {}

// Validate makes sure that this is sensible.
func (m *DepositMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero deposit")
	}
	return nil
}

// ExchangeMsg settles the contract by releasing both legs together.
type ExchangeMsg struct{}

func (ExchangeMsg) sealed() {}

// Validate always succeeds, the message carries no payload.
func (m *ExchangeMsg) Validate() error {
	return nil
}

// RefundMsg returns deposited assets to their owners once the deadline
// has passed.
type RefundMsg struct{}

func (RefundMsg) sealed() {}

// Validate always succeeds, the message carries no payload.
func (m *RefundMsg) Validate() error {
	return nil
}

// ParseInstruction decodes raw instruction data into one of the escrow
// messages. It is a pure function. Unknown opcodes, missing payload and
// trailing garbage are all rejected as ErrInvalidInstruction.
func ParseInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidInstruction, "empty instruction data")
	}
	switch op := data[0]; op {
	case opDeposit:
		if len(data) != depositMsgSize {
			return nil, errors.Wrapf(ErrInvalidInstruction, "deposit payload must be %d bytes, got %d", depositMsgSize, len(data))
		}
		var native bool
		switch data[1] {
		case assetStablecoin:
			native = false
		case assetNative:
			native = true
		default:
			return nil, errors.Wrapf(ErrInvalidInstruction, "unknown asset selector %d", data[1])
		}
		msg := &DepositMsg{
			Native: native,
			Amount: binary.LittleEndian.Uint64(data[2:]),
		}
		if err := msg.Validate(); err != nil {
			return nil, err
		}
		return msg, nil
	case opExchange:
		if len(data) != 1 {
			return nil, errors.Wrap(ErrInvalidInstruction, "exchange carries no payload")
		}
		return &ExchangeMsg{}, nil
	case opRefund:
		if len(data) != 1 {
			return nil, errors.Wrap(ErrInvalidInstruction, "refund carries no payload")
		}
		return &RefundMsg{}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidInstruction, "unknown opcode %d", op)
	}
}
