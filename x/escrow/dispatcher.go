package escrow

import (
	"context"

	"go.uber.org/zap"

	"github.com/iov-one/stableswap"
	"github.com/iov-one/stableswap/errors"
	"github.com/iov-one/stableswap/x/token"
)

// RecordStore is the narrow persistence port. The host owns the
// contract account, the dispatcher only reads the raw record before an
// instruction and writes it back after a successful one.
type RecordStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
}

// Dispatcher is the single entry point of the escrow program. It
// decodes one instruction, routes it to the matching handler and
// persists the updated contract. The host serializes invocations per
// contract, so no locking happens here.
type Dispatcher struct {
	store    RecordStore
	log      *zap.Logger
	deposit  DepositHandler
	exchange ExchangeHandler
	refund   RefundHandler
}

// NewDispatcher wires the handlers to the given collaborators. The
// token program identity is forwarded with every transfer.
func NewDispatcher(store RecordStore, mover token.Mover, tokenProgram stableswap.Identity, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		store:    store,
		log:      log,
		deposit:  NewDepositHandler(mover, tokenProgram),
		exchange: NewExchangeHandler(mover, tokenProgram),
		refund:   NewRefundHandler(mover, tokenProgram),
	}
}

// Process handles one raw instruction against the stored contract.
// Either every effect of the instruction becomes visible, including the
// persisted record update, or none: on any error the previously stored
// record is left untouched and the error is surfaced to the host.
func (d *Dispatcher) Process(ctx context.Context, accounts []stableswap.Identity, data []byte) (err error) {
	defer errors.Recover(&err)

	raw, err := d.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load contract record")
	}
	var contract Contract
	if err := contract.UnmarshalBinary(raw); err != nil {
		return err
	}

	instruction, err := ParseInstruction(data)
	if err != nil {
		d.logRejected("decode", err)
		return err
	}

	var updated *Contract
	switch msg := instruction.(type) {
	case *DepositMsg:
		updated, err = d.deposit.Deliver(ctx, &contract, accounts, msg)
	case *ExchangeMsg:
		updated, err = d.exchange.Deliver(ctx, &contract, accounts, msg)
	case *RefundMsg:
		updated, err = d.refund.Deliver(ctx, &contract, accounts, msg)
	default:
		// ParseInstruction returns only the types above.
		return errors.Wrapf(errors.ErrHuman, "unhandled instruction %T", instruction)
	}
	if err != nil {
		d.logRejected(instructionName(instruction), err)
		return err
	}

	rawUpdated, err := updated.MarshalBinary()
	if err != nil {
		return err
	}
	if err := d.store.Save(ctx, rawUpdated); err != nil {
		return errors.Wrap(err, "save contract record")
	}

	d.log.Info("instruction applied",
		zap.String("instruction", instructionName(instruction)),
		zap.String("state", updated.State.String()),
		zap.Bool("seller_deposited", updated.SellerDeposited),
		zap.Bool("buyer_deposited", updated.BuyerDeposited),
	)
	return nil
}

func (d *Dispatcher) logRejected(instruction string, err error) {
	code, log := errors.HostInfo(err, false)
	d.log.Debug("instruction rejected",
		zap.String("instruction", instruction),
		zap.Uint32("code", code),
		zap.String("reason", log),
	)
}

func instructionName(in Instruction) string {
	switch in.(type) {
	case *DepositMsg:
		return "deposit"
	case *ExchangeMsg:
		return "exchange"
	case *RefundMsg:
		return "refund"
	}
	return "unknown"
}
