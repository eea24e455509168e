package swaptest

import (
	"context"

	"github.com/iov-one/stableswap"
	"github.com/iov-one/stableswap/errors"
	"github.com/iov-one/stableswap/x/token"
)

// Ledger is an in-memory token.Mover. Balances are tracked per holder
// and every Move is applied atomically: a failed call changes nothing.
//
// Failures can be injected with FailOn to simulate the host token
// program rejecting a transfer mid-operation.
type Ledger struct {
	balances map[string]uint64
	moves    []token.Transfer
	calls    int
	failOn   int
	failErr  error
}

var _ token.Mover = (*Ledger)(nil)

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]uint64),
	}
}

// Fund credits the holder with the given amount out of thin air.
func (l *Ledger) Fund(holder stableswap.Identity, amount uint64) {
	l.balances[string(holder)] += amount
}

// Balance returns the current balance of the holder.
func (l *Ledger) Balance(holder stableswap.Identity) uint64 {
	return l.balances[string(holder)]
}

// FailOn makes the n-th Move call (counting from 1) return the given
// error instead of moving funds. Zero disables failure injection.
func (l *Ledger) FailOn(n int, err error) {
	l.failOn = n
	l.failErr = err
}

// Moves returns every transfer applied so far, in order.
func (l *Ledger) Moves() []token.Transfer {
	return l.moves
}

// Move implements token.Mover.
func (l *Ledger) Move(ctx context.Context, t token.Transfer) error {
	l.calls++
	if l.failOn != 0 && l.calls == l.failOn {
		return l.failErr
	}
	if err := t.Validate(); err != nil {
		return err
	}
	src := string(t.Source)
	if l.balances[src] < t.Amount {
		return errors.Wrapf(errors.ErrState, "insufficient funds: have %d, need %d", l.balances[src], t.Amount)
	}
	l.balances[src] -= t.Amount
	l.balances[string(t.Destination)] += t.Amount
	l.moves = append(l.moves, t)
	return nil
}
