package stableswap

import (
	"context"
	"time"

	"github.com/iov-one/stableswap/errors"
)

type contextKey int

const contextKeyBlockTime contextKey = iota

// WithBlockTime sets the block time for the duration of one instruction.
// The host adapter must call this before dispatching, the core never
// reads the wall clock itself.
func WithBlockTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, contextKeyBlockTime, t)
}

// BlockTime returns the time declared for the currently processed
// instruction. An error is returned if the host did not provide one.
func BlockTime(ctx context.Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	if val.IsZero() {
		return val, errors.Wrap(errors.ErrHuman, "zero block time in the context")
	}
	return val, nil
}

// IsExpired returns true if the given deadline is strictly in the past
// as compared to the "now" declared in the context. A deadline equal to
// the current block time is not yet expired.
//
// This function panics if the block time is not present in the context.
// This is a programmer error, the host adapter must always set it.
func IsExpired(ctx context.Context, deadline UnixTime) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(err)
	}
	return deadline.Time().Before(now)
}
