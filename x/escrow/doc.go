/*
Package escrow implements a two party atomic swap between a native
settlement asset and a stablecoin.

A contract binds a seller that owes the native asset and a buyer that
owes a stablecoin amount. Each party deposits its side into an escrow
held account. Once both sides are in, an exchange instruction releases
both legs together. If the deadline passes before the exchange, a
refund instruction returns every deposited asset to its original owner.

The host ledger serializes instructions per contract and provides the
rollback boundary: when a handler returns an error, none of the effects
of that invocation become visible. Handlers therefore never compensate
a partially applied operation themselves, they only propagate errors.
*/
package escrow
