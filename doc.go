/*
Package stableswap defines the common types shared by the escrow
extensions: party identities, seconds-precision time and the block time
context helpers.

State changing logic lives in the subpackages. The x/escrow package
implements the two party swap state machine, x/token declares the
transfer port that moves assets between holders and swaptest provides
in-memory doubles for both.

We pass context through context.Context between the host adapter and
the handlers. The only value the core reads from it is the block time,
set with WithBlockTime. Handlers never read the wall clock themselves.
*/
package stableswap
