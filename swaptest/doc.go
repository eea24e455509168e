/*
Package swaptest provides in-memory implementations of the external
collaborators used by the escrow handlers, intended for tests only.

The Ledger implements the token transfer port with per holder balances
and supports failure injection to exercise rollback behaviour. The
RecordStore keeps the raw contract record in memory.
*/
package swaptest
