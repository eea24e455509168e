/*
Package token declares the transfer port used to move assets between
holders.

The actual movement of funds is performed by the host ledger's token
program. The escrow handlers only describe the transfer and hand it to
a Mover implementation. Every call is all or nothing: a failed Move
must not leave a partial balance change behind.
*/
package token
