// Package ledger records the rounds of a War game in an append-only,
// hash-chained log.
//
// # Core Components
//
// Ledger: the ordered list of blocks for one game, starting from a genesis
// block.
//
// Block: one resolved round, the deck sizes after it and the hash linking
// it to the previous block.
//
// # Properties
//
//   - Append-only: blocks are never modified once recorded
//   - Tamper detection: changing any recorded round breaks the hash chain
//   - Replay identity: two games with the same shuffle and rules produce the
//     same head hash
//
// Create a ledger with NewLedger, append each round as it is played and call
// Verify whenever the history must be trusted.
package ledger
