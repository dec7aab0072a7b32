// Package order contains the Order aggregate.
//
// Orders are the anchor for status-change history: every status change must
// reference an existing, non-deleted order. The ledger treats orders as
// read-only; order mutations happen exclusively through order commands.
package order
