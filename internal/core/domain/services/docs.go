// Package services contains domain services that coordinate business logic
// across aggregates.
//
// Domain services hold rules that do not belong to a single aggregate.
// LedgerChronology owns the temporal ordering of an order's status-change
// history: command handlers load the latest visible record inside the order's
// transaction and ask the service whether a candidate change time may follow
// it. Keeping the rule here means append and update enforce exactly the same
// comparison.
package services
