// Package statuschange contains the StatusChange aggregate: one immutable-ish
// entry in an order's status history.
//
// A status change records that an order entered a lifecycle state at a given
// time, attributed to an actor. The order reference is immutable after
// creation. Status and change time may be edited, and records are removed from
// view by soft deletion only.
//
// Temporal rules enforced here are local to a single record (a change time may
// not lie in the future). The cross-record ordering rule — change times of
// non-deleted records for one order are strictly increasing — needs the latest
// prior record and therefore lives in the command handlers, which fetch it
// through the repository inside the same transaction.
package statuschange
