// Package payment contains the Payment aggregate and its status state machine.
//
// Payments start Pending and either complete or expire. The expiration sweep
// job transitions overdue pending payments to Expired on a schedule.
package payment
