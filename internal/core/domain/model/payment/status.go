package payment

import (
	"fmt"

	"handmade/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──┬──> Completed
//	          └──> Expired
//
// Both Completed and Expired are final states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created payment.
	Pending

	// Completed indicates the payment has been settled.
	Completed

	// Expired indicates the payment was not settled before its deadline.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Expired:   "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Expired:   "Expired",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Completed, and Expired.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Completed.
// Only Pending payments can complete.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Expire transitions the status to Expired.
// Only Pending payments can expire.
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}
