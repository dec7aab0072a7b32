// Package kernel contains shared value objects used across all domain models:
// UUID identifiers and the Deletion soft-delete state.
//
// Value objects in this package are immutable and validated at construction.
// Zero values are invalid and are rejected by Validate, which keeps entities
// reconstructed from persistence honest about their provenance.
package kernel
