// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"handmade/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusChangeRepoFactory provides access to the status-change repository within a transaction.
	StatusChangeRepoFactory interface {
		StatusChangeRepository() ports.StatusChangeRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StatusChangeUoW manages transactions for status-change operations.
	// Carries the order repository as well: every temporal validation checks
	// the target order and takes its row lock in the same transaction.
	StatusChangeUoW interface {
		TxManager
		StatusChangeRepoFactory
		OrderRepoFactory
	}

	// StatusChangeUoWFactory creates new status-change unit of work instances.
	StatusChangeUoWFactory interface {
		Create() StatusChangeUoW
	}

	// PaymentUoW manages transactions for payment operations.
	// Carries the order repository for order-existence checks on creation.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
