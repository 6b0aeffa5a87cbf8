// Package commands contains the state-changing operations of the shipment
// tracking system. Each operation is a command object validated at
// construction plus a handler that manages the transaction, drives the
// domain aggregates, and publishes notifications after commit.
package commands

import (
	"context"

	"shiptrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest unit of work their operation
// needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RequestRepoFactory provides the pending-request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// SettingsRepoFactory provides the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettingsUoW manages transactions for settings-only operations.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// UoW manages transactions spanning orders, pending requests, and
	// settings. Used by the correlator operations, which touch all three.
	UoW interface {
		TxManager
		OrderRepoFactory
		RequestRepoFactory
		SettingsRepoFactory
	}

	// UoWFactory creates cross-store unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
