package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSnapshotNotFound indicates that no snapshot exists for the given date key.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrHoldingNotFound indicates that no active holding exists for the given stock.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrQuoteNotFound indicates that the price feed has no quote for the given stock.
	ErrQuoteNotFound = errors.New("quote not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientShares indicates that a sell cannot be completed because
	// the position does not hold enough shares.
	ErrInsufficientShares = errors.New("insufficient shares for sale")

	// ErrInsufficientCash indicates that a simulated buy would drive the cash
	// balance negative.
	ErrInsufficientCash = errors.New("insufficient cash for purchase")

	// ErrInvalidTransactionType indicates a transaction type outside buy/sell/dividend.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	// Ledger operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")

	// Portfolio operation errors
	ErrFailedToGetHoldings = errors.New("failed to get holdings")
	ErrFailedToGetSummary  = errors.New("failed to get portfolio summary")

	// Simulation operation errors
	ErrFailedToGetSimulation = errors.New("failed to get simulation state")
	ErrFailedToExecuteTrade  = errors.New("failed to execute simulated trade")

	// Snapshot operation errors
	ErrFailedToRetrieveSnapshots = errors.New("failed to retrieve snapshots")
	ErrFailedToSaveSnapshot      = errors.New("failed to save snapshot")

	// Quote operation errors
	ErrFailedToRetrieveQuotes = errors.New("failed to retrieve quotes")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that the data is in an inconsistent state
	// (e.g., a sim-book record exists but the cash ledger row is missing).
	ErrDataInconsistency = errors.New("data inconsistency detected")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
