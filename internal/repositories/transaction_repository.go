package repositories

import (
	"errors"

	"quicktop/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateReference  = errors.New("duplicate transaction reference")
	ErrAlreadyFinalized    = errors.New("transaction already finalized")
)

// TransactionRepository is the transaction log: an append-then-update record
// of every attempted fund movement, keyed by a globally unique reference.
// Rows move from pending to exactly one terminal status and are never
// deleted.
type TransactionRepository interface {
	// Create persists a new transaction. A reference collision surfaces as
	// ErrDuplicateReference so callers can re-allocate and retry.
	Create(txn *models.Transaction) error

	GetByID(id uint) (*models.Transaction, error)
	GetByReference(reference string) (*models.Transaction, error)

	// MarkSuccessful finalizes a pending transaction, recording the
	// provider's reference in place of the internal one.
	MarkSuccessful(id uint, providerReference string) error

	// MarkFailed finalizes a pending transaction with the failure reason
	// stored in its metadata. The ledger is never touched on this path.
	MarkFailed(id uint, reason string) error

	// ListRecent returns the user's most recent transactions, newest first.
	ListRecent(userID uint, limit int) ([]models.Transaction, error)
}
