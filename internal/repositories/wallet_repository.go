package repositories

import (
	"errors"

	"quicktop/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// WalletRepository is the ledger store: it owns every mutation of a user's
// wallet balance. Balance updates are single atomic SQL expressions so that
// concurrent requests can never drive a balance negative.
type WalletRepository interface {
	// GetUser loads the ledger entry (the user row) by id.
	GetUser(id uint) (*models.User, error)

	// CreditBalance atomically adds amount and returns the new balance.
	CreditBalance(userID uint, amount float64) (float64, error)

	// DebitBalanceIfSufficient atomically subtracts amount only when the
	// current balance covers it, returning the new balance. It fails with
	// ErrInsufficientFunds when the conditional update matches no row.
	DebitBalanceIfSufficient(userID uint, amount float64) (float64, error)

	// InTransaction runs fn with ledger and transaction-log handles bound
	// to one database transaction, so a debit and the matching status
	// update commit or roll back together.
	InTransaction(fn func(wallets WalletRepository, txns TransactionRepository) error) error
}
