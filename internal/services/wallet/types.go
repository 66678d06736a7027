package wallet

import (
	"context"

	"quicktop/internal/models"
)

// TransactionHistoryLimit caps how many recent transactions are returned.
const TransactionHistoryLimit = 20

// BalanceDetails is the wallet summary returned to the caller.
type BalanceDetails struct {
	Balance       float64 `json:"balance"`
	AccountNumber string  `json:"accountNumber"`
	BankName      string  `json:"bankName"`
}

// FundReceipt is the outcome of a wallet funding.
type FundReceipt struct {
	NewBalance  float64
	Transaction *models.Transaction
}

// Cache is the slice of the cache service the wallet service needs.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
