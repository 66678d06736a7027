// Package wallet provides the funding workflow and wallet queries. Funding
// is trusted in this system: it credits the ledger and writes an already
// successful transaction synchronously, with no external call and no
// pending window.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"quicktop/internal/models"
	"quicktop/internal/repositories"
	"quicktop/internal/repositories/cache"

	"github.com/google/uuid"
)

type Service interface {
	// Fund credits the wallet and records a successful credit transaction.
	// The reference is optional; one is generated when absent.
	Fund(ctx context.Context, userID uint, amount float64, reference string) (*FundReceipt, error)

	GetBalance(ctx context.Context, userID uint) (*BalanceDetails, error)
	GetTransactions(ctx context.Context, userID uint) ([]models.Transaction, error)
}

type service struct {
	wallets repositories.WalletRepository
	txns    repositories.TransactionRepository
	cache   Cache
}

// NewService creates a new wallet service. The cache is optional.
func NewService(wallets repositories.WalletRepository, txns repositories.TransactionRepository, cacheSvc Cache) Service {
	if wallets == nil {
		panic("wallet repository is required")
	}
	if txns == nil {
		panic("transaction repository is required")
	}
	return &service{
		wallets: wallets,
		txns:    txns,
		cache:   cacheSvc,
	}
}

func (s *service) Fund(ctx context.Context, userID uint, amount float64, reference string) (*FundReceipt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if reference == "" {
		reference = newFundingReference()
	}

	var receipt FundReceipt
	err := s.wallets.InTransaction(func(w repositories.WalletRepository, t repositories.TransactionRepository) error {
		newBalance, err := w.CreditBalance(userID, amount)
		if err != nil {
			return err
		}

		txn := &models.Transaction{
			UserID:      userID,
			Type:        models.TypeCredit,
			ServiceType: models.ServiceWalletFunding,
			Amount:      amount,
			Description: fmt.Sprintf("Wallet funding - ₦%v", amount),
			Status:      models.StatusSuccessful,
			Reference:   reference,
			Metadata:    models.JSON{"fundingMethod": "online"},
		}
		if err := t.Create(txn); err != nil {
			return err
		}

		receipt = FundReceipt{NewBalance: newBalance, Transaction: txn}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrDuplicateReference):
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("fund wallet: %w", err)
	}

	s.invalidate(ctx, userID)
	return &receipt, nil
}

func (s *service) GetBalance(ctx context.Context, userID uint) (*BalanceDetails, error) {
	if s.cache != nil {
		var details BalanceDetails
		if found, err := s.cache.Get(ctx, cache.BalanceKey(userID), &details); err == nil && found {
			return &details, nil
		}
	}

	user, err := s.wallets.GetUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}

	details := &BalanceDetails{
		Balance:       user.WalletBalance,
		AccountNumber: user.AccountNumber,
		BankName:      user.BankName,
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.BalanceKey(userID), details); err != nil {
			log.Printf("failed to cache balance for user %d: %v", userID, err)
		}
	}
	return details, nil
}

func (s *service) GetTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	if s.cache != nil {
		var txns []models.Transaction
		if found, err := s.cache.Get(ctx, cache.TransactionsKey(userID), &txns); err == nil && found {
			return txns, nil
		}
	}

	txns, err := s.txns.ListRecent(userID, TransactionHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.TransactionsKey(userID), txns); err != nil {
			log.Printf("failed to cache transactions for user %d: %v", userID, err)
		}
	}
	return txns, nil
}

// newFundingReference allocates a default funding reference: a time
// component plus a random component, so same-millisecond fundings never
// collide on the unique index.
func newFundingReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("FUND%d%s", time.Now().UnixMilli(), suffix[:6])
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.BalanceKey(userID), cache.TransactionsKey(userID)); err != nil {
		log.Printf("failed to invalidate wallet cache for user %d: %v", userID, err)
	}
}
