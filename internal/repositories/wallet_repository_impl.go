package repositories

import (
	"errors"
	"fmt"

	"quicktop/internal/models"

	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a gorm-backed ledger store.
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *walletRepository) CreditBalance(userID uint, amount float64) (float64, error) {
	var balance float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("credit balance: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Select("wallet_balance").
			Scan(&balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *walletRepository) DebitBalanceIfSufficient(userID uint, amount float64) (float64, error) {
	var balance float64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Conditional decrement: the WHERE clause is the balance guard, so
		// two concurrent debits can never both succeed against the same
		// funds.
		res := tx.Model(&models.User{}).
			Where("id = ? AND wallet_balance >= ?", userID, amount).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
		if res.Error != nil {
			return fmt.Errorf("debit balance: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
				return fmt.Errorf("debit balance: %w", err)
			}
			if count == 0 {
				return ErrUserNotFound
			}
			return ErrInsufficientFunds
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Select("wallet_balance").
			Scan(&balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *walletRepository) InTransaction(fn func(WalletRepository, TransactionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx}, &transactionRepository{db: tx})
	})
}
