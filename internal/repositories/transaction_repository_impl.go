package repositories

import (
	"errors"
	"fmt"

	"quicktop/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a gorm-backed transaction log.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(txn *models.Transaction) error {
	if err := r.db.Create(txn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReference
		}
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) GetByReference(reference string) (*models.Transaction, error) {
	var txn models.Transaction
	if err := r.db.Where("reference = ?", reference).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return &txn, nil
}

func (r *transactionRepository) MarkSuccessful(id uint, providerReference string) error {
	updates := map[string]interface{}{"status": models.StatusSuccessful}
	if providerReference != "" {
		updates["reference"] = providerReference
	}
	return r.finalize(id, updates)
}

func (r *transactionRepository) MarkFailed(id uint, reason string) error {
	return r.finalize(id, map[string]interface{}{
		"status":   models.StatusFailed,
		"metadata": models.JSON{"error": reason},
	})
}

// finalize applies a terminal status to a pending row. The status guard in
// the WHERE clause makes the transition one-way and exactly-once.
func (r *transactionRepository) finalize(id uint, updates map[string]interface{}) error {
	res := r.db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("finalize transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("finalize transaction: %w", err)
		}
		if count == 0 {
			return ErrTransactionNotFound
		}
		return ErrAlreadyFinalized
	}
	return nil
}

func (r *transactionRepository) ListRecent(userID uint, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}
