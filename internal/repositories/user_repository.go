package repositories

import (
	"errors"

	"quicktop/internal/models"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")
)

// UserRepository defines the interface for user-related database operations.
// The auth collaborator is its only writer; the wallet side reads through
// WalletRepository.
type UserRepository interface {
	// Create creates a new user in the database
	Create(user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(email string) (*models.User, error)

	// GetByPhone retrieves a user by their phone number
	GetByPhone(phone string) (*models.User, error)

	// UpdateLastLogin stamps the user's last login time
	UpdateLastLogin(userID uint) error
}
