package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quicktop/internal/models"
	"quicktop/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository. The cache is
// optional; pass nil to read straight from the database.
func NewUserRepository(db *gorm.DB, cacheSvc *cache.CacheService) UserRepository {
	return &userRepository{db: db, cache: cacheSvc}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	if r.cache != nil {
		var user models.User
		if found, err := r.cache.Get(context.Background(), cache.UserKey(id), &user); err == nil && found {
			return &user, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(context.Background(), cache.UserKey(user.ID), &user); err != nil {
			log.Printf("failed to cache user %d: %v", user.ID, err)
		}
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateLastLogin(userID uint) error {
	res := r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("last_login_at", time.Now())
	if res.Error != nil {
		return fmt.Errorf("update last login: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	if r.cache != nil {
		if err := r.cache.Delete(context.Background(), cache.UserKey(userID)); err != nil {
			log.Printf("failed to invalidate user cache %d: %v", userID, err)
		}
	}
	return nil
}
