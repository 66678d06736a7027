// Package auth implements signup, login and token issuance. The rest of the
// system consumes only the verified user id carried by the session token.
package auth

import (
	"errors"
	"log"

	"quicktop/internal/models"
	"quicktop/internal/repositories"
	"quicktop/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// SignupInput carries the registration request fields.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type Service interface {
	Signup(input SignupInput) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	GetUserByID(id uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	if userRepo == nil {
		panic("user repository is required")
	}
	return &service{userRepo: userRepo}
}

func (s *service) Signup(input SignupInput) (*models.User, string, error) {
	if existing, _ := s.userRepo.GetByEmail(input.Email); existing != nil {
		return nil, "", repositories.ErrEmailTaken
	}
	if existing, _ := s.userRepo.GetByPhone(input.Phone); existing != nil {
		return nil, "", repositories.ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.New("failed to hash password")
	}

	user := &models.User{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Password:      string(hashed),
		AccountNumber: models.NewAccountNumber(),
		BankName:      models.DefaultBankName,
		IsActive:      true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Printf("token generation failed for user %d: %v", user.ID, err)
		return nil, "", errors.New("error generating token")
	}
	return user, token, nil
}

func (s *service) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: incorrect password for user %d", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		log.Printf("failed to update last login for user %d: %v", user.ID, err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Printf("token generation failed for user %d: %v", user.ID, err)
		return nil, "", errors.New("error generating token")
	}
	return user, token, nil
}

func (s *service) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
