package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const DefaultBankName = "QuickTop Microfinance Bank"

// User holds the account identity and its wallet ledger entry. The balance
// is mutated only through the wallet repository's atomic operations, never
// assigned from request input.
type User struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone         string     `gorm:"uniqueIndex;not null" json:"phone"`
	Password      string     `gorm:"not null" json:"-"`
	WalletBalance float64    `gorm:"not null;default:0" json:"walletBalance"`
	AccountNumber string     `gorm:"uniqueIndex;not null" json:"accountNumber"`
	BankName      string     `gorm:"not null;default:'QuickTop Microfinance Bank'" json:"bankName"`
	IsActive      bool       `gorm:"default:true" json:"isActive"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

// NewAccountNumber generates a virtual account number for a new user:
// "QT" followed by the last 8 digits of the current unix-milli timestamp.
func NewAccountNumber() string {
	return fmt.Sprintf("QT%08d", time.Now().UnixMilli()%100000000)
}

// BeforeCreate assigns an account number if the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.AccountNumber == "" {
		u.AccountNumber = NewAccountNumber()
	}
	if u.BankName == "" {
		u.BankName = DefaultBankName
	}
	return nil
}
