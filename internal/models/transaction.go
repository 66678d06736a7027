package models

import (
	"gorm.io/gorm"
)

// Transaction directions
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)

// Service categories
const (
	ServiceAirtime       = "airtime"
	ServiceData          = "data"
	ServiceCable         = "cable"
	ServiceElectricity   = "electricity"
	ServiceWalletFunding = "wallet_funding"
)

// Transaction statuses. Debits start pending and move exactly once to a
// terminal status; wallet_funding credits are created successful.
const (
	StatusPending    = "pending"
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
)

// Transaction is one attempted movement of funds. Amount and reference are
// immutable after creation; status transitions are one-way.
type Transaction struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null" json:"userId"`
	Type        string  `gorm:"not null" json:"type"`
	ServiceType string  `gorm:"not null" json:"serviceType"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `gorm:"not null" json:"description"`
	Status      string  `gorm:"not null;default:'pending'" json:"status"`
	Reference   string  `gorm:"uniqueIndex;not null" json:"reference"`
	Recipient   string  `json:"recipient,omitempty"` // phone, meter or smartcard number
	Provider    string  `json:"provider,omitempty"`  // MTN, DSTV, EKEDC, ...
	Plan        string  `json:"plan,omitempty"`
	Metadata    JSON    `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// Terminal reports whether the transaction has reached a final status.
func (t *Transaction) Terminal() bool {
	return t.Status == StatusSuccessful || t.Status == StatusFailed
}
