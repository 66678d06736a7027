package purchase

import (
	"context"
	"time"

	"quicktop/internal/models"
)

// Amount floors per service category, in naira.
const (
	MinAirtimeAmount     = 50.0
	MinElectricityAmount = 1000.0
)

// Default configuration values
const (
	DefaultProviderTimeout   = 30 * time.Second
	DefaultReferenceAttempts = 3
)

// Request describes one purchase attempt against a service category.
type Request struct {
	ServiceType string  // airtime, data, cable, electricity
	Amount      float64 // naira
	Recipient   string  // phone, smartcard or meter number
	Provider    string  // MTN, DSTV, EKEDC, ...
	Plan        string  // plan/package label
	Description string  // human-readable transaction description
}

// Receipt is the outcome of a successful purchase.
type Receipt struct {
	Transaction *models.Transaction
	NewBalance  float64
}

// Config holds purchase workflow settings.
type Config struct {
	// ProviderTimeout bounds the gateway call so a stalled provider
	// resolves the transaction instead of hanging the request.
	ProviderTimeout time.Duration

	// ReferenceAttempts bounds the retry loop on reference collisions.
	ReferenceAttempts int
}

// Cache is the slice of the cache service the workflow needs: invalidating
// stale balance and history reads once a transaction reaches a terminal
// status.
type Cache interface {
	Delete(ctx context.Context, keys ...string) error
}
