package purchase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"quicktop/internal/models"
	"quicktop/internal/repositories"
	"quicktop/internal/repositories/cache"
)

// Service orchestrates the purchase workflow: validate, check balance, open
// a pending transaction, call the provider, then settle the ledger and the
// transaction together.
type Service interface {
	Buy(ctx context.Context, userID uint, req Request) (*Receipt, error)
}

type service struct {
	wallets repositories.WalletRepository
	txns    repositories.TransactionRepository
	gateway Gateway
	cache   Cache
	config  Config
}

// NewService creates a new purchase service. The cache is optional; pass
// nil to skip balance invalidation.
func NewService(
	wallets repositories.WalletRepository,
	txns repositories.TransactionRepository,
	gateway Gateway,
	cacheSvc Cache,
	config Config,
) Service {
	if wallets == nil {
		panic("wallet repository is required")
	}
	if txns == nil {
		panic("transaction repository is required")
	}
	if gateway == nil {
		panic("gateway is required")
	}
	if config.ProviderTimeout == 0 {
		config.ProviderTimeout = DefaultProviderTimeout
	}
	if config.ReferenceAttempts == 0 {
		config.ReferenceAttempts = DefaultReferenceAttempts
	}

	return &service{
		wallets: wallets,
		txns:    txns,
		gateway: gateway,
		cache:   cacheSvc,
		config:  config,
	}
}

func (s *service) Buy(ctx context.Context, userID uint, req Request) (*Receipt, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.wallets.GetUser(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	// Advisory check only; the settlement debit re-checks atomically, so a
	// concurrent purchase can never drive the balance negative.
	if user.WalletBalance < req.Amount {
		return nil, ErrInsufficientFunds
	}

	// The pending row is persisted before the external call so a crash
	// mid-flight leaves an auditable record.
	txn := &models.Transaction{
		UserID:      userID,
		Type:        models.TypeDebit,
		ServiceType: req.ServiceType,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      models.StatusPending,
		Recipient:   req.Recipient,
		Provider:    req.Provider,
		Plan:        req.Plan,
	}
	if err := s.createWithReference(txn); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	providerRef, err := s.callGateway(ctx, req)
	if err != nil {
		perr := asProviderError(err)
		if mfErr := s.txns.MarkFailed(txn.ID, perr.Reason); mfErr != nil {
			log.Printf("failed to mark transaction %s failed: %v", txn.Reference, mfErr)
		}
		// The failed row is part of the history, so cached reads are stale.
		s.invalidateWallet(ctx, userID)
		return nil, perr
	}

	var newBalance float64
	err = s.wallets.InTransaction(func(w repositories.WalletRepository, t repositories.TransactionRepository) error {
		balance, err := w.DebitBalanceIfSufficient(userID, req.Amount)
		if err != nil {
			return err
		}
		if err := t.MarkSuccessful(txn.ID, providerRef); err != nil {
			return err
		}
		newBalance = balance
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientFunds) {
			// A concurrent purchase drained the balance between the
			// advisory check and settlement. The provider already accepted
			// this purchase, so keep its reference on the failed row.
			log.Printf("RECONCILIATION REQUIRED: provider accepted %s for user %d (internal ref %s, amount %.2f) but the balance no longer covers it",
				providerRef, userID, txn.Reference, req.Amount)
			reason := fmt.Sprintf("insufficient balance at settlement; provider reference %s", providerRef)
			if mfErr := s.txns.MarkFailed(txn.ID, reason); mfErr != nil {
				log.Printf("failed to mark transaction %s failed: %v", txn.Reference, mfErr)
			}
			s.invalidateWallet(ctx, userID)
			return nil, ErrInsufficientFunds
		}
		// The provider accepted the purchase but the local commit failed.
		// The row stays pending and must be reconciled against the
		// provider reference.
		log.Printf("RECONCILIATION REQUIRED: provider accepted %s for user %d (internal ref %s, amount %.2f) but settlement failed: %v",
			providerRef, userID, txn.Reference, req.Amount, err)
		return nil, fmt.Errorf("settle purchase %s: %w", txn.Reference, err)
	}

	s.invalidateWallet(ctx, userID)

	txn.Status = models.StatusSuccessful
	txn.Reference = providerRef
	return &Receipt{Transaction: txn, NewBalance: newBalance}, nil
}

func (s *service) callGateway(ctx context.Context, req Request) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.config.ProviderTimeout)
	defer cancel()

	return s.gateway.Purchase(callCtx, Payload{
		ServiceType: req.ServiceType,
		Recipient:   req.Recipient,
		Provider:    req.Provider,
		Plan:        req.Plan,
		Amount:      req.Amount,
	})
}

func (s *service) createWithReference(txn *models.Transaction) error {
	for attempt := 0; attempt < s.config.ReferenceAttempts; attempt++ {
		txn.Reference = NewReference()
		err := s.txns.Create(txn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrDuplicateReference) {
			return err
		}
	}
	return fmt.Errorf("allocate reference: %w", repositories.ErrDuplicateReference)
}

func (s *service) invalidateWallet(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.BalanceKey(userID), cache.TransactionsKey(userID)); err != nil {
		log.Printf("failed to invalidate wallet cache for user %d: %v", userID, err)
	}
}

func asProviderError(err error) *ProviderError {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}
	return &ProviderError{Reason: err.Error()}
}

func validateRequest(req Request) error {
	switch req.ServiceType {
	case models.ServiceAirtime:
		if req.Provider == "" || req.Recipient == "" || req.Amount == 0 {
			return &ValidationError{Message: "Please provide network, phone number, and amount"}
		}
	case models.ServiceData, models.ServiceCable, models.ServiceElectricity:
		if req.Provider == "" || req.Recipient == "" || req.Plan == "" || req.Amount == 0 {
			return &ValidationError{Message: "Please provide all required fields"}
		}
	default:
		return &ValidationError{Message: "Unknown service type"}
	}

	if req.Amount <= 0 {
		return &ValidationError{Message: "Please provide a valid amount"}
	}
	if req.ServiceType == models.ServiceAirtime && req.Amount < MinAirtimeAmount {
		return &ValidationError{Message: "Minimum airtime purchase is ₦50"}
	}
	if req.ServiceType == models.ServiceElectricity && req.Amount < MinElectricityAmount {
		return &ValidationError{Message: "Minimum electricity purchase is ₦1000"}
	}
	return nil
}
