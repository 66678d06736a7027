package purchase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"quicktop/internal/models"
	"quicktop/internal/repositories"
)

// fakeStore is an in-memory ledger and transaction log. It mirrors the
// concurrency guarantees of the real repositories: balance updates are
// atomic under a mutex and InTransaction rolls back on error.
type fakeStore struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	txns   map[uint]*models.Transaction
	byRef  map[string]uint
	nextID uint

	failCreates       int
	createCalls       int
	markSuccessfulErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[uint]*models.User),
		txns:  make(map[uint]*models.Transaction),
		byRef: make(map[string]uint),
	}
}

func (s *fakeStore) addUser(id uint, balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{WalletBalance: balance}
	u.ID = id
	s.users[id] = u
}

func (s *fakeStore) balance(id uint) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id].WalletBalance
}

func (s *fakeStore) transactions() []*models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Transaction, 0, len(s.txns))
	for _, t := range s.txns {
		out = append(out, t)
	}
	return out
}

func (s *fakeStore) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeStore) CreditBalance(userID uint, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return 0, repositories.ErrUserNotFound
	}
	u.WalletBalance += amount
	return u.WalletBalance, nil
}

func (s *fakeStore) DebitBalanceIfSufficient(userID uint, amount float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return 0, repositories.ErrUserNotFound
	}
	if u.WalletBalance < amount {
		return 0, repositories.ErrInsufficientFunds
	}
	u.WalletBalance -= amount
	return u.WalletBalance, nil
}

func (s *fakeStore) InTransaction(fn func(repositories.WalletRepository, repositories.TransactionRepository) error) error {
	s.mu.Lock()
	balances := make(map[uint]float64, len(s.users))
	for id, u := range s.users {
		balances[id] = u.WalletBalance
	}
	statuses := make(map[uint]string, len(s.txns))
	for id, t := range s.txns {
		statuses[id] = t.Status
	}
	s.mu.Unlock()

	if err := fn(s, s); err != nil {
		s.mu.Lock()
		for id, b := range balances {
			s.users[id].WalletBalance = b
		}
		for id, st := range statuses {
			s.txns[id].Status = st
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *fakeStore) Create(txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.failCreates > 0 {
		s.failCreates--
		return repositories.ErrDuplicateReference
	}
	if _, exists := s.byRef[txn.Reference]; exists {
		return repositories.ErrDuplicateReference
	}
	s.nextID++
	txn.ID = s.nextID
	copied := *txn
	s.txns[txn.ID] = &copied
	s.byRef[txn.Reference] = txn.ID
	return nil
}

func (s *fakeStore) GetByID(id uint) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *fakeStore) GetByReference(reference string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byRef[reference]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	copied := *s.txns[id]
	return &copied, nil
}

func (s *fakeStore) MarkSuccessful(id uint, providerReference string) error {
	if s.markSuccessfulErr != nil {
		return s.markSuccessfulErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[id]
	if !ok {
		return repositories.ErrTransactionNotFound
	}
	if t.Status != models.StatusPending {
		return repositories.ErrAlreadyFinalized
	}
	t.Status = models.StatusSuccessful
	if providerReference != "" {
		delete(s.byRef, t.Reference)
		t.Reference = providerReference
		s.byRef[providerReference] = id
	}
	return nil
}

func (s *fakeStore) MarkFailed(id uint, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[id]
	if !ok {
		return repositories.ErrTransactionNotFound
	}
	if t.Status != models.StatusPending {
		return repositories.ErrAlreadyFinalized
	}
	t.Status = models.StatusFailed
	t.Metadata = models.JSON{"error": reason}
	return nil
}

func (s *fakeStore) ListRecent(userID uint, limit int) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for id := s.nextID; id >= 1 && len(out) < limit; id-- {
		if t, ok := s.txns[id]; ok && t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

// memCache is an in-memory stand-in for the redis cache service, shared
// between services the way the real CacheService is.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	data, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

// drainGateway accepts the purchase but empties the user's wallet before
// returning, forcing the insufficient-at-settlement path.
type drainGateway struct {
	store     *fakeStore
	userID    uint
	reference string
}

func (g *drainGateway) Purchase(ctx context.Context, p Payload) (string, error) {
	balance := g.store.balance(g.userID)
	if _, err := g.store.DebitBalanceIfSufficient(g.userID, balance); err != nil {
		return "", err
	}
	return g.reference, nil
}

// stubGateway resolves every purchase with a fixed outcome. Successful calls
// get a unique provider reference, as the real provider would issue.
type stubGateway struct {
	reference string
	err       error
	calls     atomic.Int64
}

func (g *stubGateway) Purchase(ctx context.Context, p Payload) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	n := g.calls.Add(1)
	if n == 1 {
		return g.reference, nil
	}
	return fmt.Sprintf("%s-%d", g.reference, n), nil
}
