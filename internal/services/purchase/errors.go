package purchase

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// ValidationError reports a request rejected before any side effects. The
// message is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ProviderError is a transient gateway failure, surfaced to the caller only
// after the transaction has been durably marked failed. The reason carries
// the provider's own message.
type ProviderError struct {
	Reason string
}

func (e *ProviderError) Error() string { return e.Reason }
