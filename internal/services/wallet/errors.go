package wallet

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateReference = errors.New("transaction reference already used")
)
