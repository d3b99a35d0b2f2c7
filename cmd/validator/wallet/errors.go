package wallet

import "errors"

var (
	ErrNotEnoughAccounts = errors.New("not enough accounts")
	ErrInvalidMnemonic   = errors.New("invalid mnemonic")
	ErrInvalidChildKey   = errors.New("invalid child key")
)
