package collectible

import "errors"

var (
	ErrNoCreator      = errors.New("no creator account")
	ErrNoChainID      = errors.New("no chain id")
	ErrEmptyResult    = errors.New("empty call result")
	ErrUnexpectedType = errors.New("unexpected result type")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrNoCode         = errors.New("no contract code at address")
	ErrReverted       = errors.New("transaction reverted")
)
