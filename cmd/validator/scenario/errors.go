package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrNotEnoughAccounts = errors.New("scenario needs a creator and two participant accounts")
	ErrInfeasible        = errors.New("deployment parameters cannot run the minting phase")
	ErrUnknownPhase      = errors.New("unknown phase")
)

// AssertionError is a scenario expectation the contract did not meet
type AssertionError struct {
	Message string
	Detail  string
}

func (e *AssertionError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Detail
}

func failf(message, format string, args ...interface{}) error {
	return &AssertionError{Message: message, Detail: fmt.Sprintf(format, args...)}
}

// PhaseError tells which phase a failure happened in
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
