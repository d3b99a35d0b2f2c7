package abiutils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoBytecode  = errors.New("artifact has no bytecode")
	ErrNoABI       = errors.New("artifact has no abi")
	ErrNotDeployed = errors.New("artifact has no deployment on network")
)

// MissingMethodError is returned when a contract does not provide all methods of an interface
type MissingMethodError struct {
	Interface string
	Methods   []string
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("contract does not implement %s: missing %s", e.Interface, strings.Join(e.Methods, ", "))
}
