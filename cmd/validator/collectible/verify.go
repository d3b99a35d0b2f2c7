package collectible

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/verichains/collectible-validator/cmd/validator/abiutils"
)

const interfaceName = "HazelCollectibleBase"

// Verify checks that address holds code dispatching every method the client calls
func Verify(ctx context.Context, caller bind.ContractCaller, address common.Address, contractABI abi.ABI) error {
	code, err := caller.CodeAt(ctx, address, nil)
	if err != nil {
		return fmt.Errorf("could not get code of %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%w %s", ErrNoCode, address.Hex())
	}
	iface, err := abiutils.NewInterface(interfaceName, contractABI, Methods...)
	if err != nil {
		return err
	}
	return iface.Implemented(code)
}
