// Package deployer creates a collectible contract from its compiled artifact.
package deployer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/verichains/collectible-validator/cmd/validator/abiutils"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"github.com/verichains/collectible-validator/cmd/validator/logger"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
)

type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

type Deployer struct {
	backend Backend
	config  collectible.Config
	log     log.Logger
}

// New returns a deployer sending with the same gas ceiling and receipt timeout as the contract client
func New(backend Backend, config collectible.Config) (*Deployer, error) {
	if config.ChainID == nil {
		return nil, ErrNoChainID
	}
	if config.GasLimit == 0 {
		config.GasLimit = collectible.DefaultGasLimit
	}
	if config.ReceiptTimeout == 0 {
		config.ReceiptTimeout = collectible.DefaultReceiptTimeout
	}
	return &Deployer{
		backend: backend,
		config:  config,
		log:     logger.New("deployer"),
	}, nil
}

// Deploy sends the artifact creation code with params as constructor arguments,
// signed by creator, and waits until the contract code is in place.
func (d *Deployer) Deploy(ctx context.Context, artifact *abiutils.Artifact, params collectible.DeployParams, creator *wallet.Account) (*Record, error) {
	if len(artifact.Bytecode) == 0 {
		return nil, abiutils.ErrNoBytecode
	}
	if params.Price == nil {
		params.Price = new(big.Int)
	}
	opts, err := creator.Transactor(d.config.ChainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	opts.GasLimit = d.config.GasLimit

	address, tx, _, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, d.backend, params.ConstructorArgs()...)
	if err != nil {
		return nil, fmt.Errorf("could not send deployment of %s: %w", artifact.ContractName, err)
	}
	d.log.Info("Deployment sent", "contract", artifact.ContractName, "address", address.Hex(), "tx", tx.Hash().Hex())

	waitCtx, cancel := context.WithTimeout(ctx, d.config.ReceiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, d.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("could not get receipt of %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrDeployFailed, tx.Hash().Hex())
	}
	if _, err := bind.WaitDeployed(waitCtx, d.backend, tx); err != nil {
		return nil, err
	}
	d.log.Info("Contract deployed", "address", address.Hex(), "block", receipt.BlockNumber, "gasUsed", receipt.GasUsed)
	return &Record{
		Contract:    artifact.ContractName,
		Address:     address,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		DeployedAt:  time.Now().UTC(),
	}, nil
}

// Address resolves contract, given either as a hex address or as the path of a deployment record
func Address(contract string) (common.Address, error) {
	if common.IsHexAddress(contract) {
		return common.HexToAddress(contract), nil
	}
	record, err := LoadRecord(contract)
	if err != nil {
		return common.Address{}, err
	}
	return record.Address, nil
}
