package abiutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NetworkDeployment is the per network record truffle keeps after a migration
type NetworkDeployment struct {
	Address         common.Address `json:"address"`
	TransactionHash common.Hash    `json:"transactionHash"`
}

// Artifact is a compiled contract as written by truffle into build/contracts/<Name>.json
type Artifact struct {
	ContractName string
	ABI          abi.ABI
	Bytecode     []byte
	Deployed     []byte
	Networks     map[uint64]NetworkDeployment
}

type artifactMarshaling struct {
	ContractName     string                       `json:"contractName"`
	ABI              json.RawMessage              `json:"abi"`
	Bytecode         string                       `json:"bytecode"`
	DeployedBytecode string                       `json:"deployedBytecode"`
	Networks         map[string]NetworkDeployment `json:"networks"`
}

func (a *Artifact) UnmarshalJSON(data []byte) error {
	var raw artifactMarshaling
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.ABI) == 0 {
		return ErrNoABI
	}
	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return fmt.Errorf("invalid abi: %w", err)
	}
	a.ContractName = raw.ContractName
	a.ABI = parsed
	if raw.Bytecode != "" && raw.Bytecode != "0x" {
		if a.Bytecode, err = hexutil.Decode(raw.Bytecode); err != nil {
			return fmt.Errorf("invalid bytecode: %w", err)
		}
	}
	if raw.DeployedBytecode != "" && raw.DeployedBytecode != "0x" {
		if a.Deployed, err = hexutil.Decode(raw.DeployedBytecode); err != nil {
			return fmt.Errorf("invalid deployed bytecode: %w", err)
		}
	}
	a.Networks = make(map[uint64]NetworkDeployment, len(raw.Networks))
	for key, deployment := range raw.Networks {
		networkId, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid network id %q: %w", key, err)
		}
		a.Networks[networkId] = deployment
	}
	return nil
}

// Address returns the address the contract was migrated to on the given network
func (a *Artifact) Address(networkId uint64) (common.Address, error) {
	deployment, ok := a.Networks[networkId]
	if !ok {
		return common.Address{}, fmt.Errorf("%w %d", ErrNotDeployed, networkId)
	}
	return deployment.Address, nil
}

func LoadArtifact(filename string) (*Artifact, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	artifact := &Artifact{}
	if err := json.Unmarshal(data, artifact); err != nil {
		return nil, fmt.Errorf("could not decode artifact %s: %w", filename, err)
	}
	return artifact, nil
}
