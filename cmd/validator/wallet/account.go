// Package wallet resolves the signing accounts used to submit transactions:
// raw private keys, a BIP-39 mnemonic or an encrypted keystore directory.
package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Account is an address together with the key that signs for it
type Account struct {
	Address common.Address
	key     *ecdsa.PrivateKey
}

func (a *Account) String() string {
	return a.Address.Hex()
}

// Transactor returns fresh transact options signing with the account key
func (a *Account) Transactor(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(a.key, chainID)
}

func NewAccount(key *ecdsa.PrivateKey) *Account {
	return &Account{
		Address: crypto.PubkeyToAddress(key.PublicKey),
		key:     key,
	}
}

// ParsePrivateKey parses a hex encoded private key, with or without 0x prefix
func ParsePrivateKey(hexkey string) (*Account, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexkey), "0x"))
	if err != nil {
		return nil, err
	}
	return NewAccount(key), nil
}
