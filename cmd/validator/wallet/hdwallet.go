package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// DefaultBasePath is the parent of the account keys used by ganache and truffle's HDWalletProvider
const DefaultBasePath = "m/44'/60'/0'/0"

func derive(key *hdkeychain.ExtendedKey, path accounts.DerivationPath) (*hdkeychain.ExtendedKey, error) {
	var err error
	for _, index := range path {
		if key, err = key.Derive(index); err != nil {
			return nil, fmt.Errorf("%w at index %d: %v", ErrInvalidChildKey, index, err)
		}
	}
	return key, nil
}

// DeriveAccounts derives count accounts from the mnemonic on basePath/0 .. basePath/count-1
func DeriveAccounts(mnemonic, basePath string, count int) ([]*Account, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	if basePath == "" {
		basePath = DefaultBasePath
	}
	base, err := accounts.ParseDerivationPath(basePath)
	if err != nil {
		return nil, err
	}
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, err
	}
	parent, err := derive(master, base)
	if err != nil {
		return nil, err
	}
	result := make([]*Account, 0, count)
	for i := 0; i < count; i++ {
		child, err := derive(parent, accounts.DerivationPath{uint32(i)})
		if err != nil {
			return nil, err
		}
		priv, err := child.ECPrivKey()
		if err != nil {
			return nil, err
		}
		key, err := crypto.ToECDSA(priv.Serialize())
		if err != nil {
			return nil, err
		}
		result = append(result, NewAccount(key))
	}
	return result, nil
}
