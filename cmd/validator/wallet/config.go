package wallet

import (
	"fmt"
	"os"
	"strings"
)

// Config lists where accounts come from. Sources are concatenated in the order
// private keys, mnemonic, keystore.
type Config struct {
	PrivateKeys    []string `toml:",omitempty"`
	Mnemonic       string   `toml:",omitempty"`
	DerivationPath string   `toml:",omitempty"`
	KeystoreDir    string   `toml:",omitempty"`
	PasswordFile   string   `toml:",omitempty"`
	Passphrase     string   `toml:"-"`
}

func (c *Config) passphrase() (string, error) {
	if c.PasswordFile == "" {
		return c.Passphrase, nil
	}
	data, err := os.ReadFile(c.PasswordFile)
	if err != nil {
		return "", fmt.Errorf("could not read password file: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Resolve returns at least count accounts from the configured sources
func Resolve(cfg *Config, count int) ([]*Account, error) {
	result := make([]*Account, 0, count)
	for i, hexkey := range cfg.PrivateKeys {
		acc, err := ParsePrivateKey(hexkey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key #%d: %w", i, err)
		}
		result = append(result, acc)
	}
	if cfg.Mnemonic != "" && len(result) < count {
		derived, err := DeriveAccounts(cfg.Mnemonic, cfg.DerivationPath, count-len(result))
		if err != nil {
			return nil, err
		}
		result = append(result, derived...)
	}
	if cfg.KeystoreDir != "" && len(result) < count {
		passphrase, err := cfg.passphrase()
		if err != nil {
			return nil, err
		}
		stored, err := LoadKeystore(cfg.KeystoreDir, passphrase)
		if err != nil {
			return nil, err
		}
		result = append(result, stored...)
	}
	if len(result) < count {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughAccounts, count, len(result))
	}
	return result, nil
}
