package wallet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
)

// LoadKeystore decrypts every key file in dir with the passphrase. Keystore file
// names start with their creation time, so the result is in creation order.
func LoadKeystore(dir, passphrase string) ([]*Account, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	result := make([]*Account, 0, len(names))
	for _, name := range names {
		keyjson, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		key, err := keystore.DecryptKey(keyjson, passphrase)
		if err != nil {
			return nil, fmt.Errorf("could not decrypt key file %s: %w", name, err)
		}
		result = append(result, NewAccount(key.PrivateKey))
	}
	return result, nil
}
