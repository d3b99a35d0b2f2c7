package main

import (
	"flag"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"gopkg.in/urfave/cli.v1"
)

const testConfig = `
[Node]
RPCUrl = "http://127.0.0.1:8545"
DialAttempts = 2
ChainID = 1337

[Contract]
Address = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
GasLimit = 0

[Deployment]
Name = "Hazel"
Price = "1000000000000000000"
MaximumSupply = 100
IsPrivateMinting = true

[Accounts]
Mnemonic = "test test test test test test test test test test test junk"
`

func writeConfig(t *testing.T, content string) string {
	filename := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func newCliContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String(configFileFlag.Name, "", "")
	set.String(rpcUrlFlag.Name, "", "")
	set.String(contractFlag.Name, "", "")
	set.String(privateKeysFlag.Name, "", "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoadTOMLConfig(t *testing.T) {
	config := DefaultConfig
	require.NoError(t, loadTOMLConfig(writeConfig(t, testConfig), &config))
	assert.Equal(t, "http://127.0.0.1:8545", config.Node.RPCUrl)
	assert.Equal(t, uint64(1337), config.Node.ChainID)
	assert.Equal(t, "Hazel", config.Deployment.Name)
	assert.Equal(t, "HCB", config.Deployment.Symbol)
	assert.Equal(t, uint64(100), config.Deployment.MaximumSupply)
	assert.True(t, config.Deployment.IsPrivateMinting)
	assert.Equal(t, "test test test test test test test test test test test junk", config.Accounts.Mnemonic)

	err := loadTOMLConfig(writeConfig(t, "[Node]\nRPCURL = \"x\"\n"), &config)
	assert.Error(t, err)
}

func TestMakeAppConfig(t *testing.T) {
	filename := writeConfig(t, testConfig)
	ctx := newCliContext(t,
		"--config", filename,
		"--rpcurl", "ws://127.0.0.1:7545",
		"--privkeys", "0x01, 0x02,",
	)
	config, err := makeAppConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:7545", config.Node.RPCUrl)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", config.Contract.Address)
	assert.Equal(t, []string{"0x01", "0x02"}, config.Accounts.PrivateKeys)
	// sanitized
	assert.Equal(t, uint64(collectible.DefaultGasLimit), config.Contract.GasLimit)
	assert.Equal(t, collectible.DefaultReceiptTimeout, config.Contract.ReceiptTimeout)

	_, err = makeAppConfig(newCliContext(t, "--config", filepath.Join(t.TempDir(), "missing.toml")))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	config, err := makeAppConfig(newCliContext(t))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:7545", config.Node.RPCUrl)

	params, err := config.Deployment.Params()
	require.NoError(t, err)
	assert.Equal(t, "HazelCollectibleBase", params.Name)
	assert.Equal(t, uint64(30), params.MaximumSupply)
	assert.Equal(t, 0, params.Price.Cmp(big.NewInt(20)))
	assert.Equal(t, uint64(20), params.MaxTransactionCount)
	assert.Equal(t, common.HexToAddress("0xf3c28ca894Bb1a76EFBED5FFE491Ab4cFA836ac9"), params.Developer)
	assert.Equal(t, uint64(5), params.DevSaleCommission)
	assert.False(t, params.IsPrivateMinting)
	assert.False(t, params.CanCreatorMintForFree)
}

func TestDeploymentParams(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		developer string
		ok        bool
	}{
		{"decimal price", "20", "0xf3c28ca894Bb1a76EFBED5FFE491Ab4cFA836ac9", true},
		{"hex price", "0x14", "0xf3c28ca894Bb1a76EFBED5FFE491Ab4cFA836ac9", true},
		{"bad price", "twenty", "0xf3c28ca894Bb1a76EFBED5FFE491Ab4cFA836ac9", false},
		{"bad developer", "20", "0xf3c28ca8", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig.Deployment
			config.Price = tt.price
			config.Developer = tt.developer
			params, err := config.Params()
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "20", params.Price.String())
		})
	}
}

func TestSanitize(t *testing.T) {
	node := NodeConfig{DialAttempts: -1}
	node.Sanitize()
	assert.Equal(t, DefaultConfig.Node.RPCUrl, node.RPCUrl)
	assert.Zero(t, node.DialAttempts)

	contract := ContractConfig{GasLimit: 8000000, ReceiptTimeout: -time.Second}
	contract.Sanitize()
	assert.Equal(t, uint64(8000000), contract.GasLimit)
	assert.Equal(t, collectible.DefaultReceiptTimeout, contract.ReceiptTimeout)
}

func TestEventRows(t *testing.T) {
	event := &collectible.Event{
		Name:        collectible.EventBaseURIChanged,
		TxHash:      common.HexToHash("0x01"),
		BlockNumber: 7,
		Fields:      map[string]interface{}{"reason": "update", "baseURI": "newBaseUri"},
	}
	rows := eventRows(event)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Block", "7"}, rows[2])
	assert.Equal(t, []string{"baseURI", "newBaseUri"}, rows[3])
	assert.Equal(t, []string{"reason", "update"}, rows[4])
}
