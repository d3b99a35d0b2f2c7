package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/log"
	"github.com/naoina/toml"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
	"gopkg.in/urfave/cli.v1"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

var errInvalidPrice = errors.New("invalid price")

type NodeConfig struct {
	RPCUrl       string
	DialAttempts int
	ChainID      uint64 `toml:",omitempty"` // queried from the node when zero
}

type ContractConfig struct {
	Address        string `toml:",omitempty"` // hex address or deployment record path
	Artifact       string `toml:",omitempty"` // truffle build artifact
	GasLimit       uint64
	ReceiptTimeout time.Duration
}

// DeploymentConfig holds the constructor arguments the contract is deployed with
// and checked against
type DeploymentConfig struct {
	Name                  string
	Symbol                string
	BaseURI               string
	MaximumSupply         uint64
	Price                 string
	MaxTransactionCount   uint64
	Developer             string
	DevSaleCommission     uint64
	IsPrivateMinting      bool
	CanCreatorMintForFree bool
}

type appConfig struct {
	Node       NodeConfig
	Contract   ContractConfig
	Deployment DeploymentConfig
	Accounts   wallet.Config
}

var DefaultConfig = appConfig{
	Node: NodeConfig{
		RPCUrl:       "http://127.0.0.1:7545",
		DialAttempts: 5,
	},
	Contract: ContractConfig{
		GasLimit:       collectible.DefaultGasLimit,
		ReceiptTimeout: collectible.DefaultReceiptTimeout,
	},
	Deployment: DeploymentConfig{
		Name:                "HazelCollectibleBase",
		Symbol:              "HCB",
		BaseURI:             "ipfs://baseUri",
		MaximumSupply:       30,
		Price:               "20",
		MaxTransactionCount: 20,
		Developer:           "0xf3c28ca894Bb1a76EFBED5FFE491Ab4cFA836ac9",
		DevSaleCommission:   5,
	},
}

func (c *NodeConfig) Sanitize() {
	if c.RPCUrl == "" {
		log.Warn("Sanitizing empty rpc url", "provided", c.RPCUrl, "updated", DefaultConfig.Node.RPCUrl)
		c.RPCUrl = DefaultConfig.Node.RPCUrl
	}
	if c.DialAttempts < 0 {
		log.Warn("Sanitizing invalid dial attempts", "provided", c.DialAttempts, "updated", 0)
		c.DialAttempts = 0
	}
}

func (c *ContractConfig) Sanitize() {
	if c.GasLimit == 0 {
		log.Warn("Sanitizing invalid gas limit", "provided", c.GasLimit, "updated", DefaultConfig.Contract.GasLimit)
		c.GasLimit = DefaultConfig.Contract.GasLimit
	}
	if c.ReceiptTimeout <= 0 {
		log.Warn("Sanitizing invalid receipt timeout", "provided", c.ReceiptTimeout, "updated", DefaultConfig.Contract.ReceiptTimeout)
		c.ReceiptTimeout = DefaultConfig.Contract.ReceiptTimeout
	}
}

// Params converts the configured constructor arguments
func (c *DeploymentConfig) Params() (collectible.DeployParams, error) {
	price, ok := math.ParseBig256(c.Price)
	if !ok || price.Sign() < 0 {
		return collectible.DeployParams{}, fmt.Errorf("%w %q", errInvalidPrice, c.Price)
	}
	if !common.IsHexAddress(c.Developer) {
		return collectible.DeployParams{}, fmt.Errorf("invalid developer address %q", c.Developer)
	}
	return collectible.DeployParams{
		Name:                  c.Name,
		Symbol:                c.Symbol,
		BaseURI:               c.BaseURI,
		MaximumSupply:         c.MaximumSupply,
		Price:                 price,
		MaxTransactionCount:   c.MaxTransactionCount,
		Developer:             common.HexToAddress(c.Developer),
		DevSaleCommission:     c.DevSaleCommission,
		IsPrivateMinting:      c.IsPrivateMinting,
		CanCreatorMintForFree: c.CanCreatorMintForFree,
	}, nil
}

func loadTOMLConfig(filename string, conf interface{}) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(conf)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(filename + ", " + err.Error())
	}
	return err
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// makeAppConfig reads the provided TOML configuration file, if config file is
// not specified default config is used. Flags override file values.
//
// Returns a sanitized appConfig instance to be used by the commands.
func makeAppConfig(ctx *cli.Context) (*appConfig, error) {
	config := DefaultConfig
	if configFile := ctx.GlobalString(configFileFlag.Name); configFile != "" {
		if err := loadTOMLConfig(configFile, &config); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", configFile, err)
		}
	}
	if ctx.GlobalIsSet(rpcUrlFlag.Name) {
		config.Node.RPCUrl = ctx.GlobalString(rpcUrlFlag.Name)
	}
	if ctx.GlobalIsSet(chainIdFlag.Name) {
		config.Node.ChainID = ctx.GlobalUint64(chainIdFlag.Name)
	}
	if ctx.GlobalIsSet(contractFlag.Name) {
		config.Contract.Address = ctx.GlobalString(contractFlag.Name)
	}
	if ctx.GlobalIsSet(artifactFlag.Name) {
		config.Contract.Artifact = ctx.GlobalString(artifactFlag.Name)
	}
	if ctx.GlobalIsSet(gasLimitFlag.Name) {
		config.Contract.GasLimit = ctx.GlobalUint64(gasLimitFlag.Name)
	}
	if ctx.GlobalIsSet(privateKeysFlag.Name) {
		config.Accounts.PrivateKeys = splitList(ctx.GlobalString(privateKeysFlag.Name))
	}
	if ctx.GlobalIsSet(mnemonicFlag.Name) {
		config.Accounts.Mnemonic = ctx.GlobalString(mnemonicFlag.Name)
	}
	if ctx.GlobalIsSet(keystoreFlag.Name) {
		config.Accounts.KeystoreDir = ctx.GlobalString(keystoreFlag.Name)
	}
	if ctx.GlobalIsSet(passwordFileFlag.Name) {
		config.Accounts.PasswordFile = ctx.GlobalString(passwordFileFlag.Name)
	}
	config.Node.Sanitize()
	config.Contract.Sanitize()
	return &config, nil
}

func dumpConfig(ctx *cli.Context) error {
	config, err := makeAppConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(config)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}
