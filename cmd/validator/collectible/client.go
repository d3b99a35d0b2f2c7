// Package collectible is the client of a deployed HazelCollectibleBase contract.
//
// Views are forwarded as eth_call and their errors are returned as is. Mutating
// calls never return an error: any failure, whether raised by the node, the
// signer or the contract itself, is folded into a *Rejected outcome so callers
// deal with one accepted/rejected vocabulary.
package collectible

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/verichains/collectible-validator/cmd/validator/logger"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
)

const (
	// DefaultGasLimit is the ganache block gas limit the original test suite sends with
	DefaultGasLimit       = 6721975
	DefaultReceiptTimeout = 2 * time.Minute
)

// ContractClient is everything the validation scenario can observe of, or do to, the contract
type ContractClient interface {
	Address() common.Address

	TotalSupply(ctx context.Context) (*big.Int, error)
	MaximumSupply(ctx context.Context) (*big.Int, error)
	MaximumTransactionCount(ctx context.Context) (*big.Int, error)
	Creator(ctx context.Context) (common.Address, error)
	Developer(ctx context.Context) (common.Address, error)
	DevSaleCommission(ctx context.Context) (*big.Int, error)
	IsPrivateMinting(ctx context.Context) (bool, error)
	CanCreatorMintForFree(ctx context.Context) (bool, error)
	BaseURI(ctx context.Context) (string, error)
	IsAddressWhitelisted(ctx context.Context, account common.Address) (bool, error)
	TokensOwnedBy(ctx context.Context, owner common.Address) ([]*big.Int, error)
	Price(ctx context.Context, count uint64) (*big.Int, error)
	Paused(ctx context.Context) (bool, error)
	Balance(ctx context.Context) (*big.Int, error)

	Mint(ctx context.Context, count uint64, value *big.Int, sender *wallet.Account) Outcome
	MintTo(ctx context.Context, count uint64, recipient common.Address, value *big.Int, sender *wallet.Account) Outcome
	SetBaseURI(ctx context.Context, baseURI, reason string, sender *wallet.Account) Outcome
	Pause(ctx context.Context, paused bool, reason string, sender *wallet.Account) Outcome
	WithdrawAll(ctx context.Context, sender *wallet.Account) Outcome

	EventsForTransaction(ctx context.Context, txHash common.Hash, eventName string) ([]*Event, error)
	LastEvent(ctx context.Context) (*Event, error)
}

// Backend is the node API the client needs, satisfied by *ethclient.Client
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type Config struct {
	ChainID        *big.Int
	GasLimit       uint64
	ReceiptTimeout time.Duration
}

// Client is the ContractClient of a contract reachable through a Backend
type Client struct {
	address  common.Address
	abi      abi.ABI
	backend  Backend
	contract *bind.BoundContract
	creator  *wallet.Account
	config   Config
	log      log.Logger
}

// NewClient binds the contract at address. creator signs every mutating call
// submitted without an explicit sender.
func NewClient(address common.Address, contractABI abi.ABI, backend Backend, creator *wallet.Account, config Config) (*Client, error) {
	if creator == nil {
		return nil, ErrNoCreator
	}
	if config.ChainID == nil {
		return nil, ErrNoChainID
	}
	if config.GasLimit == 0 {
		config.GasLimit = DefaultGasLimit
	}
	if config.ReceiptTimeout == 0 {
		config.ReceiptTimeout = DefaultReceiptTimeout
	}
	return &Client{
		address:  address,
		abi:      contractABI,
		backend:  backend,
		contract: bind.NewBoundContract(address, contractABI, backend, backend, backend),
		creator:  creator,
		config:   config,
		log:      logger.New("collectible"),
	}, nil
}

func (c *Client) Address() common.Address {
	return c.address
}

func (c *Client) call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: %w", method, ErrEmptyResult)
	}
	return out[0], nil
}

func (c *Client) callBig(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	return toBigInt(method, out)
}

func (c *Client) callAddress(ctx context.Context, method string, args ...interface{}) (common.Address, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := out.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("call %s: %w: %T", method, ErrUnexpectedType, out)
	}
	return addr, nil
}

func (c *Client) callBool(ctx context.Context, method string, args ...interface{}) (bool, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return false, err
	}
	val, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("call %s: %w: %T", method, ErrUnexpectedType, out)
	}
	return val, nil
}

func (c *Client) TotalSupply(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, "totalSupply")
}

func (c *Client) MaximumSupply(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, "maximumSupply")
}

func (c *Client) MaximumTransactionCount(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, "maximumTransactionCount")
}

func (c *Client) Creator(ctx context.Context) (common.Address, error) {
	return c.callAddress(ctx, "creator")
}

func (c *Client) Developer(ctx context.Context) (common.Address, error) {
	return c.callAddress(ctx, "developer")
}

func (c *Client) DevSaleCommission(ctx context.Context) (*big.Int, error) {
	return c.callBig(ctx, "getDevSaleCommission")
}

func (c *Client) IsPrivateMinting(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "isPrivateMinting")
}

func (c *Client) CanCreatorMintForFree(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "canCreatorMintForFree")
}

func (c *Client) BaseURI(ctx context.Context) (string, error) {
	out, err := c.call(ctx, "getBaseURI")
	if err != nil {
		return "", err
	}
	uri, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("call getBaseURI: %w: %T", ErrUnexpectedType, out)
	}
	return uri, nil
}

func (c *Client) IsAddressWhitelisted(ctx context.Context, account common.Address) (bool, error) {
	return c.callBool(ctx, "isAddressWhitelisted", account)
}

func (c *Client) TokensOwnedBy(ctx context.Context, owner common.Address) ([]*big.Int, error) {
	out, err := c.call(ctx, "tokensOwnedByAddress", owner)
	if err != nil {
		return nil, err
	}
	ids, ok := out.([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("call tokensOwnedByAddress: %w: %T", ErrUnexpectedType, out)
	}
	return ids, nil
}

func (c *Client) Price(ctx context.Context, count uint64) (*big.Int, error) {
	return c.callBig(ctx, "getPrice", new(big.Int).SetUint64(count))
}

func (c *Client) Paused(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "paused")
}

// Balance returns the native balance held by the contract
func (c *Client) Balance(ctx context.Context) (*big.Int, error) {
	return c.backend.BalanceAt(ctx, c.address, nil)
}

// toBigInt accepts every unsigned integer width a view may be declared with
func toBigInt(method string, v interface{}) (*big.Int, error) {
	switch val := v.(type) {
	case *big.Int:
		return val, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(val)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(val)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(val)), nil
	case uint64:
		return new(big.Int).SetUint64(val), nil
	}
	return nil, fmt.Errorf("call %s: %w: %T", method, ErrUnexpectedType, v)
}

// ReadState reads every view of the contract, in the order they are listed in State
func ReadState(ctx context.Context, c ContractClient) (*State, error) {
	var (
		s   State
		err error
	)
	if s.TotalSupply, err = c.TotalSupply(ctx); err != nil {
		return nil, err
	}
	if s.MaximumSupply, err = c.MaximumSupply(ctx); err != nil {
		return nil, err
	}
	if s.MaxTransactionCount, err = c.MaximumTransactionCount(ctx); err != nil {
		return nil, err
	}
	if s.UnitPrice, err = c.Price(ctx, 1); err != nil {
		return nil, err
	}
	if s.Paused, err = c.Paused(ctx); err != nil {
		return nil, err
	}
	if s.BaseURI, err = c.BaseURI(ctx); err != nil {
		return nil, err
	}
	if s.Creator, err = c.Creator(ctx); err != nil {
		return nil, err
	}
	if s.Developer, err = c.Developer(ctx); err != nil {
		return nil, err
	}
	if s.DevSaleCommission, err = c.DevSaleCommission(ctx); err != nil {
		return nil, err
	}
	if s.IsPrivateMinting, err = c.IsPrivateMinting(ctx); err != nil {
		return nil, err
	}
	if s.CanCreatorMintForFree, err = c.CanCreatorMintForFree(ctx); err != nil {
		return nil, err
	}
	if s.Balance, err = c.Balance(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}
