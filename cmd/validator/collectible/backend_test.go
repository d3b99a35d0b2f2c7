package collectible

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var errNotImplemented = errors.New("not implemented")

// revertError mimics the json-rpc error a node returns for a reverted call
type revertError struct {
	msg  string
	data string
}

func (e *revertError) Error() string          { return e.msg }
func (e *revertError) ErrorCode() int         { return 3 }
func (e *revertError) ErrorData() interface{} { return e.data }

func newRevertError(reason string) *revertError {
	stringType, _ := abi.NewType("string", "", nil)
	packed, _ := abi.Arguments{{Type: stringType}}.Pack(reason)
	data := append(common.FromHex("0x08c379a0"), packed...)
	return &revertError{msg: "execution reverted", data: hexutil.Encode(data)}
}

// fakeBackend answers views from a table and mines every sent transaction
// into its own block with the configured receipt status.
type fakeBackend struct {
	abi       abi.ABI
	code      []byte
	results   map[string][]interface{}
	callErr   error
	replayErr error
	sendErr   error
	pending   bool
	status    uint64
	head      uint64
	balance   *big.Int
	logs      []types.Log
	sent      []*types.Transaction
	receipts  map[common.Hash]*types.Receipt
	queries   []ethereum.FilterQuery
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		abi:      ParsedABI(),
		code:     []byte{0x00},
		results:  make(map[string][]interface{}),
		status:   types.ReceiptStatusSuccessful,
		head:     10,
		balance:  new(big.Int),
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return f.code, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if blockNumber != nil && f.replayErr != nil {
		return nil, f.replayErr
	}
	if f.callErr != nil {
		return nil, f.callErr
	}
	method, err := f.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(f.results[method.Name]...)
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: new(big.Int).SetUint64(f.head)}, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return f.code, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 0, errNotImplemented
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.head++
	f.sent = append(f.sent, tx)
	if f.pending {
		return nil
	}
	f.receipts[tx.Hash()] = &types.Receipt{
		Status:      f.status,
		TxHash:      tx.Hash(),
		GasUsed:     42000,
		BlockNumber: new(big.Int).SetUint64(f.head),
	}
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if receipt, ok := f.receipts[txHash]; ok {
		return receipt, nil
	}
	return nil, ethereum.NotFound
}

func (f *fakeBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	f.queries = append(f.queries, query)
	result := make([]types.Log, 0)
	for _, lg := range f.logs {
		if len(query.Topics) > 0 && len(query.Topics[0]) > 0 && lg.Topics[0] != query.Topics[0][0] {
			continue
		}
		result = append(result, lg)
	}
	return result, nil
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errNotImplemented
}

func (f *fakeBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	return f.balance, nil
}
